package setup

import (
	"github.com/washlava-dev/washlava/internal/config"
	"github.com/washlava-dev/washlava/internal/handler"
	"github.com/washlava-dev/washlava/internal/jwt"
	"github.com/washlava-dev/washlava/internal/middleware"
	"github.com/washlava-dev/washlava/internal/storage/mongo"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage *mongo.Storage
	Handler *handler.Handler
	Auth    *middleware.Auth
	Jwt     jwt.Service
	Config  *config.Config
}

// SetupDependencies initializes everything the application needs, in order:
// store connection first (fatal when it fails), then the token service and
// the guard middleware, then the handlers.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := mongo.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	auth := middleware.NewAuth(jwtService, storage)
	h := handler.New(storage, storage, storage, storage, jwtService, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Auth:    auth,
		Jwt:     jwtService,
		Config:  cfg,
	}, nil
}
