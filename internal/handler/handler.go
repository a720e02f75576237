package handler

import (
	"context"

	"github.com/washlava-dev/washlava/internal/config"
	"github.com/washlava-dev/washlava/internal/jwt"
	"github.com/washlava-dev/washlava/internal/storage"
)

// Pinger reports whether the store is reachable, for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	users    storage.UserStore
	services storage.ServiceStore
	carts    storage.CartStore
	reviews  storage.ReviewStore
	jwt      jwt.Service
	health   Pinger
	cfg      *config.Config
}

func New(users storage.UserStore, services storage.ServiceStore, carts storage.CartStore, reviews storage.ReviewStore, jwtService jwt.Service, health Pinger, cfg *config.Config) *Handler {
	return &Handler{users, services, carts, reviews, jwtService, health, cfg}
}
