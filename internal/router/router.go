package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/washlava-dev/washlava/internal/middleware"
	"github.com/washlava-dev/washlava/internal/middleware/metrics"
	"github.com/washlava-dev/washlava/internal/setup"
)

// New creates and configures the chi router with all routes and their
// guard chains.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(mw.AccessLog)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(deps.Config.Public.HSTS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.Cors.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	auth := deps.Auth

	r.Get("/", h.Root)
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Open routes
	r.Post("/jwt", h.IssueToken)
	r.Post("/users", h.RegisterUser)
	r.Get("/services", h.GetServices)
	r.Post("/carts", h.CreateCart)
	r.Delete("/carts/{id}", h.DeleteCart)
	r.Post("/reviews", h.CreateReview)
	r.Get("/reviews/{reviewerName}", h.GetReviewsByReviewer)

	// Verified routes
	r.Group(func(r chi.Router) {
		r.Use(auth.VerifyToken())
		r.Get("/users/admin/{email}", h.GetAdminStatus)
		r.Get("/carts", h.GetCarts)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(auth.VerifyToken())
		r.Use(auth.VerifyAdmin())
		r.Get("/users", h.GetUsers)
		r.Patch("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeleteUser)
		r.Patch("/services/{id}", h.UpdateService)
		r.Delete("/services/{id}", h.DeleteService)
		r.Patch("/carts/{id}", h.UpdateCartStatus)
		r.Get("/reviews", h.GetReviews)
	})

	return r
}
