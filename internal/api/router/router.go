package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pratik-mahalle/userboard/internal/api/docs"
	"github.com/pratik-mahalle/userboard/internal/api/handlers"
	"github.com/pratik-mahalle/userboard/internal/api/middleware"
	"github.com/pratik-mahalle/userboard/internal/config"
	"github.com/pratik-mahalle/userboard/internal/pkg/errors"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/metrics"
	"github.com/pratik-mahalle/userboard/internal/pkg/utils"
)

type Handlers struct {
	Health *handlers.HealthHandler
	User   *handlers.UserHandler
	Feed   *handlers.FeedHandler
}

// New builds the HTTP handler. Closing done stops background middleware work.
func New(cfg *config.Config, log *logger.Logger, h *Handlers, done <-chan struct{}) http.Handler {
	r := chi.NewRouter()

	// Global middleware. metrics wraps the logger so handlers see the
	// logger's response writer and can add log fields.
	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(metrics.Middleware)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.Server.FrontendURL, cfg.IsDevelopment()))
	r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, done))

	// Swagger UI loads its own scripts, so it sits outside the strict CSP
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SecurityHeaders(!cfg.IsDevelopment()))

		// Health checks
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/feed", func(r chi.Router) {
				r.Get("/", h.Feed.Status)
				r.Post("/start", h.Feed.Start)
				r.Post("/stop", h.Feed.Stop)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorMessage(w, http.StatusNotFound, errors.ErrCodeNotFound, "Route not found")
	})

	return r
}
