// Package api provides the HTTP API for the Roblox status service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/robloxstatus/robloxstatus/internal/api/handler"
	"github.com/robloxstatus/robloxstatus/internal/api/middleware"
	"github.com/robloxstatus/robloxstatus/internal/api/models"
	"github.com/robloxstatus/robloxstatus/internal/api/response"
	"github.com/robloxstatus/robloxstatus/internal/status"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version       string
	Logger        zerolog.Logger
	Metrics       *middleware.Metrics
	StatusService *status.Service
	RateLimit     middleware.RateLimitConfig
	CORSOrigin    string
}

// NewRouter creates a chi router with all routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, outermost first.
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	statusHandler := handler.NewStatusHandler(cfg.StatusService)
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.StatusService)

	r.Get("/", opsHandler.Index)
	r.Get("/health", opsHandler.HealthCheck)
	r.Get("/ready", opsHandler.ReadinessCheck)

	r.With(middleware.RateLimitByIP(cfg.RateLimit)).
		Get("/status", statusHandler.GetStatus)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusNotFound, models.CodeNotFound,
			"Endpoint not found", nil)
	})

	return r
}
