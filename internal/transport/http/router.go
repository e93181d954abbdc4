// Package httptransport assembles the HTTP surface: middleware stack, public
// credential endpoints, health probes, and the metrics endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"credchain/internal/credential/handler"
	"credchain/internal/platform/health"
	"credchain/internal/platform/middleware"
)

// RouterConfig carries the transport-level knobs NewRouter needs.
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with the middleware stack.
// Handlers stay thin; business logic lives behind the credential service.
func NewRouter(credentials *handler.Handler, healthHandler *health.Handler, logger *slog.Logger, cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.ContentTypeJSON)

	credentials.Register(r)
	healthHandler.Register(r)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
