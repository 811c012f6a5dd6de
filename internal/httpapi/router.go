// Package httpapi assembles the chi router: platform middleware, health and
// metrics endpoints, and the authenticated /api tree.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"landscape/internal/platform/metrics"
	"landscape/internal/platform/middleware"
	"landscape/internal/ratelimit"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/platform/middleware/metadata"
	"landscape/pkg/platform/middleware/request"
	"landscape/pkg/platform/middleware/requesttime"
)

const healthTimeout = 2 * time.Second

// Registrar mounts one module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	CORSOrigins    []string
	RequestTimeout time.Duration
	// Authenticate sets the request username. Every /api route passes through it.
	Authenticate func(http.Handler) http.Handler
	WriteLimit   *ratelimit.Middleware
	HealthChecks map[string]HealthCheck
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewRouter builds the root handler and mounts each module under /api.
func NewRouter(cfg Config, modules ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recover(cfg.Logger, cfg.Metrics))
	r.Use(middleware.AccessLog(cfg.Logger))
	r.Use(middleware.Latency(cfg.Metrics))
	r.Use(middleware.Trace)
	// rs/cors treats an empty origin list as "*", so CORS is only mounted
	// for configured origins.
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", request.HeaderRequestID},
			ExposedHeaders:   []string{request.HeaderRequestID, "X-RateLimit-Remaining", "Retry-After"},
			AllowCredentials: true,
		}).Handler)
	}

	r.Get("/healthz", healthHandler(cfg.HealthChecks))
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.RequestTimeout > 0 {
			api.Use(chimw.Timeout(cfg.RequestTimeout))
		}
		if cfg.Authenticate != nil {
			api.Use(cfg.Authenticate)
		}
		api.Use(cfg.WriteLimit.LimitWrites)
		for _, m := range modules {
			m.Register(api)
		}
	})

	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
