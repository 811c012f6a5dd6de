package ratelimit

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"landscape/internal/platform/metrics"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

// Limiter is the port the middleware checks against.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Middleware applies the write limit to mutating requests.
type Middleware struct {
	limiter Limiter
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewMiddleware returns nil-safe middleware; a nil limiter disables limiting.
func NewMiddleware(limiter Limiter, logger *slog.Logger, m *metrics.Metrics) *Middleware {
	return &Middleware{limiter: limiter, logger: logger, metrics: m}
}

// LimitWrites rejects POST, PUT, PATCH and DELETE requests over the limit.
// Reads pass through. Limiter failures fail open.
func (m *Middleware) LimitWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.limiter == nil || !isWrite(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := requestcontext.Username(ctx)
		if key == "" {
			key = "ip:" + requestcontext.ClientIP(ctx)
		}

		result, err := m.limiter.Allow(ctx, key)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to check write rate limit",
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			m.metrics.IncrementRateLimited(routePattern(r))
			m.logger.WarnContext(ctx, "write rate limit exceeded",
				"user", requestcontext.Username(ctx),
				"request_id", requestcontext.RequestID(ctx),
			)
			w.Header().Set("Retry-After", strconv.FormatInt(max(int64(result.ResetAt.Sub(requestcontext.Now(ctx)).Seconds()), 1), 10))
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many write requests"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return r.URL.Path
}
