// Package middleware holds the HTTP middleware for access logging, panic
// recovery, latency metrics and tracing.
package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/useragent"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"landscape/internal/platform/metrics"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

const tracerName = "landscape/http"

// AccessLog logs one line per request with the parsed user agent.
func AccessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			ctx := r.Context()
			ua := useragent.New(r.UserAgent())
			browser, version := ua.Browser()
			logger.InfoContext(ctx, "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"route", RoutePattern(r),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestcontext.RequestID(ctx),
				"user", requestcontext.Username(ctx),
				"client_ip", requestcontext.ClientIP(ctx),
				"browser", browser,
				"browser_version", version,
				"os", ua.OS(),
				"mobile", ua.Mobile(),
				"bot", ua.Bot(),
			)
		})
	}
}

// Recover turns handler panics into a 500 response.
func Recover(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.IncrementPanics()
				logger.ErrorContext(r.Context(), "panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
					"request_id", requestcontext.RequestID(r.Context()),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal error"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Latency records request duration by route pattern.
func Latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			m.ObserveRequest(r.Method, RoutePattern(r), strconv.Itoa(ww.Status()), time.Since(start))
		})
	}
}

// Trace opens a server span per request on the global tracer provider.
func Trace(next http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		span.SetName(r.Method + " " + RoutePattern(r))
		span.SetAttributes(
			attribute.Int("http.status_code", ww.Status()),
			attribute.String("http.route", RoutePattern(r)),
			attribute.String("request_id", requestcontext.RequestID(ctx)),
		)
	})
}

// RoutePattern returns the matched chi route, falling back to the raw path.
func RoutePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
