package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape/internal/platform/metrics"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/platform/middleware/auth"
	"landscape/pkg/requestcontext"
	"landscape/pkg/testutil"
)

type echoModule struct{}

func (echoModule) Register(r chi.Router) {
	r.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"user": requestcontext.Username(r.Context()),
		})
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

func newTestRouter(checks map[string]HealthCheck) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	return NewRouter(Config{
		Logger:       logger,
		Metrics:      metrics.New(reg),
		Gatherer:     reg,
		Authenticate: auth.RequireDevUser("X-Landscape-User", logger),
		HealthChecks: checks,
	}, echoModule{})
}

func TestHealthz(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		router := newTestRouter(map[string]HealthCheck{
			"database": func(context.Context) error { return nil },
		})
		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		resp := testutil.UnmarshalResponse[healthResponse](t, rr)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Checks["database"])
	})

	t.Run("failing check degrades", func(t *testing.T) {
		router := newTestRouter(map[string]HealthCheck{
			"database": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("connection refused") },
		})
		rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		resp := testutil.UnmarshalResponse[healthResponse](t, rr)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["redis"])
	})
}

func TestAPIRequiresUser(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/api/echo", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/echo", nil)
	req.Header.Set("X-Landscape-User", "alice")
	rr = testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	resp := testutil.UnmarshalResponse[map[string]string](t, rr)
	assert.Equal(t, "alice", (*resp)["user"])
}

func TestPanicIsRecovered(t *testing.T) {
	router := newTestRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/boom", nil)
	req.Header.Set("X-Landscape-User", "alice")
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(nil)
	testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rr := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "landscape_http_request_duration_seconds")
}

func TestCORSPreflight(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(Config{
		Logger:      logger,
		CORSOrigins: []string{"https://landscape.example"},
	}, echoModule{})

	req := httptest.NewRequest(http.MethodOptions, "/api/echo", nil)
	req.Header.Set("Origin", "https://landscape.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, "https://landscape.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
