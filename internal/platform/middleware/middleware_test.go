package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape/internal/platform/metrics"
)

func TestAccessLogIncludesRouteAndAgent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(AccessLog(logger))
	r.Get("/api/app/id/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/app/id/5", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/api/app/id/{id}", line["route"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.Equal(t, "Firefox", line["browser"])
}

func TestRecoverWritesInternalError(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := Recover(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), m)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, w.Body.String())
	assert.InDelta(t, 1, testutil.ToFloat64(m.Panics), 0)
}

func TestLatencyUsesRoutePattern(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(Latency(m))
	r.Get("/api/app-group/{id}/applications", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/app-group/9/applications", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}
