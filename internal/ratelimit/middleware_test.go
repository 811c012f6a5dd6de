package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"landscape/pkg/requestcontext"
)

type stubLimiter struct {
	result *Result
	err    error
	keys   []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (*Result, error) {
	s.keys = append(s.keys, key)
	return s.result, s.err
}

func serve(m *Middleware, method string) (*httptest.ResponseRecorder, bool) {
	called := false
	h := m.LimitWrites(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	r := httptest.NewRequest(method, "/api/app-group/1/applications", nil)
	r = r.WithContext(requestcontext.WithUsername(r.Context(), "alice"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w, called
}

func TestLimitWrites(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reset := time.Now().Add(time.Minute)

	t.Run("reads bypass the limiter", func(t *testing.T) {
		lim := &stubLimiter{}
		_, called := serve(NewMiddleware(lim, logger, nil), http.MethodGet)
		assert.True(t, called)
		assert.Empty(t, lim.keys)
	})

	t.Run("allowed write carries headers", func(t *testing.T) {
		lim := &stubLimiter{result: &Result{Allowed: true, Limit: 10, Remaining: 9, ResetAt: reset}}
		w, called := serve(NewMiddleware(lim, logger, nil), http.MethodPost)
		assert.True(t, called)
		assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, []string{"alice"}, lim.keys)
	})

	t.Run("exceeded write is rejected", func(t *testing.T) {
		lim := &stubLimiter{result: &Result{Allowed: false, Limit: 10, Remaining: 0, ResetAt: reset}}
		w, called := serve(NewMiddleware(lim, logger, nil), http.MethodDelete)
		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		lim := &stubLimiter{err: errors.New("redis down")}
		_, called := serve(NewMiddleware(lim, logger, nil), http.MethodPost)
		assert.True(t, called)
	})

	t.Run("nil limiter disables limiting", func(t *testing.T) {
		_, called := serve(NewMiddleware(nil, logger, nil), http.MethodPost)
		assert.True(t, called)
	})
}
