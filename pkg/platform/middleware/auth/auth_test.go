package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"landscape/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return s.claims, s.err
}

func captureUser(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = requestcontext.Username(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("valid token sets username", func(t *testing.T) {
		var user string
		h := RequireAuth(stubValidator{claims: &JWTClaims{Username: "alice"}}, logger)(captureUser(&user))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "alice", user)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		var user string
		h := RequireAuth(stubValidator{}, logger)(captureUser(&user))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized","error_description":"Missing or invalid Authorization header"}`, w.Body.String())
		assert.Empty(t, user)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		var user string
		h := RequireAuth(stubValidator{err: errors.New("bad")}, logger)(captureUser(&user))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireDevUser(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var user string
	h := RequireDevUser("X-Landscape-User", logger)(captureUser(&user))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Landscape-User", " carol ")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "carol", user)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
