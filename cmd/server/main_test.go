package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwttoken "landscape/internal/jwt_token"
	"landscape/internal/platform/config"
	"landscape/pkg/requestcontext"
)

func whoAmI(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = requestcontext.Username(r.Context())
	})
}

func TestAuthenticator(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("dev header without signing key", func(t *testing.T) {
		var user string
		h := authenticator(config.Auth{DevUserHeader: "X-Landscape-User"}, log)(whoAmI(&user))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Landscape-User", "alice")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "alice", user)
	})

	t.Run("bearer token with signing key", func(t *testing.T) {
		cfg := config.Auth{JWTSigningKey: "test-key", Issuer: "landscape", Audience: "landscape-api", DevUserHeader: "X-Landscape-User"}
		token, err := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.Issuer, cfg.Audience).GenerateAccessToken("bob", time.Minute)
		require.NoError(t, err)

		var user string
		h := authenticator(cfg, log)(whoAmI(&user))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Landscape-User", "mallory")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "dev header is ignored once a key is set")

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr = httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "bob", user)
	})
}
