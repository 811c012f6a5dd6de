package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"landscape/pkg/requestcontext"
)

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded for takes first hop", headers: map[string]string{"X-Forwarded-For": "10.1.1.1, 10.0.0.2"}, want: "10.1.1.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 10.2.2.2 "}, want: "10.2.2.2"},
		{name: "remote addr ipv4", remote: "192.168.0.5:5555", want: "192.168.0.5"},
		{name: "remote addr ipv6", remote: "[::1]:5555", want: "::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(r))
		})
	}
}

func TestClientMetadataMiddleware(t *testing.T) {
	var ip, ua string
	h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = requestcontext.ClientIP(r.Context())
		ua = requestcontext.UserAgent(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "10.9.9.9")
	r.Header.Set("User-Agent", "curl/8.0")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "10.9.9.9", ip)
	assert.Equal(t, "curl/8.0", ua)
}
