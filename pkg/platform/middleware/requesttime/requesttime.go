// Package requesttime provides middleware for request-scoped time.
// All writes within a single HTTP request share the same "now" timestamp,
// so change-log entries and last_updated_at columns line up.
package requesttime

import (
	"net/http"
	"time"

	"landscape/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
