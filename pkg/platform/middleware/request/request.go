// Package request assigns and propagates request correlation ids.
package request

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"landscape/pkg/requestcontext"
)

// HeaderRequestID is read from inbound requests and echoed on responses.
const HeaderRequestID = "X-Request-ID"

// RequestID reuses a caller supplied id when present, otherwise generates one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request id from the context.
func GetRequestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}
