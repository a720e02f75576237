package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const RequestIdKey key = 1

const requestIdHeader = "X-Request-Id"

// RequestId passes through an inbound X-Request-Id or mints a new one,
// stores it in the request context and echoes it on the response.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIdHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, rid)
		ctx := context.WithValue(r.Context(), RequestIdKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIdFromContext returns the request id, or "" outside the middleware
func RequestIdFromContext(ctx context.Context) string {
	rid, _ := ctx.Value(RequestIdKey).(string)
	return rid
}
