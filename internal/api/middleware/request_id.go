package middleware

import (
	"context"
	"net/http"

	"github.com/lzjever/chimpgate/internal/core"
)

const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds what a caller can make us store in the audit trail.
const maxRequestIDLen = 128

type ctxKeyRequestID struct{}

// RequestID injects a request ID into the context, keeping the caller's
// X-Request-ID when it is usable.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = core.NewID()
		}
		ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, requestID)
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id assigned by RequestID.
func GetRequestID(r *http.Request) string {
	if id, ok := r.Context().Value(ctxKeyRequestID{}).(string); ok {
		return id
	}
	return ""
}
