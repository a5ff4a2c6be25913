package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lzjever/chimpgate/internal/core"
)

// APIKeyHeader carries a caller-supplied MailChimp or Mandrill key.
const APIKeyHeader = "X-Api-Key"

// Logger logs one line per request. Keys are logged redacted; health probes
// only at debug level.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("route", routePattern(r)),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", GetRequestID(r)),
		}
		if key := r.Header.Get(APIKeyHeader); key != "" {
			fields = append(fields, zap.String("api_key", core.RedactKey(key)))
		}

		switch {
		case r.URL.Path == "/healthz" || r.URL.Path == "/readyz":
			zap.L().Debug("request", fields...)
		case status >= http.StatusInternalServerError:
			zap.L().Warn("request", fields...)
		default:
			zap.L().Info("request", fields...)
		}
	})
}
