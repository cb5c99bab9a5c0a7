package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
)

// Logging logs one record when a request arrives and one when it finishes.
// Handlers get a child logger through logging.FromContext that already
// carries request_id and correlation_id, so it must run after RequestID and
// CorrelationID. At debug level the request headers are logged redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			log := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, log)
			target := []slog.Attr{slog.String("method", r.Method), slog.String("path", r.URL.Path)}

			log.LogAttrs(ctx, slog.LevelInfo, "request started", target...)
			if log.Enabled(ctx, slog.LevelDebug) {
				log.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			log.LogAttrs(ctx, slog.LevelInfo, "request completed", append(target,
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}
