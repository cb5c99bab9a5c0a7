package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
)

// errPanicked is all a client learns about a panic.
var errPanicked = errors.New("internal server error")

// Recovery turns a handler panic into a logged error and, if nothing has
// been sent yet, a 500 problem response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				ctx := r.Context()
				logger.LogAttrs(ctx, slog.LevelError, "panic recovered",
					slog.Any("panic", fmt.Sprint(v)),
					slog.String("request_id", RequestIDFromContext(ctx)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				if rw.headerWritten {
					return
				}
				dto.WriteErrorResponse(rw, r, errPanicked)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
