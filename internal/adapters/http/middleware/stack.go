// Package middleware holds the inbound HTTP pipeline of the task API. Stack
// assembles it in order:
//
//	RequestID → Recovery → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout → router
//
// Every middleware has the shape func(http.Handler) http.Handler.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack is the service's inbound pipeline in its required order. RequestID
// is outermost so that a recovered panic is logged with its request ID, and
// Timeout is innermost so that only handler work counts against
// requestTimeout. metrics may be nil.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, requestTimeout time.Duration) func(http.Handler) http.Handler {
	return Chain(
		RequestID(),
		Recovery(logger),
		CorrelationID(),
		AppContext(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(requestTimeout),
	)
}
