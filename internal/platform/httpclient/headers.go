package httpclient

import (
	"context"
	"net/http"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// outboundHeaders pairs each propagated header with its context key.
var outboundHeaders = []struct {
	name string
	key  any
}{
	{"X-Request-ID", requestIDKey{}},
	{"X-Correlation-ID", correlationIDKey{}},
}

// WithRequestID stores the inbound request ID for outbound calls made with
// ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation ID for outbound calls
// made with ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func propagateIDs(ctx context.Context, h http.Header) {
	for _, oh := range outboundHeaders {
		if v, ok := ctx.Value(oh.key).(string); ok && v != "" {
			h.Set(oh.name, v)
		}
	}
}
