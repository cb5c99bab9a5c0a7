// Package logging builds the service's slog logger and carries a
// request-scoped child logger through context.
//
// Identifiers implement slog.LogValuer, so they are logged as plain strings
// without conversion at the call site:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to complete todo",
//	    slog.String("operation", "CompleteTodo"),
//	    slog.Any("todo_id", todoID),
//	    slog.Any("error", err),
//	)
//
// Error logs name the operation and every entity involved. Inside an HTTP
// request the context logger already carries request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case; anything else means info. format "text" selects the
// text handler and any other value JSON. Debug logging adds source
// locations. All output passes through the redaction layer.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel accepts slog's level syntax, including offsets like "warn+2".
func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
