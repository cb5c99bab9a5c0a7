package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-task-service/internal/app/context"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
)

// memo runs fetch through the request cache when ctx has one, so repeated
// lookups within a request reach the downstream once.
func memo[T any](ctx context.Context, ref domain.EntityRef, fetch func(context.Context) (T, error)) (T, error) {
	if rc, ok := appctx.FromContext(ctx); ok {
		return appctx.GetOrFetch(rc, ref, fetch)
	}
	return fetch(ctx)
}

// remember replaces a cached entity after a successful write.
func remember(ctx context.Context, ref domain.EntityRef, v any) {
	if rc, ok := appctx.FromContext(ctx); ok {
		rc.Put(ref, v)
	}
}

func forget(ctx context.Context, refs ...domain.EntityRef) {
	rc, ok := appctx.FromContext(ctx)
	if !ok {
		return
	}
	for _, ref := range refs {
		rc.Forget(ref)
	}
}

// projectTodosRef keys the cached todo list of a project.
func projectTodosRef(id domain.ProjectID) domain.EntityRef {
	return domain.Ref("project_todos", id)
}

// logged records err against op at error level and hands it back.
func logged(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...slog.Attr) error {
	attrs = append(attrs, slog.String("operation", op), slog.Any("error", err))
	logger.LogAttrs(ctx, slog.LevelError, op+" failed", attrs...)
	return err
}

// required is the error for a nil entity argument.
func required(field string) error {
	return &domain.ValidationError{Fields: map[string]string{field: domain.MsgRequired}}
}
