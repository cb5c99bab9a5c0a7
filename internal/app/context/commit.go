package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
)

// Commit runs the queued steps in the order they were added. When a step
// fails, the steps before it are rolled back newest first, the cache entries
// written by Stage are dropped so later lookups see stored state, and the
// failure is returned wrapped with the step's description. Rollback errors
// are only logged.
//
// The context is committed once Commit starts, whatever the outcome: a
// second call, or any later AddAction, AddGroup or Stage, gets
// ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	items, err := rc.seal()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx).With(slog.String("operation", "RequestContext.Commit"))
	for i, item := range items {
		logger.InfoContext(ctx, "executing action",
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.description()),
		)
		if err := item.execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, rolling back",
				slog.Int("failed_step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
			unwind(ctx, logger, items[:i])
			rc.forgetStaged(items)
			return fmt.Errorf("executing %s: %w", item.description(), err)
		}
	}
	return nil
}

// seal marks the context committed and hands back the queue. Nothing can be
// appended afterwards, so the slice is read without the lock.
func (rc *RequestContext) seal() ([]actionItem, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	return rc.items, nil
}

// unwind rolls back done in reverse order.
func unwind(ctx context.Context, logger *slog.Logger, done []actionItem) {
	for i := len(done) - 1; i >= 0; i-- {
		item := done[i]
		logger.InfoContext(ctx, "rolling back action",
			slog.Int("step", i+1),
			slog.String("action", item.description()),
		)
		if err := item.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.Int("step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
		}
	}
}

func (rc *RequestContext) forgetStaged(items []actionItem) {
	for _, item := range items {
		if sa, ok := item.(*singleAction); ok && sa.staged != nil {
			rc.Forget(*sa.staged)
		}
	}
}
