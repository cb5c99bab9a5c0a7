package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
)

// actionItem is one step of the commit queue: a single action or a group
// run in parallel.
type actionItem interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

// singleAction adapts a domain.Action. staged names the cache entry of the
// not-yet-persisted entity when the action came from Stage.
type singleAction struct {
	action domain.Action
	staged *domain.EntityRef
}

func (s *singleAction) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *singleAction) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *singleAction) description() string                { return s.action.Description() }

// actionGroup runs its actions concurrently. The first failure cancels the
// others; whichever actions did finish are then rolled back, last added
// first, and the group reports the failure.
type actionGroup struct {
	actions []domain.Action
	done    []bool
}

func (g *actionGroup) execute(ctx context.Context) error {
	g.done = make([]bool, len(g.actions))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, a := range g.actions {
		eg.Go(func() error {
			if err := a.Execute(egCtx); err != nil {
				return err
			}
			g.done[i] = true
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.undo(ctx)
		return err
	}
	return nil
}

func (g *actionGroup) rollback(ctx context.Context) error {
	g.undo(ctx)
	return nil
}

// undo rolls back finished actions in reverse order. Failures are logged
// and do not stop the remaining rollbacks.
func (g *actionGroup) undo(ctx context.Context) {
	logger := logging.FromContext(ctx)
	for i := len(g.actions) - 1; i >= 0; i-- {
		if i >= len(g.done) || !g.done[i] {
			continue
		}
		g.done[i] = false
		if err := g.actions[i].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed in action group",
				slog.String("operation", "RequestContext.Commit"),
				slog.String("action", g.actions[i].Description()),
				slog.Any("error", err),
			)
		}
	}
}

func (g *actionGroup) description() string {
	if len(g.actions) == 1 {
		return g.actions[0].Description()
	}
	descs := make([]string, len(g.actions))
	for i, a := range g.actions {
		descs[i] = a.Description()
	}
	return fmt.Sprintf("%d parallel actions [%s]", len(g.actions), strings.Join(descs, "; "))
}

// AddAction queues action for Commit. It fails with ErrNilAction or, once
// the context is committed, ErrAlreadyCommitted. Safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(&singleAction{action: action})
}

// AddGroup queues actions to run concurrently as one Commit step. Errors
// are as for AddAction. Safe for concurrent use.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	return rc.enqueue(&actionGroup{actions: actions})
}

func (rc *RequestContext) enqueue(item actionItem) error {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, item)
	return nil
}
