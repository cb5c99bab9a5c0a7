// Package health tracks the readiness of the service's downstream
// dependencies. Checks registered at startup are fanned out in parallel on
// every readiness probe.
package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the set of dependency checks. It is safe for concurrent
// use; registration may race with probes.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker. Checkers sharing a name collapse to the one
// registered last.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll runs every check concurrently and returns the outcome per checker
// name. A nil entry means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	outcomes := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			outcomes[i] = c.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	// Fold in registration order so a later duplicate overrides an earlier one.
	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i]
	}
	return results
}
