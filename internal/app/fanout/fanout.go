// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results.
//
// Failures are per item: one item's error does not cancel the others. This
// is what partial-success bulk operations need.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// Once ctx is done, items that have not started record ctx.Err() and fn is
// not called for them. Items already running finish on their own; fn should
// honor ctx if it can block.
//
// Run blocks until every item has a result. A maxWorkers below 1 is treated
// as 1. If items is empty, Run returns an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	results := make([]Result[R], len(items))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	// Goroutines never return an error; per-item failures live in results.
	_ = g.Wait()
	return results
}

// Failed is an item whose call returned an error, with its input index.
type Failed[T any] struct {
	Index int
	Item  T
	Err   error
}

// Partition splits results produced by Run over items into successful values
// and failures. Both keep input order.
func Partition[T, R any](items []T, results []Result[R]) ([]R, []Failed[T]) {
	values := make([]R, 0, len(results))
	var failed []Failed[T]
	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, Failed[T]{Index: i, Item: items[i], Err: r.Err})
			continue
		}
		values = append(values, r.Value)
	}
	return values, failed
}
