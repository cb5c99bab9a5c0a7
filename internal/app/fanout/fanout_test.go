package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/app/fanout"
)

var errRejected = errors.New("rejected by downstream")

// update stands in for a downstream write: odd ids fail.
func update(_ context.Context, id int) (string, error) {
	if id%2 == 1 {
		return "", fmt.Errorf("todo %d: %w", id, errRejected)
	}
	return fmt.Sprintf("todo-%d", id), nil
}

func values[R any](results []fanout.Result[R]) []R {
	out := make([]R, len(results))
	for i, r := range results {
		out[i] = r.Value
	}
	return out
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		workers    int
		items      []int
		wantValues []string
		wantFailed []int
	}{
		"empty":            {workers: 4, items: []int{}, wantValues: []string{}},
		"all succeed":      {workers: 2, items: []int{2, 4, 6}, wantValues: []string{"todo-2", "todo-4", "todo-6"}},
		"partial failure":  {workers: 3, items: []int{2, 3, 4, 5}, wantValues: []string{"todo-2", "", "todo-4", ""}, wantFailed: []int{1, 3}},
		"more workers":     {workers: 100, items: []int{8, 10}, wantValues: []string{"todo-8", "todo-10"}},
		"zero workers":     {workers: 0, items: []int{2, 1}, wantValues: []string{"todo-2", ""}, wantFailed: []int{1}},
		"negative workers": {workers: -3, items: []int{4}, wantValues: []string{"todo-4"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			results := fanout.Run(context.Background(), tt.workers, tt.items, update)

			require.NotNil(t, results)
			assert.Equal(t, tt.wantValues, values(results))
			var failed []int
			for i, r := range results {
				if r.Err != nil {
					assert.ErrorIs(t, r.Err, errRejected)
					failed = append(failed, i)
				}
			}
			assert.Equal(t, tt.wantFailed, failed)
		})
	}
}

func TestRun_OrderFollowsInputNotCompletion(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond, 5 * time.Millisecond}
	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	assert.Equal(t, delays, values(results))
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3
	var inFlight, peak atomic.Int32
	items := make([]int, 12)

	fanout.Run(context.Background(), workers, items, func(context.Context, int) (struct{}, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.Positive(t, peak.Load())
}

func TestRun_CanceledContextSkipsPendingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls []int
	var mu sync.Mutex

	// One worker: the first item cancels, so the rest never start.
	results := fanout.Run(ctx, 1, []int{2, 4, 6}, func(_ context.Context, id int) (string, error) {
		mu.Lock()
		calls = append(calls, id)
		mu.Unlock()
		cancel()
		return "done", nil
	})

	assert.Equal(t, []int{2}, calls)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, context.Canceled)
	assert.ErrorIs(t, results[2].Err, context.Canceled)
}

func TestRun_RunningItemsSeeCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	results := fanout.Run(ctx, 2, []int{1, 2}, func(ctx context.Context, _ int) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.DeadlineExceeded)
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()

	items := []int{2, 3, 4, 5}
	got, failed := fanout.Partition(items, fanout.Run(context.Background(), 2, items, update))

	assert.Equal(t, []string{"todo-2", "todo-4"}, got)
	require.Len(t, failed, 2)
	assert.Equal(t, 1, failed[0].Index)
	assert.Equal(t, 3, failed[0].Item)
	assert.Equal(t, 5, failed[1].Item)
	assert.ErrorIs(t, failed[1].Err, errRejected)

	t.Run("nothing failed", func(t *testing.T) {
		t.Parallel()
		got, failed := fanout.Partition([]int{6}, fanout.Run(context.Background(), 1, []int{6}, update))
		assert.Equal(t, []string{"todo-6"}, got)
		assert.Nil(t, failed)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		got, failed := fanout.Partition([]int{}, fanout.Run(context.Background(), 1, []int{}, update))
		assert.Empty(t, got)
		assert.Nil(t, failed)
	})
}
