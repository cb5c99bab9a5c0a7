package appctx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
)

// journal records the order in which steps run and roll back.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(s string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, s)
}

func (j *journal) all() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

// step is a domain.Action writing "do <name>" and "undo <name>" to its
// journal.
type step struct {
	name        string
	log         *journal
	execErr     error
	rollbackErr error
	run         func(ctx context.Context) error

	executed   atomic.Bool
	rolledBack atomic.Bool
}

func newStep(log *journal, name string) *step { return &step{name: name, log: log} }

func (s *step) Execute(ctx context.Context) error {
	if s.run != nil {
		if err := s.run(ctx); err != nil {
			return err
		}
	}
	if s.execErr != nil {
		return s.execErr
	}
	s.executed.Store(true)
	s.log.add("do " + s.name)
	return nil
}

func (s *step) Rollback(context.Context) error {
	s.rolledBack.Store(true)
	s.log.add("undo " + s.name)
	return s.rollbackErr
}

func (s *step) Description() string { return s.name }

func TestCommit_RunsStepsInOrder(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	require.NoError(t, rc.AddAction(newStep(log, "ungroup todo 7")))
	require.NoError(t, rc.AddAction(newStep(log, "ungroup todo 8")))
	require.NoError(t, rc.AddAction(newStep(log, "delete project p-1")))

	require.NoError(t, rc.Commit(context.Background()))
	assert.Equal(t, []string{"do ungroup todo 7", "do ungroup todo 8", "do delete project p-1"}, log.all())
}

func TestCommit_Empty(t *testing.T) {
	t.Parallel()
	assert.NoError(t, New(context.Background()).Commit(context.Background()))
}

func TestCommit_FailureRollsBackEarlierStepsNewestFirst(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	first := newStep(log, "ungroup todo 7")
	second := newStep(log, "ungroup todo 8")
	second.rollbackErr = errors.New("downstream gone")
	failing := newStep(log, "delete project p-1")
	failing.execErr = errors.New("503 from todo api")
	never := newStep(log, "never")

	for _, s := range []*step{first, second, failing, never} {
		require.NoError(t, rc.AddAction(s))
	}

	err := rc.Commit(context.Background())
	require.ErrorIs(t, err, failing.execErr)
	assert.EqualError(t, err, "executing delete project p-1: 503 from todo api")

	assert.Equal(t, []string{
		"do ungroup todo 7",
		"do ungroup todo 8",
		"undo ungroup todo 8",
		"undo ungroup todo 7",
	}, log.all(), "a failing rollback does not stop the others")
	assert.False(t, failing.rolledBack.Load(), "the failed step itself is not rolled back")
	assert.False(t, never.executed.Load())
}

func TestCommit_SealsContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		failing bool
	}{
		{name: "after success"},
		{name: "after failure", failing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rc := New(context.Background())
			log := &journal{}
			s := newStep(log, "ungroup todo 7")
			if tt.failing {
				s.execErr = errors.New("boom")
			}
			require.NoError(t, rc.AddAction(s))
			_ = rc.Commit(context.Background())

			assert.True(t, rc.committed)
			assert.ErrorIs(t, rc.Commit(context.Background()), ErrAlreadyCommitted)
			assert.ErrorIs(t, rc.AddAction(newStep(log, "late")), ErrAlreadyCommitted)
			assert.ErrorIs(t, rc.AddGroup(newStep(log, "late")), ErrAlreadyCommitted)
			assert.ErrorIs(t, rc.Stage(todoRef("9"), "late", newStep(log, "late")), ErrAlreadyCommitted)
		})
	}
}

func TestQueue_RejectsNilActions(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	assert.ErrorIs(t, rc.AddAction(nil), ErrNilAction)
	assert.ErrorIs(t, rc.AddGroup(newStep(log, "ok"), nil), ErrNilAction)
	assert.ErrorIs(t, rc.Stage(todoRef("1"), "x", nil), ErrNilAction)
	assert.ErrorIs(t, rc.Execute(nil), ErrNilAction)
	assert.Empty(t, rc.items)
}

func TestAddGroup_RunsConcurrently(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	const size = 4
	var started sync.WaitGroup
	started.Add(size)
	steps := make([]domain.Action, size)
	for i := range size {
		s := newStep(log, "ungroup todo")
		s.run = func(context.Context) error {
			started.Done()
			started.Wait()
			return nil
		}
		steps[i] = s
	}
	require.NoError(t, rc.AddGroup(steps...))

	done := make(chan error, 1)
	go func() { done <- rc.Commit(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("group members did not run concurrently")
	}
	assert.Len(t, log.all(), size)
}

func TestAddGroup_PartialFailure(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	finished := newStep(log, "ungroup todo 7")
	failed := newStep(log, "ungroup todo 8")
	failed.execErr = errors.New("conflict")
	untouched := newStep(log, "ungroup todo 9")
	// Waits for cancellation so it never completes.
	untouched.run = func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	release := make(chan struct{})
	failed.run = func(context.Context) error {
		<-release
		return nil
	}

	require.NoError(t, rc.AddGroup(finished, failed, untouched))

	go func() {
		for !finished.executed.Load() {
			time.Sleep(time.Millisecond)
		}
		close(release)
	}()

	err := rc.Commit(context.Background())
	require.ErrorIs(t, err, failed.execErr)
	assert.ErrorContains(t, err, "3 parallel actions [ungroup todo 7; ungroup todo 8; ungroup todo 9]")

	assert.True(t, finished.rolledBack.Load())
	assert.False(t, failed.rolledBack.Load())
	assert.False(t, untouched.rolledBack.Load())
}

func TestAddGroup_RolledBackWhenLaterStepFails(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	a := newStep(log, "ungroup todo 7")
	b := newStep(log, "ungroup todo 8")
	last := newStep(log, "delete project p-1")
	last.execErr = errors.New("forbidden")

	require.NoError(t, rc.AddGroup(a, b))
	require.NoError(t, rc.AddAction(last))

	require.Error(t, rc.Commit(context.Background()))
	assert.True(t, a.rolledBack.Load())
	assert.True(t, b.rolledBack.Load())
	assert.False(t, last.rolledBack.Load())
}

func TestActionGroup_Description(t *testing.T) {
	t.Parallel()
	log := &journal{}

	tests := []struct {
		name    string
		actions []domain.Action
		want    string
	}{
		{name: "empty", want: "0 parallel actions []"},
		{name: "single", actions: []domain.Action{newStep(log, "ungroup todo 7")}, want: "ungroup todo 7"},
		{
			name:    "several",
			actions: []domain.Action{newStep(log, "ungroup todo 7"), newStep(log, "ungroup todo 8")},
			want:    "2 parallel actions [ungroup todo 7; ungroup todo 8]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := &actionGroup{actions: tt.actions}
			assert.Equal(t, tt.want, g.description())
		})
	}
}

func TestActionGroup_EmptyExecutes(t *testing.T) {
	t.Parallel()
	assert.NoError(t, (&actionGroup{}).execute(context.Background()))
}

func TestStage_ReadYourWrites(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	require.NoError(t, rc.Stage(todoRef("7"), "Write docs (staged)", newStep(log, "update todo 7")))

	got, err := GetOrFetch(rc, todoRef("7"), func(context.Context) (string, error) {
		t.Error("fetch called for a staged entity")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Write docs (staged)", got)

	require.NoError(t, rc.Commit(context.Background()))
	assert.Equal(t, []string{"do update todo 7"}, log.all())
}

func TestStage_FailureForgetsStagedEntities(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	failing := newStep(log, "update todo 8")
	failing.execErr = errors.New("conflict")
	require.NoError(t, rc.Stage(todoRef("7"), "staged 7", newStep(log, "update todo 7")))
	require.NoError(t, rc.Stage(todoRef("8"), "staged 8", failing))

	require.Error(t, rc.Commit(context.Background()))

	for _, raw := range []string{"7", "8"} {
		got, err := GetOrFetch(rc, todoRef(raw), func(context.Context) (string, error) { return "stored " + raw, nil })
		require.NoError(t, err)
		assert.Equal(t, "stored "+raw, got)
	}
}

func TestExecute_RunsImmediately(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	require.NoError(t, rc.Execute(newStep(log, "ping todo api")))
	assert.Equal(t, []string{"do ping todo api"}, log.all())
	assert.Empty(t, rc.items)

	require.NoError(t, rc.Commit(context.Background()))
	require.NoError(t, rc.Execute(newStep(log, "after commit")))
}
