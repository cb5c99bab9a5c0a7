// Package appctx provides request-scoped context for orchestration services.
//
// RequestContext extends Go's context.Context with an entity cache for
// memoized lookups and a queue of staged actions committed with automatic
// rollback. Cache entries are keyed by domain.EntityRef, an erased
// identifier paired with its entity kind, so one cache holds todos,
// projects and derived lists side by side:
//
//	rc := appctx.New(ctx)
//
//	// Stage 1: Fetch data with memoization
//	p, err := appctx.GetOrFetch(rc, domain.ProjectRef(projectID), fetchProject)
//
//	// Stage 2: Stage write operations
//	rc.AddAction(&MarkDoneAction{TodoID: todoID})
//
//	// Stage 3: Execute all staged actions
//	err = rc.Commit(ctx)
//
// A new RequestContext is created per HTTP request. Lookups may run from
// several goroutines of the same request; concurrent lookups of the same
// entity share one fetch.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
)

// Compile-time check that RequestContext implements domain.WriteStager.
var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when AddAction, AddGroup, Stage, or Commit
// is called on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction,
// AddGroup, or Stage.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T: the same EntityRef was used for two
// different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a request-scoped context wrapper providing an entity
// cache and staged action execution.
type RequestContext struct {
	context.Context

	cacheMu sync.Mutex
	cache   map[domain.EntityRef]cacheEntry
	flight  singleflight.Group

	queueMu   sync.Mutex
	items     []actionItem
	committed bool
}

// cacheEntry stores the result of a fetch, including any error, so a failed
// lookup is not repeated within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[domain.EntityRef]cacheEntry),
	}
}

type ctxKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext carried by ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// GetOrFetch returns the cached value for ref, or calls fetchFn and caches
// its result. Errors are cached as well.
//
// Concurrent calls for the same ref run fetchFn once; the others wait for
// and share its result. The same ref must always be used with the same type
// T, otherwise GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](rc *RequestContext, ref domain.EntityRef, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.lookup(ref); ok {
		return unpack[T](ref, entry)
	}

	res, _, _ := rc.flight.Do(flightKey(ref), func() (any, error) {
		if entry, ok := rc.lookup(ref); ok {
			return entry, nil
		}
		val, err := fetchFn(rc.Context)
		entry := cacheEntry{value: val, err: err}
		rc.store(ref, entry)
		return entry, nil
	})
	entry, _ := res.(cacheEntry)
	return unpack[T](ref, entry)
}

func unpack[T any](ref domain.EntityRef, entry cacheEntry) (T, error) {
	var zero T
	if entry.err != nil {
		return zero, entry.err
	}
	if entry.value == nil {
		return zero, nil
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T, requested %T", ErrTypeMismatch, ref, entry.value, zero)
	}
	return v, nil
}

// flightKey joins kind and identifier with a separator that cannot occur in
// a kind name, so distinct refs never share a key.
func flightKey(ref domain.EntityRef) string {
	return ref.Kind + "\x00" + ref.ID.String()
}

func (rc *RequestContext) lookup(ref domain.EntityRef) (cacheEntry, bool) {
	rc.cacheMu.Lock()
	defer rc.cacheMu.Unlock()
	entry, ok := rc.cache[ref]
	return entry, ok
}

func (rc *RequestContext) store(ref domain.EntityRef, entry cacheEntry) {
	rc.cacheMu.Lock()
	defer rc.cacheMu.Unlock()
	rc.cache[ref] = entry
}

// Put caches value under ref without queueing an action. Use it to refresh
// a derived entry after writes that were already applied.
func (rc *RequestContext) Put(ref domain.EntityRef, value any) {
	rc.store(ref, cacheEntry{value: value})
}

// Forget drops the cached entry for ref, if any. The next GetOrFetch for
// ref calls its fetch function again.
func (rc *RequestContext) Forget(ref domain.EntityRef) {
	rc.cacheMu.Lock()
	defer rc.cacheMu.Unlock()
	delete(rc.cache, ref)
}

// DataProvider binds an EntityRef and fetch function together, so callers
// retrieve the value without repeating both at every call site.
type DataProvider[T any] struct {
	ref     domain.EntityRef
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider for ref.
func NewDataProvider[T any](ref domain.EntityRef, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{ref: ref, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.ref, p.fetchFn)
}

// Stage caches entity under ref and queues action for Commit. Later
// GetOrFetch calls for ref return the staged entity instead of fetching.
func (rc *RequestContext) Stage(ref domain.EntityRef, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.store(ref, cacheEntry{value: entity})
	rc.items = append(rc.items, &singleAction{action: action, staged: &ref})
	return nil
}

// Execute runs an action immediately, outside the commit queue. It does not
// take part in Commit's rollback, and works after Commit.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
