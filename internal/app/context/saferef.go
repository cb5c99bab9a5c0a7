package appctx

import "sync"

// SafeRef guards a value shared by the goroutines of one request, such as
// the working set of a bulk update. Readers share a lock; Set and Update
// are exclusive.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the value. For reference types such as maps the
// copy aliases the guarded value, so read such values inside Update.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	r.val = val
	r.mu.Unlock()
}

// Update runs fn with exclusive access to the value.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
