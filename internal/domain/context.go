package domain

import (
	"context"

	"github.com/jsamuelsen11/go-task-service/internal/domain/id"
)

// Action is a single executable operation with rollback capability.
// Implementations should be idempotent where possible so retries are safe.
//
// Action lives in the domain layer so that domain services can reference it
// without depending on the application layer.
type Action interface {
	// Execute performs the action and should respect ctx cancellation.
	Execute(ctx context.Context) error

	// Rollback reverses a previously successful Execute. It is only called
	// if Execute returned nil. The context may differ from Execute's.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description for logs
	// (e.g., "mark todo 123 as done").
	Description() string
}

// WriteStager is the domain's view of the request-scoped write queue.
// Application services own the concrete implementation and hand it to
// domain services through this interface.
type WriteStager interface {
	// Stage caches entity under ref and queues action for Commit. Later
	// reads for the same ref observe the staged entity.
	Stage(ref EntityRef, entity any, action Action) error

	// Execute runs an action immediately, outside the commit queue. It is
	// not rolled back if Commit later fails.
	Execute(action Action) error
}

// EntityRef names an entity of any kind. It is comparable, so it serves as
// the key of caches that hold entities of several kinds at once.
type EntityRef struct {
	Kind string
	ID   id.Erased
}

// Ref builds an EntityRef from a branded identifier.
func Ref[Owner any](kind string, v id.ID[Owner]) EntityRef {
	return EntityRef{Kind: kind, ID: v.Erase()}
}

// TodoRef returns the EntityRef of a todo.
func TodoRef(v TodoID) EntityRef { return Ref(KindTodo, v) }

// ProjectRef returns the EntityRef of a project.
func ProjectRef(v ProjectID) EntityRef { return Ref(KindProject, v) }

func (r EntityRef) String() string {
	return r.Kind + ":" + r.ID.String()
}
