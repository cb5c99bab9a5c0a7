package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

// ProjectService is the inbound port for projects and the todos reached
// through them. Missing projects or todos are *domain.NotFoundError; a todo
// owned by another project counts as missing.
type ProjectService interface {
	// ListProjects returns every project without its todos.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// GetProject returns the project with its todos populated.
	GetProject(ctx context.Context, id domain.ProjectID) (*project.Project, error)

	CreateProject(ctx context.Context, project *project.Project) (*project.Project, error)
	UpdateProject(ctx context.Context, id domain.ProjectID, project *project.Project) (*project.Project, error)

	// DeleteProject ungroups the project's todos, then deletes it. If the
	// delete fails the todos are put back.
	DeleteProject(ctx context.Context, id domain.ProjectID) error

	// AddTodo creates todo inside the project, overriding any ProjectID it
	// carries.
	AddTodo(ctx context.Context, projectID domain.ProjectID, todo *todo.Todo) (*todo.Todo, error)
	UpdateTodo(ctx context.Context, projectID domain.ProjectID, todoID domain.TodoID, todo *todo.Todo) (*todo.Todo, error)
	RemoveTodo(ctx context.Context, projectID domain.ProjectID, todoID domain.TodoID) error

	// BulkUpdateTodos applies updates concurrently. Each item succeeds or
	// fails on its own and lands in the result; the error return is kept
	// for failures of the whole request such as a missing project or an
	// oversized batch.
	BulkUpdateTodos(ctx context.Context, projectID domain.ProjectID, updates []TodoUpdate) (*BulkUpdateResult, error)
}

// TodoUpdate is one item of a bulk update: the todo to change and its
// replacement state.
type TodoUpdate struct {
	TodoID domain.TodoID
	Todo   *todo.Todo
}

// BulkUpdateError is a failed bulk item.
type BulkUpdateError struct {
	TodoID domain.TodoID
	Err    error
}

// BulkUpdateResult lists updated todos and failed items, each in request
// order.
type BulkUpdateResult struct {
	Updated []todo.Todo
	Errors  []BulkUpdateError
}

// TodoService is the inbound port for todos addressed directly.
type TodoService interface {
	// ListTodos returns todos matching filter. A zero filter matches all.
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)
	GetTodo(ctx context.Context, id domain.TodoID) (*todo.Todo, error)

	// CreateTodo validates todo and creates it. A set ProjectID must name an
	// existing project.
	CreateTodo(ctx context.Context, todo *todo.Todo) (*todo.Todo, error)

	// UpdateTodo replaces the mutable fields of an existing todo.
	UpdateTodo(ctx context.Context, id domain.TodoID, todo *todo.Todo) (*todo.Todo, error)
	DeleteTodo(ctx context.Context, id domain.TodoID) error
}
