package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

// TodoClient is the outbound port to the downstream todo API, one method per
// endpoint. The downstream calls projects "groups"; implementations translate.
// Lookups of a missing resource fail with *domain.NotFoundError.
type TodoClient interface {
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)
	GetTodo(ctx context.Context, id domain.TodoID) (*todo.Todo, error)
	CreateTodo(ctx context.Context, todo *todo.Todo) (*todo.Todo, error)
	UpdateTodo(ctx context.Context, id domain.TodoID, todo *todo.Todo) (*todo.Todo, error)
	DeleteTodo(ctx context.Context, id domain.TodoID) error

	// ListProjects returns projects without todos.
	ListProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id domain.ProjectID) (*project.Project, error)
	CreateProject(ctx context.Context, project *project.Project) (*project.Project, error)
	UpdateProject(ctx context.Context, id domain.ProjectID, project *project.Project) (*project.Project, error)

	// DeleteProject removes the project only; the downstream leaves its
	// todos ungrouped.
	DeleteProject(ctx context.Context, id domain.ProjectID) error

	// GetProjectTodos lists the project's todos narrowed by filter.
	GetProjectTodos(ctx context.Context, projectID domain.ProjectID, filter todo.Filter) ([]todo.Todo, error)
}
