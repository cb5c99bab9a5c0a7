package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

var _ ports.TodoService = (*TodoService)(nil)

// TodoService serves todos addressed by their own ID.
type TodoService struct {
	todoClient ports.TodoClient
	logger     *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(client ports.TodoClient, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{todoClient: client, logger: logger}
}

// ListTodos lists todos matching filter. A project filter goes to that
// project's endpoint.
func (s *TodoService) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos",
		slog.String("status", filter.Status.String()),
		slog.String("category", filter.Category.String()),
	)

	v := domain.Violations{}
	v.Check(filter.Status == "" || filter.Status.IsValid(), "status", "invalid: %q", filter.Status)
	v.Check(filter.Category == "" || filter.Category.IsValid(), "category", "invalid: %q", filter.Category)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var (
		todos []todo.Todo
		err   error
	)
	if filter.ProjectID != nil {
		narrowed := todo.Filter{Status: filter.Status, Category: filter.Category}
		todos, err = s.todoClient.GetProjectTodos(ctx, *filter.ProjectID, narrowed)
	} else {
		todos, err = s.todoClient.ListTodos(ctx, filter)
	}
	if err != nil {
		return nil, logged(ctx, s.logger, "ListTodos", err)
	}
	return todos, nil
}

func (s *TodoService) GetTodo(ctx context.Context, id domain.TodoID) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Any("id", id))
	td, err := memo(ctx, domain.TodoRef(id), func(ctx context.Context) (*todo.Todo, error) {
		return s.todoClient.GetTodo(ctx, id)
	})
	if err != nil {
		return nil, logged(ctx, s.logger, "GetTodo", err, slog.Any("id", id))
	}
	return td, nil
}

// CreateTodo validates td and creates it. A set ProjectID must name an
// existing project.
func (s *TodoService) CreateTodo(ctx context.Context, td *todo.Todo) (*todo.Todo, error) {
	if td == nil {
		return nil, required("todo")
	}
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", td.Title))
	if err := s.admit(ctx, "CreateTodo", td); err != nil {
		return nil, err
	}

	created, err := s.todoClient.CreateTodo(ctx, td)
	if err != nil {
		return nil, logged(ctx, s.logger, "CreateTodo", err)
	}
	return created, nil
}

// UpdateTodo replaces the mutable fields of todo id.
func (s *TodoService) UpdateTodo(ctx context.Context, id domain.TodoID, td *todo.Todo) (*todo.Todo, error) {
	if td == nil {
		return nil, required("todo")
	}
	s.logger.InfoContext(ctx, "updating todo", slog.Any("id", id))
	if err := s.admit(ctx, "UpdateTodo", td); err != nil {
		return nil, err
	}

	updated, err := s.todoClient.UpdateTodo(ctx, id, td)
	if err != nil {
		return nil, logged(ctx, s.logger, "UpdateTodo", err, slog.Any("id", id))
	}
	remember(ctx, domain.TodoRef(id), updated)
	return updated, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id domain.TodoID) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Any("id", id))
	if err := s.todoClient.DeleteTodo(ctx, id); err != nil {
		return logged(ctx, s.logger, "DeleteTodo", err, slog.Any("id", id))
	}
	forget(ctx, domain.TodoRef(id))
	return nil
}

// admit validates td and, when it names a project, checks the project
// exists. The lookup shares ProjectService's cache entry.
func (s *TodoService) admit(ctx context.Context, op string, td *todo.Todo) error {
	if err := td.Validate(); err != nil {
		return err
	}
	if td.ProjectID == nil {
		return nil
	}
	pid := *td.ProjectID
	_, err := memo(ctx, domain.ProjectRef(pid), func(ctx context.Context) (*project.Project, error) {
		return s.todoClient.GetProject(ctx, pid)
	})
	if err != nil {
		return logged(ctx, s.logger, op, fmt.Errorf("verifying project: %w", err), slog.Any("project_id", pid))
	}
	return nil
}
