package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// ungroupTodo clears a todo's project. Rollback restores the original.
type ungroupTodo struct {
	client   ports.TodoClient
	original todo.Todo
}

func (a *ungroupTodo) Execute(ctx context.Context) error {
	td := a.original
	td.ProjectID = nil
	_, err := a.client.UpdateTodo(ctx, td.ID, &td)
	return err
}

func (a *ungroupTodo) Rollback(ctx context.Context) error {
	td := a.original
	_, err := a.client.UpdateTodo(ctx, td.ID, &td)
	return err
}

func (a *ungroupTodo) Description() string {
	return fmt.Sprintf("ungroup todo %s", a.original.ID)
}

// deleteProject removes the project downstream. It runs last in its unit
// of work, so its Rollback is never needed.
type deleteProject struct {
	client ports.TodoClient
	id     domain.ProjectID
}

func (a *deleteProject) Execute(ctx context.Context) error {
	return a.client.DeleteProject(ctx, a.id)
}

func (a *deleteProject) Rollback(context.Context) error { return nil }

func (a *deleteProject) Description() string {
	return fmt.Sprintf("delete project %s", a.id)
}
