package app

import (
	"context"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/go-task-service/internal/app/context"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func pid(raw string) domain.ProjectID { return domain.NewProjectID(raw) }

func tid(raw string) domain.TodoID { return domain.NewTodoID(raw) }

func projectIDPtr(raw string) *domain.ProjectID {
	v := pid(raw)
	return &v
}

func validProject() project.Project {
	return project.Project{
		ID:          pid("1"),
		Name:        "Release 2.4",
		Description: "Everything shipping in 2.4",
		CreatedAt:   epoch,
		UpdatedAt:   epoch,
	}
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          tid("1"),
		Title:       "Write changelog",
		Description: "Summarize merged changes",
		Status:      todo.StatusPending,
		Category:    todo.CategoryWork,
		CreatedAt:   epoch,
		UpdatedAt:   epoch,
	}
}

// member returns a valid todo with the given id assigned to project p. An
// empty p leaves it ungrouped.
func member(id, p string) todo.Todo {
	td := validTodo()
	td.ID = tid(id)
	if p != "" {
		td.ProjectID = projectIDPtr(p)
	}
	return td
}

// ctxWithRC returns a context carrying a fresh RequestContext.
func ctxWithRC() context.Context {
	ctx := context.Background()
	return appctx.WithRequestContext(ctx, appctx.New(ctx))
}
