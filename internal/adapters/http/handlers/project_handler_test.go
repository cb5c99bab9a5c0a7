package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
	"github.com/jsamuelsen11/go-task-service/mocks"
)

type projectDeps struct {
	h     *handlers.ProjectHandler
	svc   *mocks.MockProjectService
	todos *mocks.MockTodoService
}

func newProjectDeps(t *testing.T) projectDeps {
	t.Helper()
	svc := mocks.NewMockProjectService(t)
	todos := mocks.NewMockTodoService(t)
	return projectDeps{h: handlers.NewProjectHandler(svc, todos), svc: svc, todos: todos}
}

var (
	p1 = domain.NewProjectID("p-1")
	t2 = domain.NewTodoID("t-2")
)

func TestListProjects(t *testing.T) {
	t.Parallel()
	d := newProjectDeps(t)
	d.svc.EXPECT().ListProjects(mock.Anything).Return([]project.Project{sampleProject("p-1"), sampleProject("p-2")}, nil)

	rec := call(t, d.h.ListProjects, http.MethodGet, "/api/v1/projects", nil)

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.ProjectListResponse](t, rec)
	assert.Equal(t, 2, got.Count)
	assert.Nil(t, got.Projects[0].Progress, "list entries carry no todos")
}

func TestCreateProject(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		created := sampleProject("p-9")
		d.svc.EXPECT().CreateProject(mock.Anything, &project.Project{Name: "Docs", Description: "Docs site"}).
			Return(&created, nil)

		rec := call(t, d.h.CreateProject, http.MethodPost, "/api/v1/projects",
			dto.CreateProjectRequest{Name: "Docs", Description: "Docs site"})

		requireStatus(t, rec, http.StatusCreated)
		assert.Equal(t, "p-9", decodeJSON[dto.ProjectResponse](t, rec).ID)
	})

	t.Run("field errors are listed", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)

		rec := call(t, d.h.CreateProject, http.MethodPost, "/api/v1/projects", dto.CreateProjectRequest{})

		got := requireProblem(t, rec, http.StatusBadRequest)
		assert.Equal(t, []dto.ErrorDetail{
			{Location: "body.description", Message: domain.MsgRequired},
			{Location: "body.name", Message: domain.MsgRequired},
		}, got.Errors)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)

		rec := call(t, d.h.CreateProject, http.MethodPost, "/api/v1/projects", "{")
		requireProblem(t, rec, http.StatusBadRequest)
	})
}

func TestGetProject_ReportsProgress(t *testing.T) {
	t.Parallel()
	d := newProjectDeps(t)

	p := sampleProject("p-1")
	done := sampleTodo("t-1")
	done.Status, done.ProgressPercent = todo.StatusDone, 100
	p.Todos = []todo.Todo{done, sampleTodo("t-2")}
	d.svc.EXPECT().GetProject(mock.Anything, p1).Return(&p, nil)

	rec := call(t, d.h.GetProject, http.MethodGet, "/api/v1/projects/p-1", nil, "id", "p-1")

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.ProjectResponse](t, rec)
	assert.Len(t, got.Todos, 2)
	require.NotNil(t, got.Progress)
	assert.Equal(t, 50, *got.Progress)
}

func TestUpdateProject_MergesOntoCurrent(t *testing.T) {
	t.Parallel()
	d := newProjectDeps(t)

	current := sampleProject("p-1")
	d.svc.EXPECT().GetProject(mock.Anything, p1).Return(&current, nil)
	d.svc.EXPECT().UpdateProject(mock.Anything, p1, mock.MatchedBy(func(p *project.Project) bool {
		return p.Name == "Release 2.5" && p.Description == current.Description
	})).RunAndReturn(func(_ context.Context, _ domain.ProjectID, p *project.Project) (*project.Project, error) {
		return p, nil
	})

	rec := call(t, d.h.UpdateProject, http.MethodPatch, "/api/v1/projects/p-1", `{"name":"Release 2.5"}`, "id", "p-1")

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "Release 2.5", decodeJSON[dto.ProjectResponse](t, rec).Name)
}

func TestProjectHandler_DeleteAndRemove(t *testing.T) {
	t.Parallel()

	t.Run("delete project", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		d.svc.EXPECT().DeleteProject(mock.Anything, p1).Return(nil)

		rec := call(t, d.h.DeleteProject, http.MethodDelete, "/api/v1/projects/p-1", nil, "id", "p-1")
		requireStatus(t, rec, http.StatusNoContent)
	})

	t.Run("remove foreign todo", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		d.svc.EXPECT().RemoveTodo(mock.Anything, p1, t2).Return(domain.NewNotFoundError(domain.KindTodo, t2))

		rec := call(t, d.h.RemoveProjectTodo, http.MethodDelete, "/api/v1/projects/p-1/todos/t-2", nil,
			"projectId", "p-1", "todoId", "t-2")

		got := requireProblem(t, rec, http.StatusNotFound)
		assert.Equal(t, &dto.ResourceRef{Kind: "todo", ID: "t-2"}, got.Resource)
	})

	t.Run("remove todo", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		d.svc.EXPECT().RemoveTodo(mock.Anything, p1, t2).Return(nil)

		rec := call(t, d.h.RemoveProjectTodo, http.MethodDelete, "/api/v1/projects/p-1/todos/t-2", nil,
			"projectId", "p-1", "todoId", "t-2")
		requireStatus(t, rec, http.StatusNoContent)
	})
}

func TestAddProjectTodo(t *testing.T) {
	t.Parallel()

	t.Run("created in the path project", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		created := sampleTodo("t-5")
		created.ProjectID = &p1
		d.svc.EXPECT().AddTodo(mock.Anything, p1, mock.MatchedBy(func(td *todo.Todo) bool {
			return td.Title == "Tag release"
		})).Return(&created, nil)

		rec := call(t, d.h.AddProjectTodo, http.MethodPost, "/api/v1/projects/p-1/todos",
			dto.CreateTodoRequest{Title: "Tag release", Description: "v2.4.0"}, "projectId", "p-1")

		requireStatus(t, rec, http.StatusCreated)
		assert.Equal(t, ptr("p-1"), decodeJSON[dto.TodoResponse](t, rec).ProjectID)
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)

		rec := call(t, d.h.AddProjectTodo, http.MethodPost, "/api/v1/projects/p-1/todos",
			dto.CreateTodoRequest{Title: "no description"}, "projectId", "p-1")
		requireProblem(t, rec, http.StatusBadRequest)
	})
}

func TestUpdateProjectTodo(t *testing.T) {
	t.Parallel()

	t.Run("merges onto the current todo", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		current := sampleTodo("t-2")
		current.ProjectID = &p1
		d.todos.EXPECT().GetTodo(mock.Anything, t2).Return(&current, nil)
		d.svc.EXPECT().UpdateTodo(mock.Anything, p1, t2, mock.MatchedBy(func(td *todo.Todo) bool {
			return td.Status == todo.StatusDone && td.Title == current.Title
		})).RunAndReturn(func(_ context.Context, _ domain.ProjectID, _ domain.TodoID, td *todo.Todo) (*todo.Todo, error) {
			return td, nil
		})

		rec := call(t, d.h.UpdateProjectTodo, http.MethodPatch, "/api/v1/projects/p-1/todos/t-2",
			`{"status":"done","progress_percent":100}`, "projectId", "p-1", "todoId", "t-2")

		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "done", decodeJSON[dto.TodoResponse](t, rec).Status)
	})

	t.Run("missing todo", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		d.todos.EXPECT().GetTodo(mock.Anything, domain.NewTodoID("x")).
			Return(nil, domain.NewNotFoundError(domain.KindTodo, domain.NewTodoID("x")))

		rec := call(t, d.h.UpdateProjectTodo, http.MethodPatch, "/api/v1/projects/p-1/todos/x", `{}`,
			"projectId", "p-1", "todoId", "x")
		requireProblem(t, rec, http.StatusNotFound)
	})
}

func TestProjectHandler_EmptyPathParams(t *testing.T) {
	t.Parallel()
	d := newProjectDeps(t)

	tests := []struct {
		name   string
		h      http.HandlerFunc
		method string
		body   any
		params []string
		field  string
	}{
		{"get", d.h.GetProject, http.MethodGet, nil, []string{"id", ""}, "body.id"},
		{"update", d.h.UpdateProject, http.MethodPatch, `{}`, []string{"id", ""}, "body.id"},
		{"delete", d.h.DeleteProject, http.MethodDelete, nil, []string{"id", ""}, "body.id"},
		{"add todo", d.h.AddProjectTodo, http.MethodPost, `{}`, []string{"projectId", ""}, "body.projectId"},
		{"update todo", d.h.UpdateProjectTodo, http.MethodPatch, `{}`, []string{"projectId", "p-1", "todoId", ""}, "body.todoId"},
		{"remove todo", d.h.RemoveProjectTodo, http.MethodDelete, nil, []string{"projectId", "", "todoId", "t-2"}, "body.projectId"},
		{"bulk", d.h.BulkUpdateProjectTodos, http.MethodPatch, `{}`, []string{"projectId", ""}, "body.projectId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(t, tt.h, tt.method, "/api/v1/projects", tt.body, tt.params...)

			got := requireProblem(t, rec, http.StatusBadRequest)
			require.Len(t, got.Errors, 1)
			assert.Equal(t, tt.field, got.Errors[0].Location)
		})
	}
}

func TestBulkUpdateProjectTodos(t *testing.T) {
	t.Parallel()

	t.Run("partial success is 200", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		done := sampleTodo("1")
		done.Status, done.ProgressPercent = todo.StatusDone, 100
		d.svc.EXPECT().BulkUpdateTodos(mock.Anything, p1, mock.MatchedBy(func(u []ports.TodoUpdate) bool {
			return len(u) == 2 && u[0].TodoID == domain.NewTodoID("1") && u[1].Todo.ID == t2
		})).Return(&ports.BulkUpdateResult{
			Updated: []todo.Todo{done},
			Errors:  []ports.BulkUpdateError{{TodoID: t2, Err: domain.NewNotFoundError(domain.KindTodo, t2)}},
		}, nil)

		rec := call(t, d.h.BulkUpdateProjectTodos, http.MethodPatch, "/api/v1/projects/p-1/todos/bulk",
			dto.BulkUpdateTodosRequest{Updates: []dto.BulkTodoUpdate{
				{TodoID: "1", Title: "A", Description: "a", Status: "done", Category: "work", ProgressPercent: 100},
				{TodoID: "t-2", Title: "B", Description: "b", Status: "pending", Category: "work"},
			}}, "projectId", "p-1")

		requireStatus(t, rec, http.StatusOK)
		got := decodeJSON[dto.BulkUpdateTodosResponse](t, rec)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, 1, got.Succeeded)
		assert.Equal(t, 1, got.Failed)
		assert.Equal(t, "t-2", got.Errors[0].TodoID)
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)

		rec := call(t, d.h.BulkUpdateProjectTodos, http.MethodPatch, "/api/v1/projects/p-1/todos/bulk",
			`{"updates":[]}`, "projectId", "p-1")
		requireProblem(t, rec, http.StatusBadRequest)
	})

	t.Run("missing project fails the batch", func(t *testing.T) {
		t.Parallel()
		d := newProjectDeps(t)
		gone := domain.NewProjectID("gone")
		d.svc.EXPECT().BulkUpdateTodos(mock.Anything, gone, mock.Anything).
			Return(nil, domain.NewNotFoundError(domain.KindProject, gone))

		rec := call(t, d.h.BulkUpdateProjectTodos, http.MethodPatch, "/api/v1/projects/gone/todos/bulk",
			`{"updates":[{"todo_id":"1"}]}`, "projectId", "gone")
		requireProblem(t, rec, http.StatusNotFound)
	})
}

func TestProjectHandler_ErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{domain.NewNotFoundError(domain.KindProject, p1), http.StatusNotFound},
		{&domain.ValidationError{Fields: map[string]string{"name": "bad"}}, http.StatusBadRequest},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUnavailable, http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.want), func(t *testing.T) {
			t.Parallel()
			d := newProjectDeps(t)
			d.svc.EXPECT().GetProject(mock.Anything, p1).Return(nil, tt.err)

			rec := call(t, d.h.GetProject, http.MethodGet, "/api/v1/projects/p-1", nil, "id", "p-1")

			got := requireProblem(t, rec, tt.want)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, "/api/v1/projects/p-1", got.Instance)
		})
	}
}
