// Package dto holds the JSON shapes of the HTTP API and writes its RFC 9457
// problem responses.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// TodoResponse is a todo as clients see it. IDs go out as their text form.
type TodoResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
	Category        string  `json:"category"`
	ProgressPercent int     `json:"progress_percent"`
	ProjectID       *string `json:"project_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ProjectResponse omits todos and progress for projects fetched without
// their todos, and for empty ones.
type ProjectResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Todos       []TodoResponse `json:"todos,omitempty"`
	Progress    *int           `json:"progress_percent,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// BulkUpdateTodosResponse reports each item of a bulk update. Updated and
// Errors are always arrays, never null.
type BulkUpdateTodosResponse struct {
	Updated   []TodoResponse        `json:"updated"`
	Errors    []BulkUpdateErrorItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

type BulkUpdateErrorItem struct {
	TodoID  string `json:"todo_id"`
	Message string `json:"message"`
}

func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:              t.ID.String(),
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status.String(),
		Category:        t.Category.String(),
		ProgressPercent: t.ProgressPercent,
		CreatedAt:       timestamp(t.CreatedAt),
		UpdatedAt:       timestamp(t.UpdatedAt),
	}
	if t.ProjectID != nil {
		s := t.ProjectID.String()
		resp.ProjectID = &s
	}
	return resp
}

func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := each(todos, ToTodoResponse)
	return TodoListResponse{Todos: items, Count: len(items)}
}

func ToProjectResponse(p *project.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   timestamp(p.CreatedAt),
		UpdatedAt:   timestamp(p.UpdatedAt),
	}
	if len(p.Todos) == 0 {
		return resp
	}
	resp.Todos = each(p.Todos, ToTodoResponse)
	progress := p.Progress()
	resp.Progress = &progress
	return resp
}

func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := each(projects, ToProjectResponse)
	return ProjectListResponse{Projects: items, Count: len(items)}
}

func ToBulkUpdateResponse(result *ports.BulkUpdateResult) BulkUpdateTodosResponse {
	failed := each(result.Errors, func(e *ports.BulkUpdateError) BulkUpdateErrorItem {
		return BulkUpdateErrorItem{TodoID: e.TodoID.String(), Message: e.Err.Error()}
	})
	return BulkUpdateTodosResponse{
		Updated:   each(result.Updated, ToTodoResponse),
		Errors:    failed,
		Total:     len(result.Updated) + len(failed),
		Succeeded: len(result.Updated),
		Failed:    len(failed),
	}
}

// each maps in through conv, returning an empty non-nil slice for empty input
// so lists encode as [].
func each[S, D any](in []S, conv func(*S) D) []D {
	out := make([]D, len(in))
	for i := range in {
		out[i] = conv(&in[i])
	}
	return out
}

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Probe states reported by the health endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// dependency to "ok" or its failure message.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ToReadinessResponse folds per-dependency results into a report and says
// whether every dependency is healthy.
func ToReadinessResponse(results map[string]error) (ReadinessResponse, bool) {
	resp := ReadinessResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthOK
	}
	return resp, resp.Status == HealthReady
}
