package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

var created = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func changelogTodo(id string, progress int) todo.Todo {
	return todo.Todo{
		ID:              domain.NewTodoID(id),
		Title:           "Write changelog",
		Description:     "Summarize merged changes",
		Status:          todo.StatusInProgress,
		Category:        todo.CategoryWork,
		ProgressPercent: progress,
		CreatedAt:       created,
		UpdatedAt:       created.Add(time.Hour),
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	t.Run("ungrouped todo omits project_id", func(t *testing.T) {
		t.Parallel()
		td := changelogTodo("7", 40)
		body, err := json.Marshal(dto.ToTodoResponse(&td))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"id": "7",
			"title": "Write changelog",
			"description": "Summarize merged changes",
			"status": "in_progress",
			"category": "work",
			"progress_percent": 40,
			"created_at": "2026-03-01T09:00:00Z",
			"updated_at": "2026-03-01T10:00:00Z"
		}`, string(body))
	})

	t.Run("grouped todo carries its project", func(t *testing.T) {
		t.Parallel()
		td := changelogTodo("7", 0)
		pid := domain.NewProjectID("p-3")
		td.ProjectID = &pid

		got := dto.ToTodoResponse(&td)
		require.NotNil(t, got.ProjectID)
		assert.Equal(t, "p-3", *got.ProjectID)
		assert.Equal(t, 0, got.ProgressPercent)
	})
}

func TestToTodoListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToTodoListResponse([]todo.Todo{changelogTodo("1", 0), changelogTodo("2", 0)})
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, []string{"1", "2"}, []string{got.Todos[0].ID, got.Todos[1].ID})

	body, err := json.Marshal(dto.ToTodoListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"todos":[],"count":0}`, string(body))
}

func TestToProjectResponse(t *testing.T) {
	t.Parallel()

	base := project.Project{
		ID:          domain.NewProjectID("p-1"),
		Name:        "Release 2.4",
		Description: "Ship the spring release",
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	t.Run("without todos has no progress", func(t *testing.T) {
		t.Parallel()
		p := base
		body, err := json.Marshal(dto.ToProjectResponse(&p))
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(body, &raw))
		assert.Equal(t, "p-1", raw["id"])
		assert.NotContains(t, raw, "todos")
		assert.NotContains(t, raw, "progress_percent")
	})

	t.Run("with todos reports floored progress", func(t *testing.T) {
		t.Parallel()
		p := base
		p.Todos = []todo.Todo{changelogTodo("1", 100), changelogTodo("2", 0), changelogTodo("3", 50)}

		got := dto.ToProjectResponse(&p)
		require.Len(t, got.Todos, 3)
		require.NotNil(t, got.Progress)
		assert.Equal(t, 50, *got.Progress)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		other := base
		other.ID = domain.NewProjectID("p-2")

		got := dto.ToProjectListResponse([]project.Project{base, other})
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, "p-2", got.Projects[1].ID)
	})
}

func TestToBulkUpdateResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToBulkUpdateResponse(&ports.BulkUpdateResult{
		Updated: []todo.Todo{changelogTodo("1", 10), changelogTodo("3", 30)},
		Errors: []ports.BulkUpdateError{
			{TodoID: domain.NewTodoID("2"), Err: errors.New("todo 2 not found")},
		},
	})

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Succeeded)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, []dto.BulkUpdateErrorItem{{TodoID: "2", Message: "todo 2 not found"}}, got.Errors)

	body, err := json.Marshal(dto.ToBulkUpdateResponse(&ports.BulkUpdateResult{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"updated":[],"errors":[],"total":0,"succeeded":0,"failed":0}`, string(body))
}

func TestToReadinessResponse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		results   map[string]error
		wantReady bool
		want      dto.ReadinessResponse
	}{
		"no dependencies": {
			results:   nil,
			wantReady: true,
			want:      dto.ReadinessResponse{Status: dto.HealthReady, Checks: map[string]string{}},
		},
		"all healthy": {
			results:   map[string]error{"todo-api": nil},
			wantReady: true,
			want:      dto.ReadinessResponse{Status: dto.HealthReady, Checks: map[string]string{"todo-api": dto.HealthOK}},
		},
		"one failing": {
			results:   map[string]error{"todo-api": errors.New("circuit breaker is open"), "cache": nil},
			wantReady: false,
			want: dto.ReadinessResponse{Status: dto.HealthNotReady, Checks: map[string]string{
				"todo-api": "circuit breaker is open",
				"cache":    dto.HealthOK,
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ready := dto.ToReadinessResponse(tt.results)
			assert.Equal(t, tt.wantReady, ready)
			assert.Equal(t, tt.want, got)
		})
	}
}
