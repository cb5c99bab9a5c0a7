package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
)

func problemFor(t *testing.T, target string, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	dto.WriteErrorResponse(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody), err)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got), rec.Body.String())
	return rec, got
}

func TestWriteErrorResponse_Status(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"validation":           {&domain.ValidationError{Fields: map[string]string{"title": "is required"}}, http.StatusBadRequest},
		"todo not found":       {domain.NewNotFoundError(domain.KindTodo, domain.NewTodoID("7")), http.StatusNotFound},
		"bare not found":       {domain.ErrNotFound, http.StatusNotFound},
		"forbidden":            {domain.ErrForbidden, http.StatusForbidden},
		"conflict":             {fmt.Errorf("renaming project: %w", domain.ErrConflict), http.StatusConflict},
		"downstream down":      {fmt.Errorf("todo-api: %w", domain.ErrUnavailable), http.StatusBadGateway},
		"deadline":             {fmt.Errorf("listing todos: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		"canceled is unmapped": {context.Canceled, http.StatusInternalServerError},
		"anything else":        {errors.New("boom"), http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rec, got := problemFor(t, "/api/v1/todos", tt.err)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, http.StatusText(tt.want), got.Title)
			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, tt.err.Error(), got.Detail)
		})
	}
}

func TestWriteErrorResponse_InstanceIsRequestURI(t *testing.T) {
	t.Parallel()

	_, got := problemFor(t, "/api/v1/todos?status=done", domain.ErrConflict)
	assert.Equal(t, "/api/v1/todos?status=done", got.Instance)
}

func TestWriteErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	_, got := problemFor(t, "/api/v1/projects/p-1/todos/bulk", &domain.ValidationError{Fields: map[string]string{
		"updates[1].todo_id": "is required",
		"updates[0].todo_id": "is required",
		"title":              "must not be empty",
	}})

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.title", Message: "must not be empty"},
		{Location: "body.updates[0].todo_id", Message: "is required"},
		{Location: "body.updates[1].todo_id", Message: "is required"},
	}, got.Errors)
	assert.Nil(t, got.Resource)
}

func TestWriteErrorResponse_NotFoundNamesResource(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want *dto.ResourceRef
	}{
		"todo":    {domain.NewNotFoundError(domain.KindTodo, domain.NewTodoID("42")), &dto.ResourceRef{Kind: "todo", ID: "42"}},
		"project": {domain.NewNotFoundError(domain.KindProject, domain.NewProjectID("p-9")), &dto.ResourceRef{Kind: "project", ID: "p-9"}},
		"wrapped": {
			fmt.Errorf("adding todo: %w", domain.NewNotFoundError(domain.KindProject, domain.NewProjectID("p-2"))),
			&dto.ResourceRef{Kind: "project", ID: "p-2"},
		},
		"plain sentinel": {domain.ErrNotFound, nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, got := problemFor(t, "/api/v1/todos/42", tt.err)

			assert.Equal(t, tt.want, got.Resource)
			assert.Empty(t, got.Errors)
		})
	}
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	dto.WriteProblem(rec, httptest.NewRequest(http.MethodPut, "/api/v1/projects", http.NoBody),
		http.StatusMethodNotAllowed, "PUT is not supported here")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"type": "about:blank",
		"title": "Method Not Allowed",
		"status": 405,
		"detail": "PUT is not supported here",
		"instance": "/api/v1/projects"
	}`, rec.Body.String())
}
