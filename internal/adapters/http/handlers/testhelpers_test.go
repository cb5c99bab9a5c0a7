package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

var stamp = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// call runs h on a request for target. body is sent as is when it is a
// string and JSON-encoded otherwise; params are chi URL params given as
// name, value pairs.
func call(t *testing.T, h http.HandlerFunc, method, target string, body any, params ...string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		rd = buf
	}

	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}

// requireProblem checks for a problem document with the given status and
// returns it.
func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, status int) dto.ErrorResponse {
	t.Helper()
	requireStatus(t, rec, status)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	return decodeJSON[dto.ErrorResponse](t, rec)
}

func sampleProject(id string) project.Project {
	return project.Project{
		ID:          domain.NewProjectID(id),
		Name:        "Release 2.4",
		Description: "Everything shipping in 2.4",
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
}

func sampleTodo(id string) todo.Todo {
	return todo.Todo{
		ID:          domain.NewTodoID(id),
		Title:       "Write changelog",
		Description: "Summarize merged changes",
		Status:      todo.StatusPending,
		Category:    todo.CategoryWork,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
}

func ptr[T any](v T) *T { return &v }
