package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/id"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// pathID reads an opaque identifier from the chi URL param. The value is
// not interpreted; an empty segment gets a 400 response and ok is false.
//
// chi matches on the escaped path whenever the request carries one, so the
// segment is decoded here to hand every caller the same identifier no
// matter how the client escaped it.
func pathID[Owner any](w http.ResponseWriter, r *http.Request, param string) (v id.ID[Owner], ok bool) {
	raw := chi.URLParam(r, param)
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(raw); err == nil {
			raw = decoded
		}
	}
	if raw == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{param: domain.MsgRequired},
		})
		return v, false
	}
	return id.New[Owner](raw), true
}

func todoIDParam(w http.ResponseWriter, r *http.Request, param string) (domain.TodoID, bool) {
	return pathID[domain.TodoOwner](w, r, param)
}

func projectIDParam(w http.ResponseWriter, r *http.Request, param string) (domain.ProjectID, bool) {
	return pathID[domain.ProjectOwner](w, r, param)
}

// reply writes err as a problem response, otherwise render(v) with status.
func reply[T, R any](w http.ResponseWriter, r *http.Request, status int, v T, err error, render func(T) R) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, status, render(v))
}

// replyNoContent writes err as a problem response, otherwise 204.
func replyNoContent(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseTodoFilter reads the status, category and project_id query
// parameters. Unknown status or category values are a validation error.
func parseTodoFilter(r *http.Request) (todo.Filter, error) {
	q := r.URL.Query()
	v := domain.Violations{}

	status, err := todo.ParseStatus(q.Get("status"))
	v.Check(err == nil, "status", "%v", err)
	category, err := todo.ParseCategory(q.Get("category"))
	v.Check(err == nil, "category", "%v", err)
	if err := v.Err(); err != nil {
		return todo.Filter{}, err
	}

	filter := todo.Filter{Status: status, Category: category}
	if raw := q.Get("project_id"); raw != "" {
		pid := domain.NewProjectID(raw)
		filter.ProjectID = &pid
	}
	return filter, nil
}

func toTodoUpdates(items []dto.BulkTodoUpdate) []ports.TodoUpdate {
	updates := make([]ports.TodoUpdate, len(items))
	for i := range items {
		td := items[i].ToTodo()
		updates[i] = ports.TodoUpdate{TodoID: td.ID, Todo: td}
	}
	return updates
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

// request is a JSON body that checks its own fields.
type request interface {
	Validate() error
}

// decode reads a JSON body of at most maxJSONBodyBytes into dst and
// validates it. On failure it writes a 400 response and returns false.
func decode[T request](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
