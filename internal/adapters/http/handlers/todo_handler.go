package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// TodoHandler serves the flat /api/v1/todos resource.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a TodoHandler backed by svc.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTodoFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	todos, err := h.svc.ListTodos(r.Context(), filter)
	reply(w, r, http.StatusOK, todos, err, dto.ToTodoListResponse)
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decode(w, r, &req) {
		return
	}
	created, err := h.svc.CreateTodo(r.Context(), req.ToTodo())
	reply(w, r, http.StatusCreated, created, err, dto.ToTodoResponse)
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoIDParam(w, r, "id")
	if !ok {
		return
	}
	td, err := h.svc.GetTodo(r.Context(), id)
	reply(w, r, http.StatusOK, td, err, dto.ToTodoResponse)
}

// UpdateTodo handles PATCH /api/v1/todos/{id}. Absent fields keep their
// current value.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoIDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if !decode(w, r, &req) {
		return
	}

	current, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	updated, err := h.svc.UpdateTodo(r.Context(), id, req.ApplyTo(current))
	reply(w, r, http.StatusOK, updated, err, dto.ToTodoResponse)
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoIDParam(w, r, "id")
	if !ok {
		return
	}
	replyNoContent(w, r, h.svc.DeleteTodo(r.Context(), id))
}
