// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// ProjectHandler serves /api/v1/projects and the todos nested under it.
// Partial todo updates are merged onto the state returned by todos.
type ProjectHandler struct {
	svc   ports.ProjectService
	todos ports.TodoService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc ports.ProjectService, todos ports.TodoService) *ProjectHandler {
	return &ProjectHandler{svc: svc, todos: todos}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	reply(w, r, http.StatusOK, projects, err, dto.ToProjectListResponse)
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decode(w, r, &req) {
		return
	}
	created, err := h.svc.CreateProject(r.Context(), req.ToProject())
	reply(w, r, http.StatusCreated, created, err, dto.ToProjectResponse)
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectIDParam(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetProject(r.Context(), id)
	reply(w, r, http.StatusOK, p, err, dto.ToProjectResponse)
}

// UpdateProject handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectIDParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !decode(w, r, &req) {
		return
	}

	current, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	updated, err := h.svc.UpdateProject(r.Context(), id, req.ApplyTo(current))
	reply(w, r, http.StatusOK, updated, err, dto.ToProjectResponse)
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectIDParam(w, r, "id")
	if !ok {
		return
	}
	replyNoContent(w, r, h.svc.DeleteProject(r.Context(), id))
}

// AddProjectTodo handles POST /api/v1/projects/{projectId}/todos.
func (h *ProjectHandler) AddProjectTodo(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDParam(w, r, "projectId")
	if !ok {
		return
	}
	var req dto.CreateTodoRequest
	if !decode(w, r, &req) {
		return
	}
	created, err := h.svc.AddTodo(r.Context(), projectID, req.ToTodo())
	reply(w, r, http.StatusCreated, created, err, dto.ToTodoResponse)
}

// UpdateProjectTodo handles PATCH /api/v1/projects/{projectId}/todos/{todoId}.
func (h *ProjectHandler) UpdateProjectTodo(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDParam(w, r, "projectId")
	if !ok {
		return
	}
	todoID, ok := todoIDParam(w, r, "todoId")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if !decode(w, r, &req) {
		return
	}

	// The service checks ownership; it reuses this lookup through the
	// request cache.
	current, err := h.todos.GetTodo(r.Context(), todoID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	updated, err := h.svc.UpdateTodo(r.Context(), projectID, todoID, req.ApplyTo(current))
	reply(w, r, http.StatusOK, updated, err, dto.ToTodoResponse)
}

// RemoveProjectTodo handles DELETE /api/v1/projects/{projectId}/todos/{todoId}.
func (h *ProjectHandler) RemoveProjectTodo(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDParam(w, r, "projectId")
	if !ok {
		return
	}
	todoID, ok := todoIDParam(w, r, "todoId")
	if !ok {
		return
	}
	replyNoContent(w, r, h.svc.RemoveTodo(r.Context(), projectID, todoID))
}

// BulkUpdateProjectTodos handles PATCH /api/v1/projects/{projectId}/todos/bulk.
// Per-item failures are part of a 200 response.
func (h *ProjectHandler) BulkUpdateProjectTodos(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDParam(w, r, "projectId")
	if !ok {
		return
	}
	var req dto.BulkUpdateTodosRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.BulkUpdateTodos(r.Context(), projectID, toTodoUpdates(req.Updates))
	reply(w, r, http.StatusOK, result, err, dto.ToBulkUpdateResponse)
}
