// Package http provides the inbound HTTP adapter: routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/handlers"
)

// NewRouter registers the task API and health routes behind middlewares,
// outermost first. Unknown paths and methods get problem responses like
// every other failure.
func NewRouter(
	projects *handlers.ProjectHandler,
	todos *handlers.TodoHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("%s is not supported on %s", r.Method, r.URL.Path))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.ListProjects)
			r.Post("/", projects.CreateProject)
			r.Get("/{id}", projects.GetProject)
			r.Patch("/{id}", projects.UpdateProject)
			r.Delete("/{id}", projects.DeleteProject)

			r.Route("/{projectId}/todos", func(r chi.Router) {
				r.Post("/", projects.AddProjectTodo)
				// Registered before /{todoId}; chi prefers static segments anyway.
				r.Patch("/bulk", projects.BulkUpdateProjectTodos)
				r.Patch("/{todoId}", projects.UpdateProjectTodo)
				r.Delete("/{todoId}", projects.RemoveProjectTodo)
			})
		})

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", todos.ListTodos)
			r.Post("/", todos.CreateTodo)
			r.Get("/{id}", todos.GetTodo)
			r.Patch("/{id}", todos.UpdateTodo)
			r.Delete("/{id}", todos.DeleteTodo)
		})
	})

	return r
}
