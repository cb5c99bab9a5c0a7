package dto

import (
	"fmt"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate requires a name and a description.
func (r *CreateProjectRequest) Validate() error {
	v := domain.Violations{}
	v.Require("name", r.Name)
	v.Require("description", r.Description)
	return v.Err()
}

// ToProject maps the request to a new domain Project.
func (r *CreateProjectRequest) ToProject() *project.Project {
	return &project.Project{Name: r.Name, Description: r.Description}
}

// UpdateProjectRequest represents the JSON body for updating an existing project.
// All fields are optional; nil means "do not change this field".
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate rejects provided fields that are blank.
func (r *UpdateProjectRequest) Validate() error {
	v := domain.Violations{}
	v.NotBlank("name", r.Name)
	v.NotBlank("description", r.Description)
	return v.Err()
}

// ApplyTo returns a copy of current with the provided fields replaced.
// Todos are not carried over.
func (r *UpdateProjectRequest) ApplyTo(current *project.Project) *project.Project {
	p := &project.Project{
		ID:          current.ID,
		Name:        current.Name,
		Description: current.Description,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   current.UpdatedAt,
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	return p
}

// CreateTodoRequest represents the JSON body for creating a new TODO item.
// ProjectID is honored on the flat endpoint; nested project routes take the
// project from the path.
type CreateTodoRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Status          string  `json:"status,omitempty"`
	Category        string  `json:"category,omitempty"`
	ProgressPercent int     `json:"progress_percent,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
}

// Validate requires a title and checks the enums and progress when given.
func (r *CreateTodoRequest) Validate() error {
	v := domain.Violations{}
	v.Require("title", r.Title)
	v.Require("description", r.Description)
	checkEnums(v, optional(r.Status), optional(r.Category))
	v.Check(todo.ValidProgress(r.ProgressPercent), "progress_percent", "must be 0-100, got %d", r.ProgressPercent)
	v.Check(r.ProjectID == nil || *r.ProjectID != "", "project_id", domain.MsgNotEmpty)
	return v.Err()
}

// ToTodo maps the request to a new domain Todo, defaulting status to pending
// and category to personal.
func (r *CreateTodoRequest) ToTodo() *todo.Todo {
	t := &todo.Todo{
		Title:           r.Title,
		Description:     r.Description,
		Status:          todo.StatusPending,
		Category:        todo.CategoryPersonal,
		ProgressPercent: r.ProgressPercent,
		ProjectID:       projectIDFrom(r.ProjectID),
	}
	if r.Status != "" {
		t.Status = todo.Status(r.Status)
	}
	if r.Category != "" {
		t.Category = todo.Category(r.Category)
	}
	return t
}

// UpdateTodoRequest represents the JSON body for updating an existing TODO item.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Status          *string `json:"status,omitempty"`
	Category        *string `json:"category,omitempty"`
	ProgressPercent *int    `json:"progress_percent,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
}

// Validate checks only the fields that are present.
func (r *UpdateTodoRequest) Validate() error {
	v := domain.Violations{}
	v.NotBlank("title", r.Title)
	v.NotBlank("description", r.Description)
	checkEnums(v, r.Status, r.Category)
	if r.ProgressPercent != nil {
		v.Check(todo.ValidProgress(*r.ProgressPercent), "progress_percent", "must be 0-100, got %d", *r.ProgressPercent)
	}
	v.Check(r.ProjectID == nil || *r.ProjectID != "", "project_id", domain.MsgNotEmpty)
	return v.Err()
}

// ApplyTo returns a copy of current with the provided fields replaced.
func (r *UpdateTodoRequest) ApplyTo(current *todo.Todo) *todo.Todo {
	t := *current
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Status != nil {
		t.Status = todo.Status(*r.Status)
	}
	if r.Category != nil {
		t.Category = todo.Category(*r.Category)
	}
	if r.ProgressPercent != nil {
		t.ProgressPercent = *r.ProgressPercent
	}
	if r.ProjectID != nil {
		t.ProjectID = projectIDFrom(r.ProjectID)
	}
	return &t
}

// BulkTodoUpdate is one item of a bulk update. Each item carries the full
// replacement state of the todo it names.
type BulkTodoUpdate struct {
	TodoID          string `json:"todo_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	Category        string `json:"category"`
	ProgressPercent int    `json:"progress_percent"`
}

// BulkUpdateTodosRequest represents the JSON body for
// PATCH /api/v1/projects/{projectId}/todos/bulk.
type BulkUpdateTodosRequest struct {
	Updates []BulkTodoUpdate `json:"updates"`
}

// Validate checks the shape of the batch. Item contents are validated per
// item by the service so that one bad item does not fail the batch.
func (r *BulkUpdateTodosRequest) Validate() error {
	v := domain.Violations{}
	v.Check(len(r.Updates) > 0, "updates", domain.MsgNotEmpty)
	for i, u := range r.Updates {
		v.Check(u.TodoID != "", fmt.Sprintf("updates[%d].todo_id", i), domain.MsgRequired)
	}
	return v.Err()
}

// ToTodo maps a bulk item to the replacement domain Todo.
func (u *BulkTodoUpdate) ToTodo() *todo.Todo {
	return &todo.Todo{
		ID:              domain.NewTodoID(u.TodoID),
		Title:           u.Title,
		Description:     u.Description,
		Status:          todo.Status(u.Status),
		Category:        todo.Category(u.Category),
		ProgressPercent: u.ProgressPercent,
	}
}

func projectIDFrom(raw *string) *domain.ProjectID {
	if raw == nil {
		return nil
	}
	p := domain.NewProjectID(*raw)
	return &p
}

// optional treats an empty string as an omitted field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// checkEnums validates the status and category fields when present.
func checkEnums(v domain.Violations, status, category *string) {
	if status != nil {
		v.Check(todo.Status(*status).IsValid(), "status", "invalid: %q", *status)
	}
	if category != nil {
		v.Check(todo.Category(*category).IsValid(), "category", "invalid: %q", *category)
	}
}
