// Package project holds the Project aggregate: a named collection of todos.
package project

import (
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

// Project represents a collection of related todos.
// It maps to the downstream "Group" concept; the ACL translates between the two.
type Project struct {
	ID          domain.ProjectID
	Name        string
	Description string
	Todos       []todo.Todo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate requires a name and a description.
func (p *Project) Validate() error {
	v := domain.Violations{}
	v.Require("name", p.Name)
	v.Require("description", p.Description)
	return v.Err()
}

// Progress returns the average progress of the project's todos.
func (p *Project) Progress() int {
	return todo.CalculateProjectProgress(p.Todos)
}
