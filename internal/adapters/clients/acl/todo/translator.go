package todo

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/clients/acl/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

// ToDomainTodo converts a downstream TodoDTO to a domain Todo entity.
// Maps GroupID to ProjectID and parses RFC3339 timestamps.
func ToDomainTodo(dto *TodoDTO) todo.Todo {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	var projectID *domain.ProjectID
	if dto.GroupID != nil {
		pid := project.ToProjectID(project.GroupIDFromNumber(*dto.GroupID))
		projectID = &pid
	}

	return todo.Todo{
		ID:              domain.NewTodoID(dto.ID.String()),
		Title:           dto.Title,
		Description:     dto.Description,
		Status:          todo.Status(dto.Status),
		Category:        todo.Category(dto.Category),
		ProgressPercent: int(dto.ProgressPercent),
		ProjectID:       projectID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// ToDomainTodoList converts a downstream TodoListResponseDTO to a slice of
// domain Todo entities.
func ToDomainTodoList(dto TodoListResponseDTO) []todo.Todo {
	todos := make([]todo.Todo, len(dto.Todos))
	for i := range dto.Todos {
		todos[i] = ToDomainTodo(&dto.Todos[i])
	}
	return todos
}

// ToCreateTodoRequest converts a domain Todo entity to a downstream
// CreateTodoRequestDTO. Maps ProjectID to GroupID.
func ToCreateTodoRequest(t *todo.Todo) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status.String(),
		Category:        t.Category.String(),
		ProgressPercent: int64(t.ProgressPercent),
		GroupID:         groupNumber(t.ProjectID),
	}
}

// ToUpdateTodoRequest converts a domain Todo entity to a downstream
// UpdateTodoRequestDTO. All fields are set (full replacement semantics).
func ToUpdateTodoRequest(t *todo.Todo) UpdateTodoRequestDTO {
	status := t.Status.String()
	category := t.Category.String()
	progress := int64(t.ProgressPercent)

	return UpdateTodoRequestDTO{
		Title:           &t.Title,
		Description:     &t.Description,
		Status:          &status,
		Category:        &category,
		ProgressPercent: &progress,
		GroupID:         groupNumber(t.ProjectID),
	}
}

func groupNumber(projectID *domain.ProjectID) *json.Number {
	if projectID == nil {
		return nil
	}
	n := project.GroupNumber(project.ToGroupID(*projectID))
	return &n
}
