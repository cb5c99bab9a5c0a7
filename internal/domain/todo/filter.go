package todo

import "github.com/jsamuelsen11/go-task-service/internal/domain"

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status    Status
	Category  Category
	ProjectID *domain.ProjectID
}
