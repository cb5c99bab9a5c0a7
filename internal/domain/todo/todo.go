package todo

import (
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
)

// Todo is a unit of work with a status, a category and a completion
// percentage. A todo with a nil ProjectID is ungrouped.
type Todo struct {
	ID              domain.TodoID
	Title           string
	Description     string
	Status          Status
	Category        Category
	ProgressPercent int
	ProjectID       *domain.ProjectID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate reports every broken field rule as a *domain.ValidationError.
func (t *Todo) Validate() error {
	v := domain.Violations{}
	v.Require("title", t.Title)
	v.Require("description", t.Description)
	v.Check(t.Status.IsValid(), "status", "invalid: %q", t.Status)
	v.Check(t.Category.IsValid(), "category", "invalid: %q", t.Category)
	v.Check(ValidProgress(t.ProgressPercent), "progress_percent", "must be 0-100, got %d", t.ProgressPercent)
	v.Check(t.ProjectID == nil || !t.ProjectID.IsZero(), "project_id", domain.MsgNotEmpty)
	return v.Err()
}

// BelongsTo reports whether the todo is assigned to projectID.
func (t *Todo) BelongsTo(projectID domain.ProjectID) bool {
	return t.ProjectID != nil && *t.ProjectID == projectID
}

// ValidProgress reports whether p is a percentage from 0 to 100.
func ValidProgress(p int) bool { return p >= 0 && p <= 100 }
