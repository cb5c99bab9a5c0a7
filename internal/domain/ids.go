package domain

import "github.com/jsamuelsen11/go-task-service/internal/domain/id"

// Owner markers brand identifiers with the entity kind they refer to.
// They carry no data and are never instantiated.
type (
	TodoOwner    struct{}
	ProjectOwner struct{}
)

// TodoID identifies a todo. ProjectID identifies a project.
type (
	TodoID    = id.ID[TodoOwner]
	ProjectID = id.ID[ProjectOwner]
)

// NewTodoID wraps raw as a TodoID.
func NewTodoID(raw string) TodoID { return id.New[TodoOwner](raw) }

// NewProjectID wraps raw as a ProjectID.
func NewProjectID(raw string) ProjectID { return id.New[ProjectOwner](raw) }

// Entity kind names used in error messages and logs.
const (
	KindTodo    = "todo"
	KindProject = "project"
)
