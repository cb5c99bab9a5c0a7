// Package todo holds the Todo entity, its status and category enums, list
// filters, and progress calculation.
package todo

import "fmt"

// Status represents the completion state of a Todo.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw into a Status. An empty string yields the empty
// Status (no filter); any other unknown value is an error.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if raw != "" && !s.IsValid() {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return s, nil
}
