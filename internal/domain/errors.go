package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-task-service/internal/domain/id"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Validation messages shared by entities and request bodies.
const (
	MsgRequired = "is required"
	MsgNotEmpty = "must not be empty"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the failures ordered by field name.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that no entity of the given kind exists with the given
// identifier. The identifier is erased so that one error type serves every
// entity kind. It wraps ErrNotFound.
type NotFoundError struct {
	Kind string
	ID   id.Erased
}

// NewNotFoundError builds a *NotFoundError for a branded identifier.
func NewNotFoundError[Owner any](kind string, v id.ID[Owner]) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: v.Erase()}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.ID.String(), ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
