package domain

import (
	"fmt"
	"strings"
)

// Violations collects per-field validation failures. The first failure
// recorded for a field wins.
//
//	v := domain.Violations{}
//	v.Require("title", t.Title)
//	v.Check(t.ProgressPercent <= 100, "progress_percent", "must be 0-100, got %d", t.ProgressPercent)
//	return v.Err()
type Violations map[string]string

// Check records the formatted message for field unless ok holds.
func (v Violations) Check(ok bool, field, format string, args ...any) {
	if ok {
		return
	}
	if _, seen := v[field]; !seen {
		v[field] = fmt.Sprintf(format, args...)
	}
}

// Require records MsgRequired for a blank value.
func (v Violations) Require(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, MsgRequired)
}

// NotBlank records MsgNotEmpty for a provided but blank value. A nil value
// means the field was omitted and passes.
func (v Violations) NotBlank(field string, value *string) {
	v.Check(value == nil || strings.TrimSpace(*value) != "", field, MsgNotEmpty)
}

// Err returns the collected failures as a *ValidationError, or nil.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Fields: v}
}
