package project

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation references a project that does
// not exist or has been soft-deleted.
var ErrNotFound = errors.New("project: not found")

// ValidationError reports input rejected before any persistence write:
// missing required fields, malformed values, unknown status, empty notes.
type ValidationError struct {
	// Fields lists the offending field names, when field-specific.
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("project: %s: %s", e.Reason, strings.Join(e.Fields, ", "))
	}
	return "project: " + e.Reason
}

// InvalidFieldError reports an unknown field name used for filtering,
// sorting, updating or distinct-value lookup.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("project: invalid field: %q", e.Field)
}
