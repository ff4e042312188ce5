package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for the catalog package.
var (
	// ErrUnknownKind is returned when a kind name is not in the catalog.
	ErrUnknownKind = errors.New("catalog: unknown kind")

	// ErrInvalidRecord is the sentinel matched by all validation failures.
	ErrInvalidRecord = errors.New("catalog: invalid record")
)

// FieldError describes one violated constraint on one field.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"` // required, type, min, max
	Message    string `json:"message"`
}

// ValidationError reports every field violation found in a payload.
// It unwraps to ErrInvalidRecord so callers can use errors.Is.
type ValidationError struct {
	Kind   string       `json:"kind"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Message
	}
	return fmt.Sprintf("catalog: invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

// add appends a field violation.
func (e *ValidationError) add(field, constraint, message string) {
	e.Fields = append(e.Fields, FieldError{
		Field:      field,
		Constraint: constraint,
		Message:    message,
	})
}
