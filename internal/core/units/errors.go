package units

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrEmptyID is returned when a table entry has no identifier.
	ErrEmptyID = errors.New("unit identifier is empty")

	// ErrInvalidFactor is returned when a factor is not positive and finite.
	ErrInvalidFactor = errors.New("unit factor must be positive and finite")

	// ErrDuplicateUnit is returned when two entries share an identifier.
	ErrDuplicateUnit = errors.New("duplicate unit identifier")

	// ErrUnknownPolicy is returned for an unrecognized registry policy.
	ErrUnknownPolicy = errors.New("unknown registry policy")
)

// TableError wraps a table validation error with the offending identifier.
type TableError struct {
	ID      string
	Message string
	Err     error
}

func (e *TableError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("unit %q: %s", e.ID, e.Message)
	}
	return e.Message
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// NewTableError creates a new TableError.
func NewTableError(id, message string, err error) *TableError {
	return &TableError{
		ID:      id,
		Message: message,
		Err:     err,
	}
}
