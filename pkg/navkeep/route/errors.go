package route

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch indicates that no route in the table matches a URL.
	ErrNoMatch = errors.New("no route matches url")

	// ErrUnsupportedFormat indicates a route table file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported route table format")
)

// TableError reports a failure to build, load or query a route table.
type TableError struct {
	Op  string // Operation that failed (e.g., "load", "decode", "validate", "match")
	Err error  // Underlying error
}

func (e *TableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("route: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("route: %s", e.Op)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// NewTableError creates a new table error.
func NewTableError(op string, err error) *TableError {
	return &TableError{Op: op, Err: err}
}

// IsTableError checks if an error is a table error.
func IsTableError(err error) bool {
	var tableErr *TableError
	return errors.As(err, &tableErr)
}

// IsNoMatch checks if an error indicates an unmatched URL.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}
