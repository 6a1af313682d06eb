package taxbit

import (
	"errors"
	"fmt"
)

var (
	ErrFormat          = errors.New("invalid format")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrMissingColumn   = errors.New("missing column")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrFieldCount      = errors.New("wrong number of fields")
)

// FormatError reports a value that could not be parsed into a Record field.
type FormatError struct {
	Column string
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("column %q: invalid value %q", e.Column, e.Value)
	}
	return fmt.Sprintf("column %q: invalid value %q: %v", e.Column, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatError(column, value string, err error) *FormatError {
	return &FormatError{Column: column, Value: value, Err: err}
}

// InvariantViolation is the panic value used when a caller breaks a
// precondition of Compare or Asset.
type InvariantViolation struct {
	Op     string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("taxbit: invariant violated in %s: %s", e.Op, e.Detail)
}

func violate(op, format string, args ...interface{}) {
	panic(&InvariantViolation{Op: op, Detail: fmt.Sprintf(format, args...)})
}
