package vernomic

import (
	"errors"
	"fmt"

	"github.com/pders01/vernomic/internal/calendar"
	"github.com/pders01/vernomic/internal/export"
)

var (
	// ErrValidation marks bad construction arguments
	ErrValidation = errors.New("validation failed")

	// ErrMissingExtension is returned by RequireFileName when no file
	// extension was configured
	ErrMissingExtension = errors.New("no file extension configured")

	// ErrInvalidInput marks a date value that cannot be turned into a timestamp
	ErrInvalidInput = calendar.ErrInvalidInput

	// ErrIO marks filesystem failures during export
	ErrIO = export.ErrIO
)

// ValidationError describes a rejected construction argument
type ValidationError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes every *ValidationError match ErrValidation
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
