package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidType is matched by every *TypeError.
	ErrInvalidType = errors.New("invalid type")
)

// ValidationError reports a value rejected by a field's contract.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %q", e.Field, e.Reason, e.Value)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TypeError reports a structurally wrong argument, such as a nil
// attachment or a non-list where a list of fields is expected.
type TypeError struct {
	Field string
	Got   any
	Err   error
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: unexpected type %T: %v", e.Field, e.Got, e.Err)
	}
	return fmt.Sprintf("%s: unexpected type %T", e.Field, e.Got)
}

func (e *TypeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidType.
func (e *TypeError) Is(target error) bool { return target == ErrInvalidType }
