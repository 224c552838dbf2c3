package model

import "errors"

var (
	// ErrValidation matches any *ValidationError via errors.Is
	ErrValidation = errors.New("validation error")
	// ErrNotFound matches any *NotFoundError via errors.Is
	ErrNotFound = errors.New("not found")
)

// ValidationError reports input that failed a precondition
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a reference to a record that does not exist
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Validation returns a *ValidationError with msg
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFound returns a *NotFoundError with msg
func NotFound(msg string) error {
	return &NotFoundError{Message: msg}
}
