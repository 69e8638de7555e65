package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict")

// ErrRecomputeFailed indicates an atomic replace of derived state (settlements,
// date scores) could not complete. The prior derived state is left untouched.
var ErrRecomputeFailed = errors.New("recompute of derived state failed")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with a status code and a message suitable
// for logging at the boundary.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
