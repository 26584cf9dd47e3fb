// Package apperror defines the error kinds the service layer returns.
//
// Services never talk HTTP. They return one of these, and the handler
// package maps the sentinel (via errors.Is) to a status code. Anything that
// is not an *AppError is a store or programming failure and becomes a 500.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrUnavailable      = errors.New("unavailable")
)

type AppError struct {
	Err     error  // sentinel kind
	Message string // Human-readable error message, sent to the client as-is
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// MethodNotAllowed is returned for verbs a resource does not serve.
func MethodNotAllowed() *AppError {
	return &AppError{
		Err:     ErrMethodNotAllowed,
		Message: "Method not allowed",
	}
}

// Unavailable reports that an optional backend (the object store) is not
// configured. HTTP handlers map this to 503 Service Unavailable.
func Unavailable(message string) *AppError {
	return &AppError{
		Err:     ErrUnavailable,
		Message: message,
	}
}
