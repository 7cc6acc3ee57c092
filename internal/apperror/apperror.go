package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrServer     = errors.New("server rejected request")
	ErrStorage    = errors.New("storage failure")
)

type AppError struct {
	Err     error  // sentinel category (ErrNotFound, ErrValidation, ...)
	Message string // Human-readable error message
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

// ServerRejected wraps a non-success response from the backend. The message
// comes from the backend's error body when one is present, or a generic
// fallback otherwise — components render it verbatim in their error banners.
func ServerRejected(message string) *AppError {
	if message == "" {
		message = "the server rejected the request"
	}
	return &AppError{
		Err:     ErrServer,
		Message: message,
	}
}

// StorageFailed marks a failure in the embedded snapshot store. Callers
// treat it as "no cached content available" rather than crashing.
func StorageFailed(op string, err error) *AppError {
	return &AppError{
		Err:     ErrStorage,
		Message: fmt.Sprintf("snapshot storage: %s: %v", op, err),
	}
}
