package errors

import "fmt"

// ErrorCode represents a jotted error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// JottedError represents a structured error with code, status, and details.
type JottedError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *JottedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *JottedError {
	return &JottedError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a paragraph cannot be found.
func NewNotFound(id string) *JottedError {
	return &JottedError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("paragraph not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *JottedError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &JottedError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a JottedError with the given code.
func Is(err error, code ErrorCode) bool {
	if jErr, ok := err.(*JottedError); ok {
		return jErr.Code == code
	}
	return false
}
