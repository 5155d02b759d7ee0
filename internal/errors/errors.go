// Package errors provides the unified error type for the fintrack API.
// Services return *AppError values for expected failures; the HTTP layer maps
// them to status codes and a JSON {message} body.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Common Error Constructors ---

// Validation creates a new AppError for invalid input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// Unauthorized creates a new AppError for an unauthenticated request.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "Unauthorized"
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: reason,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidCredentials creates a new AppError for a failed login.
// The message is identical whether the email is unknown or the password is
// wrong, so callers cannot tell which check failed.
func InvalidCredentials() *AppError {
	return &AppError{
		Code: ErrCodeInvalidCredentials, Message: "invalid credentials",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a new AppError for a request with an invalid or expired token.
func Forbidden(reason string) *AppError {
	if reason == "" {
		reason = "Forbidden"
	}
	return &AppError{
		Code: ErrCodeForbidden, Message: reason,
		HTTPStatus: http.StatusForbidden,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(message string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: message,
		HTTPStatus: http.StatusNotFound,
	}
}

// AlreadyExists creates a new AppError for a uniqueness violation.
func AlreadyExists(message string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: message,
		HTTPStatus: http.StatusConflict,
	}
}

// Conflict creates a new AppError for a conflict with the current resource state.
func Conflict(message string) *AppError {
	return &AppError{
		Code: ErrCodeConflict, Message: message,
		HTTPStatus: http.StatusConflict,
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Internal server error",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// DatabaseError creates a new AppError for a database error.
func DatabaseError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatabaseError, Message: "A database error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// ServiceUnavailable creates a new AppError for a dependency that is
// temporarily unreachable.
func ServiceUnavailable(service string) *AppError {
	return &AppError{
		Code: ErrCodeServiceUnavailable, Message: fmt.Sprintf("The %s is temporarily unavailable. Please try again.", service),
		HTTPStatus: http.StatusServiceUnavailable,
		Details:    map[string]any{"service": service},
	}
}
