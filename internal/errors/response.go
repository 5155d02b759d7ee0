package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON structure returned to clients. Every failure,
// expected or not, reduces to a {message} body plus a machine code.
type ErrorResponse struct {
	Message string         `json:"message"`
	Code    ErrorCode      `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
