// Package errors provides structured error handling for the folio
// backend. Errors carry a code, a message and an optional cause so
// the REST layer can map them to HTTP statuses and the log output
// stays grep-able.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode categorizes application errors.
type ErrorCode string

const (
	ErrCodeDatabase   ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeForbidden  ErrorCode = "FORBIDDEN"
	ErrCodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// AppError is a structured application error. It implements the error
// interface and supports unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// LogValue renders the error as a structured slog group.
func (e *AppError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDatabase, Message: message, Cause: cause, Context: context}
}

func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

func NotFoundError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Context: context}
}

func ConflictError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message, Context: context}
}

func ForbiddenError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message, Context: context}
}

func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause, Context: context}
}

// HTTPStatus maps the error code to the corresponding HTTP status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation:
		return 400
	case ErrCodeForbidden:
		return 403
	case ErrCodeNotFound:
		return 404
	case ErrCodeConflict:
		return 409
	default:
		return 500
	}
}
