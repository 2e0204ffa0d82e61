package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden     ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidState  ErrorCode = "INVALID_STATE"
	ErrCodeReadOnly      ErrorCode = "READ_ONLY_MODE"
	ErrCodeIO            ErrorCode = "IO_ERROR"
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
	Message string
	// Fields holds per-field validation messages for ErrCodeValidation errors.
	Fields map[string]string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidation creates a validation error carrying per-field messages.
func NewValidation(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// NewFieldValidation creates a validation error for a single field.
func NewFieldValidation(field, message string) *AppError {
	return NewValidation(map[string]string{field: message})
}

// CodeOf returns the error code of err, or ErrCodeInternalError for unknown errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternalError
}

func is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if error is NotFound
func IsNotFound(err error) bool { return is(err, ErrCodeNotFound) }

// IsUnauthorized checks if error is Unauthorized
func IsUnauthorized(err error) bool { return is(err, ErrCodeUnauthorized) }

// IsForbidden checks if error is Forbidden
func IsForbidden(err error) bool { return is(err, ErrCodeForbidden) }

// IsValidation checks if error is a validation error
func IsValidation(err error) bool { return is(err, ErrCodeValidation) }

// IsInvalidState checks if error is an invalid state transition
func IsInvalidState(err error) bool { return is(err, ErrCodeInvalidState) }

// IsReadOnly checks if error is a read-only mode rejection
func IsReadOnly(err error) bool { return is(err, ErrCodeReadOnly) }

// FieldsOf returns the per-field validation messages of err, if any.
func FieldsOf(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
