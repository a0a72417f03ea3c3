package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller identity could not be established.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status code and a caller-safe message alongside the
// underlying cause. The cause is for logs only.
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

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError returns an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failed field of a payload. It matches ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationFailedError builds a single-field ValidationError.
func NewValidationFailedError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// ValidationDetails extracts the field list from err, if it carries one.
func ValidationDetails(err error) ([]FieldError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields, true
	}
	return nil, false
}
