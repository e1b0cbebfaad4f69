// Package services holds the operator-facing read and mutation services
// behind the HTTP API, plus the error vocabulary the handlers map to
// status codes.
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the API layer maps to HTTP status codes.
var (
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict maps to 409: an illegal state transition or a lost race.
	ErrConflict = errors.New("conflict")
)

// ValidationError maps to 400 and names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
