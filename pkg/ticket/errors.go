package ticket

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups when no ticket matches.
var ErrNotFound = errors.New("ticket not found")

// APIError is a non-retryable 4xx response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ticketing backend rejected request (status %d): %s", e.StatusCode, e.Body)
}

// TransientError wraps a network failure or 5xx that survived the client's
// bounded retries. Callers enqueue the work for a later attempt. Attempts
// is how many transport attempts were made before giving up.
type TransientError struct {
	Err      error
	Attempts int
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("ticketing backend unavailable: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether an error from this package is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
