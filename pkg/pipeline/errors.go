package pipeline

import (
	"errors"
	"fmt"

	"github.com/shipdesk/shipdesk/pkg/llm"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/ticket"
)

// RetryableError marks a failure the retry queue should reschedule.
// ProcessedEmail is not written for retryable failures: the message stays
// unadmitted until a later attempt succeeds or the cap exhausts it.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable pipeline failure: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the pipeline should hand the message to the
// retry queue instead of recording a permanent failure.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// classify wraps transient external failures in RetryableError and leaves
// everything else (4xx, schema violations, policy aborts) permanent.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if ticket.IsTransient(err) || errors.Is(err, llm.ErrUnavailable) {
		return &RetryableError{Err: err}
	}
	var schemaErr *models.SchemaError
	if errors.As(err, &schemaErr) {
		return err
	}
	return err
}
