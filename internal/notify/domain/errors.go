package domain

import "errors"

var (
	// ErrSubmissionNotFound is returned when an event references a row that
	// is no longer in the database
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrUnknownKind is returned for events with an unrecognized kind
	ErrUnknownKind = errors.New("unknown submission kind")
)

// RetryableError wraps transient errors that should trigger a requeue
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError creates a new retryable error
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}
