// Package common provides shared utilities and types used across the
// application: sentinel errors, user-facing error wrapping, retry, and the
// tagged fallback wrapper for completion-service calls.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrEmptyUpload   = errors.New("uploaded file contains no records")
	ErrMalformedCSV  = errors.New("malformed CSV")
	ErrMissingColumn = errors.New("required column missing")

	// Collaborator errors.
	ErrCompletionFailed = errors.New("completion service request failed")
	ErrEnrichmentFailed = errors.New("enrichment failed")
	ErrRateLimit        = errors.New("rate limit exceeded")
	ErrMaxRetries       = errors.New("max retries exceeded")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user inline,
// leaving the workflow on the current step.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// RetryableError wraps an error with retry-specific metadata.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
