// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Form errors.
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownForm  = errors.New("unknown form")

	// Backend errors.
	ErrMalformedResponse = errors.New("malformed backend response")
	ErrSuperseded        = errors.New("superseded by a newer request")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// BackendError is a non-success status returned by the fraud-detection service.
type BackendError struct {
	Path    string
	Message string
	Status  int
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d) on %s: %s", e.Status, e.Path, e.Message)
	}
	return fmt.Sprintf("backend error (%d) on %s", e.Status, e.Path)
}

// StatusCode extracts the HTTP status from a BackendError anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Status, true
	}
	return 0, false
}

// UserError represents an error that should be shown to the user.
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
