package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/securebank-console/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrInvalidEntry     = errors.New("invalid journal entry")
	ErrInvalidOutcome   = errors.New("invalid call outcome")
	ErrNegativeLimit    = errors.New("limit cannot be negative")
	ErrNegativeDuration = errors.New("duration cannot be negative")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateEntry(entry model.JournalEntry) error {
	if entry.RecordedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidEntry)
	}
	if entry.Workflow == "" {
		return fmt.Errorf("%w: missing workflow", ErrInvalidEntry)
	}
	if entry.Method == "" || entry.Path == "" {
		return fmt.Errorf("%w: missing method or path", ErrInvalidEntry)
	}
	if entry.Duration < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, entry.Duration)
	}

	switch entry.Outcome {
	case model.OutcomeSucceeded, model.OutcomeFailed, model.OutcomeSuperseded:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, entry.Outcome)
	}
	return nil
}
