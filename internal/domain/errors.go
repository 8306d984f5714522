package domain

import (
	"errors"
	"fmt"
)

// ErrNoTasteVector indicates the user has not completed onboarding yet and
// has no taste vector to match against. Not retryable until the user
// completes their vibe check.
var ErrNoTasteVector = errors.New("user has no taste vector")

// ErrNotFound indicates a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateMatch indicates a match already exists for an unordered user
// pair. Callers creating matches should treat this as benign and skip.
var ErrDuplicateMatch = errors.New("match already exists for user pair")

// ValidationError indicates malformed input rejected before persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
