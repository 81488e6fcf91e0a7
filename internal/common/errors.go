// Package common defines shared constants and sentinel errors used across
// the userbase subsystem. Callers should use errors.Is to match the
// sentinels and errors.As to extract *ValidationError.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorDuplicate = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrIdentitySpaceExhausted means identifier generation ran out of
	// retry attempts without finding an unused value. This is fatal and
	// not caller-correctable: it signals either a broken existence check
	// or an absurdly full identifier space.
	ErrIdentitySpaceExhausted = errors.New("identifier space exhausted")
)

// ValidationError reports a constraint violation on a single field with
// enough detail for the caller to react.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError constructs a field-level validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
