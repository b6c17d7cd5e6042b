// Package service provides business logic for the application.
package service

import (
	"errors"
	"strings"
)

// Service errors. The messages are part of the API contract and surface
// verbatim as HTTP response bodies.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrEmailExists      = errors.New("Email already exist")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrSamePassword     = errors.New("Your password must be different from your current password")
)

// ValidationError aggregates every violated field rule for one input.
// All rules are evaluated; callers get the full list, not just the first.
type ValidationError struct {
	Violations []string
}

// Error returns the aggregated, semicolon-separated message.
func (e *ValidationError) Error() string {
	return "Validation errors: " + strings.Join(e.Violations, "; ")
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
