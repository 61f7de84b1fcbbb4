// Package apperr defines the error taxonomy surfaced through the GraphQL
// error list: not-found, unauthorized and validation failures. Store errors
// are passed through unwrapped.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

// NotFound reports a missing document, e.g. "team abc123 not found".
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

// Unauthorized reports a failed guard check for an operation.
func Unauthorized(operation string) error {
	return fmt.Errorf("%s: %w", operation, ErrUnauthorized)
}

// Validation reports malformed input rejected before any mutation.
func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
