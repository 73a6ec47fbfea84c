package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced id or slug does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-field collisions and restricted deletes.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned when credentials or a session are missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the principal lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrSearchUnavailable is returned when any search lookup fails.
	ErrSearchUnavailable = errors.New("search unavailable")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	// Fields maps field names to error codes, when known.
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return "validation failed: " + e.Err.Error()
	}
	return "validation failed"
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, code string) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{field: code},
		Err:    fmt.Errorf("%s: %s", field, code),
	}
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError builds an ErrConflict describing the colliding field.
func ConflictError(entity, field, value string) error {
	return fmt.Errorf("%w: %s with %s %q already exists", ErrConflict, entity, field, value)
}

// NotFoundError builds an ErrNotFound describing the missing entity.
func NotFoundError(entity, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, entity, key)
}
