package domain

import (
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup, update or delete matched no row or document
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// NewNotFound builds an ErrNotFound, formatting the id with %v
func NewNotFound(entity string, id interface{}) *ErrNotFound {
	return &ErrNotFound{Entity: entity, ID: fmt.Sprintf("%v", id)}
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// ErrUnauthorized is returned for bad credentials and missing or invalid tokens
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrConflict is returned when a unique field is already taken
type ErrConflict struct {
	Entity string
	Field  string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

// ErrNotConfigured is returned by integrations whose credentials are absent
type ErrNotConfigured struct {
	Integration string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s integration is not configured", e.Integration)
}

// ErrRateLimited is returned when a caller exceeded its attempt budget
type ErrRateLimited struct {
	RetryAfter time.Duration
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("too many attempts, retry in %d seconds", int(e.RetryAfter.Seconds()))
}
