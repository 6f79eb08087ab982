package models

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the services, the board store and the
// HTTP client wraps exactly one of these so callers can branch with errors.Is.
var (
	// ErrValidation marks input rejected before any state was touched
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an ID with no live record
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated marks a request without a valid principal
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized marks a record that exists but belongs to another principal
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict marks a request that contradicts existing state (e.g. a second board)
	ErrConflict = errors.New("conflict")

	// ErrTransient marks a persistence failure after an optimistic update; retryable
	ErrTransient = errors.New("temporary failure")
)

// Validation errors
var (
	ErrEmptyTitle         = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrBoardTitleTooLong  = fmt.Errorf("%w: board title cannot exceed %d characters", ErrValidation, MaxBoardTitleLength)
	ErrColumnTitleTooLong = fmt.Errorf("%w: column title cannot exceed %d characters", ErrValidation, MaxColumnTitleLength)
	ErrTaskTitleTooLong   = fmt.Errorf("%w: task title cannot exceed %d characters", ErrValidation, MaxTaskTitleLength)
	ErrDescriptionTooLong = fmt.Errorf("%w: description cannot exceed %d characters", ErrValidation, MaxDescriptionLength)
	ErrInvalidPosition    = fmt.Errorf("%w: position must be >= 0", ErrValidation)
	ErrInvalidID          = fmt.Errorf("%w: invalid ID", ErrValidation)
	ErrEmptyUserName      = fmt.Errorf("%w: user name cannot be empty", ErrValidation)
)

// Lookup errors
var (
	ErrBoardNotFound  = fmt.Errorf("board %w", ErrNotFound)
	ErrColumnNotFound = fmt.Errorf("column %w", ErrNotFound)
	ErrTaskNotFound   = fmt.Errorf("task %w", ErrNotFound)
	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)
)

// Ownership and state errors
var (
	ErrNotOwner    = fmt.Errorf("%w: board belongs to another user", ErrUnauthorized)
	ErrBoardExists = fmt.Errorf("%w: user already has a board", ErrConflict)
	ErrUserExists  = fmt.Errorf("%w: user name already taken", ErrConflict)
)

// IsClientError reports whether err is a deterministic rejection (bad input, missing
// record, ownership, conflict) rather than an infrastructure failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrConflict)
}
