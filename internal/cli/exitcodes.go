package cli

import (
	"errors"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, column, task or user IDs that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input, corrupted data, or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong titles, negative positions.
	ExitValidation = 5

	// ExitUnauthorized indicates a missing token or a record on another user's board.
	ExitUnauthorized = 6

	// ExitConflict indicates the request contradicts existing state.
	// Use for: Creating a second board, reusing a user name.
	ExitConflict = 7
)

// ExitError carries the exit code a failed command should terminate with
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrUnauthenticated), errors.Is(err, models.ErrUnauthorized):
		return ExitUnauthorized
	case errors.Is(err, models.ErrConflict):
		return ExitConflict
	default:
		return ExitFailure
	}
}

// ErrorCode returns the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitUnauthorized:
		return "UNAUTHORIZED"
	case ExitConflict:
		return "CONFLICT"
	case ExitDataErr:
		return "DATA_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
