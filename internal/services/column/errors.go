package column

import "github.com/thenoetrevino/dragboard/internal/models"

// Column-related errors
var (
	// Validation errors
	ErrEmptyTitle      = models.ErrEmptyTitle
	ErrTitleTooLong    = models.ErrColumnTitleTooLong
	ErrInvalidColumnID = models.ErrInvalidID
	ErrInvalidPosition = models.ErrInvalidPosition

	// Business logic errors
	ErrColumnNotFound = models.ErrColumnNotFound
	ErrBoardNotFound  = models.ErrBoardNotFound
	ErrNotOwner       = models.ErrNotOwner
)
