package board

import "github.com/thenoetrevino/dragboard/internal/models"

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle   = models.ErrEmptyTitle
	ErrTitleTooLong = models.ErrBoardTitleTooLong

	// Business logic errors
	ErrBoardNotFound = models.ErrBoardNotFound
	ErrBoardExists   = models.ErrBoardExists
)
