package task

import "github.com/thenoetrevino/dragboard/internal/models"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle         = models.ErrEmptyTitle
	ErrTitleTooLong       = models.ErrTaskTitleTooLong
	ErrDescriptionTooLong = models.ErrDescriptionTooLong
	ErrInvalidTaskID      = models.ErrInvalidID
	ErrInvalidPosition    = models.ErrInvalidPosition

	// Business logic errors
	ErrTaskNotFound   = models.ErrTaskNotFound
	ErrColumnNotFound = models.ErrColumnNotFound
	ErrNotOwner       = models.ErrNotOwner
)
