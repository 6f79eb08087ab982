package user

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// User-related errors
var (
	// Validation errors
	ErrEmptyName    = models.ErrEmptyUserName
	ErrNameTooLong  = fmt.Errorf("%w: user name cannot exceed %d characters", models.ErrValidation, models.MaxUserNameLength)
	ErrNameHasSpace = fmt.Errorf("%w: user name cannot contain whitespace", models.ErrValidation)

	// Business logic errors
	ErrUserNotFound = models.ErrUserNotFound
	ErrUserExists   = models.ErrUserExists
)
