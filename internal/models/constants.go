package models

// ============================================================================
// TITLE LIMITS
// ============================================================================

const (
	MaxBoardTitleLength  = 50
	MaxColumnTitleLength = 50
	MaxTaskTitleLength   = 255
	MaxDescriptionLength = 1000
	MaxUserNameLength    = 50
)

// ============================================================================
// DEFAULT BOARD LAYOUT
// ============================================================================

// DefaultColumnTitles are created, in order, when a board is created with seeding enabled
var DefaultColumnTitles = []string{"Todo", "In Progress", "Done"}
