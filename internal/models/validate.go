package models

import (
	"strings"
	"unicode/utf8"
)

// NormalizeTitle trims surrounding whitespace and enforces the non-empty and
// max-length rules shared by boards, columns and tasks.
func NormalizeTitle(title string, maxLen int, tooLong error) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxLen {
		return "", tooLong
	}
	return title, nil
}

// NormalizeBoardTitle validates a board title
func NormalizeBoardTitle(title string) (string, error) {
	return NormalizeTitle(title, MaxBoardTitleLength, ErrBoardTitleTooLong)
}

// NormalizeColumnTitle validates a column title
func NormalizeColumnTitle(title string) (string, error) {
	return NormalizeTitle(title, MaxColumnTitleLength, ErrColumnTitleTooLong)
}

// NormalizeTaskTitle validates a task title
func NormalizeTaskTitle(title string) (string, error) {
	return NormalizeTitle(title, MaxTaskTitleLength, ErrTaskTitleTooLong)
}

// ValidateDescription checks the optional task description
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
