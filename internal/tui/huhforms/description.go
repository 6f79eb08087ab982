package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// DescriptionForm edits a task description as markdown
func DescriptionForm(description *string, lines int) *huh.Form {
	text := huh.NewText().
		Key("description").
		Title("Description").
		Placeholder("Markdown is rendered in the task view").
		CharLimit(models.MaxDescriptionLength).
		Lines(lines).
		Validate(models.ValidateDescription).
		Value(description)

	return huh.NewForm(huh.NewGroup(text)).
		WithKeyMap(keyMapWithShiftEnter()).
		WithShowHelp(false)
}
