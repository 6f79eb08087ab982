// Package huhforms builds the dialog forms of the board TUI.
package huhforms

import "github.com/charmbracelet/huh"

// TitleForm asks for a single title. validate runs on submit and keeps the
// form open with its error shown until the title is acceptable.
func TitleForm(heading string, title *string, limit int, validate func(string) error) *huh.Form {
	input := huh.NewInput().
		Key("title").
		Title(heading).
		Placeholder("Title").
		CharLimit(limit).
		Validate(validate).
		Value(title)

	return huh.NewForm(huh.NewGroup(input)).WithShowHelp(false)
}
