package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/dragboard/internal/config"
)

// Theme maps the board color scheme onto huh's field styles. The dialog box
// around the form carries the border, so fields draw none of their own.
func Theme(colors config.ColorScheme) *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color(colors.Accent)
	subtle := lipgloss.Color(colors.Subtle)
	normal := lipgloss.Color(colors.Normal)
	danger := lipgloss.Color(colors.Delete)

	t.Focused.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(colors.Title)).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(subtle)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(danger)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(danger)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color(colors.StatusBarText)).
		Background(accent).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(normal).
		Background(lipgloss.Color(colors.SelectedBg))

	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(normal)

	t.Blurred = t.Focused
	t.Blurred.Title = t.Blurred.Title.Foreground(subtle)
	return t
}
