// Package notifications renders status bar messages.
package notifications

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

var icons = map[state.Level]string{
	state.LevelInfo:    "🔔",
	state.LevelWarning: "⚠",
	state.LevelError:   "✕",
}

func palette(colors config.ColorScheme, level state.Level) (fg, bg string) {
	switch level {
	case state.LevelWarning:
		return colors.WarningFg, colors.WarningBg
	case state.LevelError:
		return colors.ErrorFg, colors.ErrorBg
	default:
		return colors.InfoFg, colors.InfoBg
	}
}

// RenderInline renders a compact single-line notification
func RenderInline(colors config.ColorScheme, level state.Level, message string) string {
	icon, ok := icons[level]
	if !ok {
		icon = icons[state.LevelInfo]
	}
	fg, bg := palette(colors, level)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(icon + " " + message)
}

// RenderInlineFromState renders the current notification
func RenderInlineFromState(colors config.ColorScheme, n state.Notification) string {
	return RenderInline(colors, n.Level, n.Message)
}
