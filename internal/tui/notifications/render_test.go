package notifications

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

func TestRenderInline(t *testing.T) {
	t.Parallel()

	colors := config.Preset("")
	tests := []struct {
		level state.Level
		icon  string
	}{
		{state.LevelInfo, "🔔"},
		{state.LevelWarning, "⚠"},
		{state.LevelError, "✕"},
		{state.Level(42), "🔔"},
	}
	for _, tt := range tests {
		got := ansi.Strip(RenderInline(colors, tt.level, "Column deleted"))
		assert.Contains(t, got, tt.icon+" Column deleted")
	}
}

func TestRenderInlineFromState(t *testing.T) {
	t.Parallel()

	n := state.Notification{Level: state.LevelError, Message: "Could not move task"}
	got := ansi.Strip(RenderInlineFromState(config.Preset("monochrome"), n))
	assert.Contains(t, got, "✕ Could not move task")
}
