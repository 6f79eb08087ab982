package huhforms

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// keyMapWithShiftEnter adds shift+enter to the newline keys of text fields,
// alongside huh's alt+enter and ctrl+j
func keyMapWithShiftEnter() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()
	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	return keymap
}
