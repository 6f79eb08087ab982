package huhforms

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// ConfirmForm asks a yes/no question answered by accept or reject. No is
// preselected so a stray enter never deletes anything.
func ConfirmForm(question string, confirm *bool, accept, reject key.Binding) *huh.Form {
	*confirm = false
	field := huh.NewConfirm().
		Key("confirm").
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(confirm)

	keymap := huh.NewDefaultKeyMap()
	keymap.Confirm.Accept = accept
	keymap.Confirm.Reject = reject

	return huh.NewForm(huh.NewGroup(field)).
		WithKeyMap(keymap).
		WithShowHelp(false)
}
