package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/dragboard/internal/config"
)

// keyMap holds the resolved bindings for every action
type keyMap struct {
	AddTask         key.Binding
	EditTask        key.Binding
	EditDescription key.Binding
	DeleteTask      key.Binding
	ViewTask        key.Binding
	MoveTaskLeft    key.Binding
	MoveTaskRight   key.Binding
	MoveTaskUp      key.Binding
	MoveTaskDown    key.Binding

	PickUp     key.Binding
	Drop       key.Binding
	CancelDrag key.Binding

	CreateColumn    key.Binding
	RenameColumn    key.Binding
	DeleteColumn    key.Binding
	MoveColumnLeft  key.Binding
	MoveColumnRight key.Binding

	CreateBoard key.Binding
	RenameBoard key.Binding
	Reload      key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	ShowHelp  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Fixed bindings used inside editors and dialogs
	Save    key.Binding
	Confirm key.Binding
	Deny    key.Binding
}

func newKeyMap(k config.KeyMappings) keyMap {
	return keyMap{
		AddTask:         bind(k.AddTask, "add task"),
		EditTask:        bind(k.EditTask, "edit title"),
		EditDescription: bind(k.EditDescription, "edit description"),
		DeleteTask:      bind(k.DeleteTask, "delete task"),
		ViewTask:        bind(k.ViewTask, "view task"),
		MoveTaskLeft:    bind(k.MoveTaskLeft, "task to left column"),
		MoveTaskRight:   bind(k.MoveTaskRight, "task to right column"),
		MoveTaskUp:      bind(k.MoveTaskUp, "task up"),
		MoveTaskDown:    bind(k.MoveTaskDown, "task down"),

		PickUp:     bind(k.PickUp, "pick up"),
		Drop:       bind(k.Drop, "drop"),
		CancelDrag: bind(k.CancelDrag, "cancel"),

		CreateColumn:    bind(k.CreateColumn, "new column"),
		RenameColumn:    bind(k.RenameColumn, "rename column"),
		DeleteColumn:    bind(k.DeleteColumn, "delete column"),
		MoveColumnLeft:  bind(k.MoveColumnLeft, "column left"),
		MoveColumnRight: bind(k.MoveColumnRight, "column right"),

		CreateBoard: bind(k.CreateBoard, "create board"),
		RenameBoard: bind(k.RenameBoard, "rename board"),
		Reload:      bind(k.Reload, "reload"),

		PrevColumn: bind(k.PrevColumn, "left", "left"),
		NextColumn: bind(k.NextColumn, "right", "right"),
		PrevTask:   bind(k.PrevTask, "up", "up"),
		NextTask:   bind(k.NextTask, "down", "down"),

		ShowHelp:  bind(k.ShowHelp, "help"),
		Quit:      bind(k.Quit, "quit"),
		ForceQuit: bind("ctrl+c", "quit"),

		Save:    bind("ctrl+s", "save"),
		Confirm: bind("y", "yes", "Y"),
		Deny:    bind("n", "no", "N"),
	}
}

// bind creates a binding for the configured key plus optional aliases; the
// configured key is what the help shows
func bind(k, desc string, aliases ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(append([]string{k}, aliases...)...),
		key.WithHelp(keyLabel(k), desc),
	)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.AddTask, k.ViewTask, k.CreateColumn, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask, k.Reload},
		{k.AddTask, k.EditTask, k.EditDescription, k.DeleteTask, k.ViewTask},
		{k.PickUp, k.Drop, k.CancelDrag, k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown},
		{k.CreateColumn, k.RenameColumn, k.DeleteColumn, k.MoveColumnLeft, k.MoveColumnRight},
		{k.CreateBoard, k.RenameBoard, k.ShowHelp, k.Quit},
	}
}

// dragKeys is the help shown while carrying an item
type dragKeys struct{ keyMap }

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask, k.Drop, k.CancelDrag}
}

func (k dragKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
