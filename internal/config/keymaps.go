package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask         string `yaml:"add_task"`
	EditTask        string `yaml:"edit_task"`
	EditDescription string `yaml:"edit_description"`
	DeleteTask      string `yaml:"delete_task"`
	ViewTask        string `yaml:"view_task"`
	MoveTaskLeft    string `yaml:"move_task_left"`
	MoveTaskRight   string `yaml:"move_task_right"`
	MoveTaskUp      string `yaml:"move_task_up"`
	MoveTaskDown    string `yaml:"move_task_down"`

	// Drag
	PickUp     string `yaml:"pick_up"`
	Drop       string `yaml:"drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Columns
	CreateColumn    string `yaml:"create_column"`
	RenameColumn    string `yaml:"rename_column"`
	DeleteColumn    string `yaml:"delete_column"`
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`

	// Board
	CreateBoard string `yaml:"create_board"`
	RenameBoard string `yaml:"rename_board"`
	Reload      string `yaml:"reload"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:         "a",
		EditTask:        "e",
		EditDescription: "E",
		DeleteTask:      "d",
		ViewTask:        " ",
		MoveTaskLeft:    "H",
		MoveTaskRight:   "L",
		MoveTaskUp:      "K",
		MoveTaskDown:    "J",

		// Drag
		PickUp:     "m",
		Drop:       "enter",
		CancelDrag: "esc",

		// Columns
		CreateColumn:    "C",
		RenameColumn:    "R",
		DeleteColumn:    "X",
		MoveColumnLeft:  "<",
		MoveColumnRight: ">",

		// Board
		CreateBoard: "B",
		RenameBoard: "T",
		Reload:      "ctrl+r",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.EditDescription == "" {
		k.EditDescription = defaults.EditDescription
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ViewTask == "" {
		k.ViewTask = defaults.ViewTask
	}
	if k.MoveTaskLeft == "" {
		k.MoveTaskLeft = defaults.MoveTaskLeft
	}
	if k.MoveTaskRight == "" {
		k.MoveTaskRight = defaults.MoveTaskRight
	}
	if k.MoveTaskUp == "" {
		k.MoveTaskUp = defaults.MoveTaskUp
	}
	if k.MoveTaskDown == "" {
		k.MoveTaskDown = defaults.MoveTaskDown
	}
	if k.PickUp == "" {
		k.PickUp = defaults.PickUp
	}
	if k.Drop == "" {
		k.Drop = defaults.Drop
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.CreateColumn == "" {
		k.CreateColumn = defaults.CreateColumn
	}
	if k.RenameColumn == "" {
		k.RenameColumn = defaults.RenameColumn
	}
	if k.DeleteColumn == "" {
		k.DeleteColumn = defaults.DeleteColumn
	}
	if k.MoveColumnLeft == "" {
		k.MoveColumnLeft = defaults.MoveColumnLeft
	}
	if k.MoveColumnRight == "" {
		k.MoveColumnRight = defaults.MoveColumnRight
	}
	if k.CreateBoard == "" {
		k.CreateBoard = defaults.CreateBoard
	}
	if k.RenameBoard == "" {
		k.RenameBoard = defaults.RenameBoard
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
