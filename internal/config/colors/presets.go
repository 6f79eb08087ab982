package colors

import "sort"

const (
	PresetDefault    = "default"
	PresetMonochrome = "monochrome"
)

// presets maps a preset name to a constructor so callers always get a fresh copy
var presets = map[string]func() *ColorScheme{
	PresetDefault:    board,
	PresetMonochrome: mono,
}

// Lookup returns the named preset. An empty name selects the default.
func Lookup(name string) (*ColorScheme, bool) {
	if name == "" {
		name = PresetDefault
	}
	build, ok := presets[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// GetPreset returns a preset color scheme by name, falling back to the default
func GetPreset(name string) *ColorScheme {
	if s, ok := Lookup(name); ok {
		return s
	}
	return board()
}

// Names lists the known presets in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// board is the purple palette. Drag state uses gold for the carried card and
// green for whatever would receive the drop.
func board() *ColorScheme {
	const (
		purple  = "#874BFD"
		magenta = "#D75FD7"
		blue    = "#5F87D7"
		green   = "#5FD75F"
		gold    = "#FFD700"
		red     = "#FF0000"
		grey    = "#585858"
		text    = "#D0D0D0"
		shade   = "#3A3A3A"
	)
	return &ColorScheme{
		Preset:         PresetDefault,
		Accent:         purple,
		Create:         green,
		Edit:           blue,
		Delete:         red,
		ColumnBorder:   blue,
		TaskBorder:     grey,
		SelectedBorder: magenta,
		SelectedBg:     shade,
		DragBorder:     gold,
		DropTarget:     green,
		Title:          magenta,
		Subtle:         grey,
		Normal:         text,
		InfoFg:         "#00AFFF",
		InfoBg:         "#00005F",
		WarningFg:      gold,
		WarningBg:      "#875F00",
		ErrorFg:        red,
		ErrorBg:        "#5F0000",
		StatusBarBg:    purple,
		StatusBarText:  text,
	}
}

// mono relies on brightness alone, so the dragged card and the drop target
// differ only by shade.
func mono() *ColorScheme {
	const (
		white = "#FFFFFF"
		light = "#D0D0D0"
		mid   = "#585858"
		dark  = "#3A3A3A"
	)
	return &ColorScheme{
		Preset:         PresetMonochrome,
		Accent:         white,
		Create:         white,
		Edit:           white,
		Delete:         white,
		ColumnBorder:   white,
		TaskBorder:     mid,
		SelectedBorder: white,
		SelectedBg:     dark,
		DragBorder:     white,
		DropTarget:     light,
		Title:          white,
		Subtle:         mid,
		Normal:         light,
		InfoFg:         white,
		InfoBg:         "#1C1C1C",
		WarningFg:      white,
		WarningBg:      dark,
		ErrorFg:        white,
		ErrorBg:        mid,
		StatusBarBg:    dark,
		StatusBarText:  white,
	}
}
