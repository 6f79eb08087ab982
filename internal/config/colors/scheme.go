package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation prompts
	Edit   string `yaml:"edit"`   // Blue - edit prompts
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DragBorder     string `yaml:"drag_border"` // Item being dragged
	DropTarget     string `yaml:"drop_target"` // Item or column under the pointer

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// fields lists every color slot so merge and defaulting stay in one place
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.TaskBorder, &c.SelectedBorder, &c.SelectedBg, &c.DragBorder, &c.DropTarget,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset).fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *preset[i]
		}
	}
}

// MergeFrom overwrites colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	theirs := other.fields()
	for i, f := range c.fields() {
		if *theirs[i] != "" {
			*f = *theirs[i]
		}
	}
}
