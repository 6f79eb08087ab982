package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// styles are the lipgloss styles derived from one color scheme
type styles struct {
	BoardTitle lipgloss.Style
	Subtle     lipgloss.Style

	Column         lipgloss.Style
	ColumnSelected lipgloss.Style
	ColumnDragged  lipgloss.Style
	ColumnTarget   lipgloss.Style
	ColumnTitle    lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardDragged  lipgloss.Style
	CardTarget   lipgloss.Style

	StatusBar lipgloss.Style

	CreateDialog  lipgloss.Style
	EditDialog    lipgloss.Style
	DeleteDialog  lipgloss.Style
	ContentDialog lipgloss.Style
}

func newStyles(colors config.ColorScheme) styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1).
		Width(state.ColumnContentWidth + 2)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.TaskBorder)).
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1).
		Width(state.ColumnContentWidth - 2)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return styles{
		BoardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),

		Column:         column,
		ColumnSelected: column.BorderForeground(lipgloss.Color(colors.SelectedBorder)),
		ColumnDragged:  column.BorderForeground(lipgloss.Color(colors.DragBorder)).BorderStyle(lipgloss.DoubleBorder()),
		ColumnTarget:   column.BorderForeground(lipgloss.Color(colors.DropTarget)),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),

		Card: card,
		CardSelected: card.
			BorderForeground(lipgloss.Color(colors.SelectedBorder)).
			Background(lipgloss.Color(colors.SelectedBg)),
		CardDragged: card.
			BorderForeground(lipgloss.Color(colors.DragBorder)).
			BorderStyle(lipgloss.DoubleBorder()),
		CardTarget: card.BorderForeground(lipgloss.Color(colors.DropTarget)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.StatusBarText)).
			Background(lipgloss.Color(colors.StatusBarBg)).
			Padding(0, 1),

		CreateDialog:  dialog.BorderForeground(lipgloss.Color(colors.Create)),
		EditDialog:    dialog.BorderForeground(lipgloss.Color(colors.Edit)),
		DeleteDialog:  dialog.BorderForeground(lipgloss.Color(colors.Delete)),
		ContentDialog: dialog.BorderForeground(lipgloss.Color(colors.Accent)).Padding(0, 1),
	}
}
