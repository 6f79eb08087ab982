package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Column styles
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:", "Order:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.Preset(""))
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderTaskLine renders a task as it appears inside a column
func RenderTaskLine(t *models.Task) string {
	return fmt.Sprintf("%s %s", SubtitleStyle.Render(fmt.Sprintf("#%d", t.ID)), ValueStyle.Render(t.Title))
}

// RenderColumn renders a column with its tasks in order
func RenderColumn(c *models.Column) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(c.Title))
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf(" (#%d, %d)", c.ID, len(c.Tasks))))
	for _, t := range c.Tasks {
		b.WriteString("\n")
		b.WriteString(RenderTaskLine(t))
	}
	if len(c.Tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render("empty"))
	}
	return ColumnStyle.Render(b.String())
}

// RenderBoard renders the columns side by side under the board title
func RenderBoard(board *models.Board) string {
	columns := make([]string, 0, len(board.Columns))
	for _, c := range board.Columns {
		columns = append(columns, RenderColumn(c))
	}
	header := TitleStyle.Render(board.Title) + SubtitleStyle.Render(fmt.Sprintf("  board #%d", board.ID))
	if len(columns) == 0 {
		return header + "\n" + SubtitleStyle.Render("no columns")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

// RenderTask renders a single task as a card
func RenderTask(t *models.Task) string {
	lines := []string{
		TitleStyle.Render(t.Title),
		Field("ID", fmt.Sprintf("%d", t.ID)),
		Field("Column", fmt.Sprintf("%d", t.ColumnID)),
		Field("Order", fmt.Sprintf("%d", t.Order)),
	}
	if t.Description != "" {
		lines = append(lines, "", ValueStyle.Render(t.Description))
	}
	return RenderCard(strings.Join(lines, "\n"))
}
