package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/notifications"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	switch m.uiState.Mode() {
	case state.HelpMode:
		return m.place(m.styles.ContentDialog.Render(m.help.View(m.keys)))
	case state.TaskViewMode:
		return m.place(m.styles.ContentDialog.Render(strings.TrimRight(m.rendered, "\n")))
	case state.InputMode:
		style := m.styles.EditDialog
		if m.inputKind == inputCreateBoard || m.inputKind == inputCreateColumn || m.inputKind == inputAddTask {
			style = m.styles.CreateDialog
		}
		return m.place(style.Render(m.viewForm("enter save · esc cancel")))
	case state.DescriptionMode:
		hint := m.keys.Save.Help().Key + " save · shift+enter new line · esc cancel"
		return m.place(m.styles.EditDialog.Render(m.viewForm(hint)))
	case state.DeleteTaskConfirmMode, state.DeleteColumnConfirmMode:
		return m.place(m.styles.DeleteDialog.Render(m.viewForm("y yes · n no · esc cancel")))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTitleBar(),
		"",
		m.viewBody(),
		m.viewStatusBar(),
		m.viewHelpLine(),
	)
}

// place centers a dialog on screen
func (m Model) place(content string) string {
	return lipgloss.Place(m.uiState.Width(), m.uiState.Height(), lipgloss.Center, lipgloss.Center, content)
}

// viewForm renders the open form with a key hint and any notification below it
func (m Model) viewForm(hint string) string {
	var body string
	if m.forms.Form != nil {
		body = strings.TrimRight(m.forms.Form.View(), "\n")
	}
	return body + "\n\n" + m.styles.Subtle.Render(hint) + m.dialogNotice()
}

func (m Model) dialogNotice() string {
	if n, ok := m.notifications.Current(); ok {
		return "\n\n" + notifications.RenderInlineFromState(m.colors, n)
	}
	return ""
}

func (m Model) viewTitleBar() string {
	b := m.board()
	if b == nil {
		return m.styles.BoardTitle.Render("dragboard")
	}

	title := m.styles.BoardTitle.Render(b.Title)
	var extra []string
	if off := m.uiState.ViewportOffset(); off > 0 {
		extra = append(extra, fmt.Sprintf("◀ %d", off))
	}
	if hidden := len(b.Columns) - m.uiState.ViewportOffset() - m.uiState.ViewportSize(); hidden > 0 {
		extra = append(extra, fmt.Sprintf("%d ▶", hidden))
	}
	if m.inFlight > 0 {
		extra = append(extra, "saving…")
	}
	if len(extra) == 0 {
		return title
	}
	return title + "  " + m.styles.Subtle.Render(strings.Join(extra, "  "))
}

func (m Model) viewBody() string {
	height := m.uiState.ContentHeight()
	center := func(s string) string {
		return lipgloss.Place(m.uiState.Width(), height, lipgloss.Center, lipgloss.Center, s)
	}

	if !m.store.Loaded() {
		if m.store.Err() != nil {
			return center(m.styles.Subtle.Render("Could not load your board."))
		}
		return center(m.styles.Subtle.Render("Loading board…"))
	}

	b := m.board()
	if b == nil {
		return center(fmt.Sprintf("You don't have a board yet.\n\nPress %s to create one.", m.keys.CreateBoard.Help().Key))
	}
	if len(b.Columns) == 0 {
		return center(fmt.Sprintf("No columns yet. Press %s to add one.", m.keys.CreateColumn.Help().Key))
	}

	first := m.uiState.ViewportOffset()
	last := min(len(b.Columns), first+m.uiState.ViewportSize())
	blocks := make([]string, 0, 2*(last-first))
	for i := first; i < last; i++ {
		if i > first {
			blocks = append(blocks, strings.Repeat(" ", state.ColumnGap))
		}
		blocks = append(blocks, m.viewColumn(b.Columns[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// highlight says how an element should be drawn
type highlight int

const (
	plain highlight = iota
	selected
	dragged
	target
)

// highlightOf returns how item is drawn: the carried item and the drop target win
// over the selection while dragging
func (m Model) highlightOf(item dnd.Item, overColumn dnd.Item) highlight {
	if m.uiState.Mode() == state.DragMode {
		switch item {
		case m.gesture.Active():
			return dragged
		case m.gesture.OverItem(), overColumn:
			return target
		}
		return plain
	}
	if item == m.selectedItem(m.board()) {
		return selected
	}
	return plain
}

// overColumn returns the column the drop target belongs to, for outlining it
func (m Model) overColumn() dnd.Item {
	over := m.gesture.OverItem()
	if over.Kind != dnd.KindTask || m.dragOrigin == nil {
		return over
	}
	if _, col := m.dragOrigin.FindTask(over.TaskID()); col != nil {
		return dnd.Column(col.ID)
	}
	return dnd.Item{}
}

func (m Model) viewColumn(col *models.Column) string {
	overColumn := m.overColumn()

	offset := m.uiState.TaskScrollOffset(col.ID)
	visible := m.uiState.VisibleTasks()
	end := min(len(col.Tasks), offset+visible)
	offset = min(offset, end)

	header := fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))
	var arrows string
	if offset > 0 {
		arrows += "↑"
	}
	if end < len(col.Tasks) {
		arrows += "↓"
	}
	header = ansi.Truncate(header, state.ColumnContentWidth-len([]rune(arrows))-1, "…")
	lines := []string{m.styles.ColumnTitle.Render(header) + " " + m.styles.Subtle.Render(arrows)}

	for _, task := range col.Tasks[offset:end] {
		lines = append(lines, m.viewCard(task, overColumn))
	}

	style := m.styles.Column
	switch m.highlightOf(dnd.Column(col.ID), overColumn) {
	case selected:
		style = m.styles.ColumnSelected
	case dragged:
		style = m.styles.ColumnDragged
	case target:
		style = m.styles.ColumnTarget
	}
	return style.Height(m.uiState.ContentHeight() - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) viewCard(task *models.Task, overColumn dnd.Item) string {
	title := strings.ReplaceAll(task.Title, "\n", " ")
	title = ansi.Truncate(title, state.CardTextWidth, "…")

	style := m.styles.Card
	switch m.highlightOf(dnd.Task(task.ID), overColumn) {
	case selected:
		style = m.styles.CardSelected
	case dragged:
		style = m.styles.CardDragged
	case target:
		style = m.styles.CardTarget
	}
	return style.Render(title)
}

func (m Model) viewStatusBar() string {
	if n, ok := m.notifications.Current(); ok {
		return notifications.RenderInlineFromState(m.colors, n)
	}
	if notice := m.store.Notice(); notice != "" {
		return notifications.RenderInline(m.colors, state.LevelWarning, notice)
	}

	var status string
	switch {
	case m.uiState.Mode() == state.DragMode:
		status = "Moving " + m.gesture.Active().String()
		if over := m.gesture.OverItem(); !over.Empty() {
			status += " over " + over.String()
		}
	case m.pending != nil:
		status = "Saving move…"
	default:
		if col, task := m.selection(m.board()); task != nil {
			status = fmt.Sprintf("%s › %s", col.Title, task.Title)
		} else if col != nil {
			status = col.Title
		}
	}
	return m.styles.StatusBar.Render(ansi.Truncate(status, max(1, m.uiState.Width()-2), "…"))
}

func (m Model) viewHelpLine() string {
	if m.uiState.Mode() == state.DragMode {
		return m.help.View(dragKeys{m.keys})
	}
	return m.help.View(m.keys)
}
