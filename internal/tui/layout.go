package tui

import (
	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// hitTest maps a terminal cell to the element drawn there when b is rendered with
// ui's viewport and scroll offsets. Anything inside a column but not on a card
// (header, border, empty space below the cards) is the column itself.
func hitTest(ui *state.UIState, b *models.Board, x, y int) dnd.Item {
	if b == nil || x < 0 || y < state.BoardTop || y >= state.BoardTop+ui.ContentHeight() {
		return dnd.Item{}
	}

	if x%state.ColumnStride >= state.ColumnOuterWidth {
		return dnd.Item{} // gap between columns
	}
	visible := x / state.ColumnStride
	if visible >= ui.ViewportSize() {
		return dnd.Item{}
	}
	index := ui.ViewportOffset() + visible
	if index >= len(b.Columns) {
		return dnd.Item{}
	}
	col := b.Columns[index]

	// border and header rows
	row := y - state.BoardTop - 2
	if row < 0 {
		return dnd.Column(col.ID)
	}
	card := row / state.CardHeight
	if card >= ui.VisibleTasks() {
		return dnd.Column(col.ID)
	}
	task := ui.TaskScrollOffset(col.ID) + card
	if task >= len(col.Tasks) {
		return dnd.Column(col.ID)
	}
	return dnd.Task(col.Tasks[task].ID)
}

// locate returns the column and task indexes of item on b; task is -1 for columns.
// ok is false when the item is not on the board.
func locate(b *models.Board, item dnd.Item) (column, task int, ok bool) {
	if b == nil {
		return 0, 0, false
	}
	switch item.Kind {
	case dnd.KindColumn:
		if _, i := b.Column(item.ColumnID()); i >= 0 {
			return i, -1, true
		}
	case dnd.KindTask:
		if t, c := b.FindTask(item.TaskID()); t != nil {
			_, ci := b.Column(c.ID)
			_, ti := c.Task(t.ID)
			return ci, ti, true
		}
	}
	return 0, 0, false
}

// itemAt is the inverse of locate
func itemAt(b *models.Board, column, task int) dnd.Item {
	if b == nil || column < 0 || column >= len(b.Columns) {
		return dnd.Item{}
	}
	col := b.Columns[column]
	if task < 0 || task >= len(col.Tasks) {
		return dnd.Column(col.ID)
	}
	return dnd.Task(col.Tasks[task].ID)
}

// taskCounts lists the number of tasks per column, for selection clamping
func taskCounts(b *models.Board) []int {
	if b == nil {
		return nil
	}
	counts := make([]int, len(b.Columns))
	for i, c := range b.Columns {
		counts[i] = len(c.Tasks)
	}
	return counts
}
