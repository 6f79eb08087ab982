package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// layoutBoardWith builds a board whose column i holds counts[i] tasks. Column IDs
// start at 1, task IDs at 100 per column.
func layoutBoardWith(counts ...int) *models.Board {
	b := &models.Board{ID: 1, Title: "Layout"}
	for i, n := range counts {
		col := &models.Column{ID: types.ColumnID(i + 1), BoardID: 1, Title: fmt.Sprintf("C%d", i), Order: i}
		for j := 0; j < n; j++ {
			col.Tasks = append(col.Tasks, &models.Task{
				ID:       types.TaskID((i+1)*100 + j),
				ColumnID: col.ID,
				Title:    fmt.Sprintf("T%d.%d", i, j),
				Order:    j,
			})
		}
		b.Columns = append(b.Columns, col)
	}
	return b
}

func sizedUI(width, height int) *state.UIState {
	ui := state.NewUIState()
	ui.SetWidth(width)
	ui.SetHeight(height)
	return ui
}

func TestHitTest(t *testing.T) {
	t.Parallel()
	ui := sizedUI(testWidth, testHeight)
	b := layoutBoardWith(2, 0, 12, 1)

	tests := []struct {
		name string
		x, y int
		want dnd.Item
	}{
		{"title bar", 5, 0, dnd.Item{}},
		{"top border", 5, 2, dnd.Column(1)},
		{"header", 5, 3, dnd.Column(1)},
		{"first card top edge", 0, 4, dnd.Task(100)},
		{"first card", 5, 5, dnd.Task(100)},
		{"second card", 31, 9, dnd.Task(101)},
		{"below the last card", 5, 12, dnd.Column(1)},
		{"gap between columns", 32, 5, dnd.Item{}},
		{"empty column", 40, 5, dnd.Column(2)},
		{"third column card", 70, 5 + 3*6, dnd.Task(306)},
		{"below visible cards", 70, 2 + 2 + 7*3, dnd.Column(3)},
		{"column off screen", 100, 5, dnd.Item{}},
		{"footer", 5, testHeight - 1, dnd.Item{}},
		{"left of the board", -1, 5, dnd.Item{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hitTest(ui, b, tt.x, tt.y))
		})
	}
}

func TestHitTestFollowsScrolling(t *testing.T) {
	t.Parallel()
	ui := sizedUI(testWidth, testHeight)
	b := layoutBoardWith(1, 1, 12, 1)

	assert.True(t, ui.ScrollTasks(3, 2, 12))
	x, y := cardCell(2, 0)
	assert.Equal(t, dnd.Task(302), hitTest(ui, b, x, y))

	ui.SetViewportOffset(1)
	x, y = cardCell(0, 0)
	assert.Equal(t, dnd.Task(200), hitTest(ui, b, x, y))
	x, y = cardCell(2, 0)
	assert.Equal(t, dnd.Task(400), hitTest(ui, b, x, y))
}

func TestHitTestNilBoard(t *testing.T) {
	t.Parallel()
	assert.True(t, hitTest(sizedUI(80, 24), nil, 5, 5).Empty())
}

func TestLocateAndItemAt(t *testing.T) {
	t.Parallel()
	b := layoutBoardWith(2, 0)

	col, task, ok := locate(b, dnd.Task(101))
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, task)
	assert.Equal(t, dnd.Task(101), itemAt(b, col, task))

	col, task, ok = locate(b, dnd.Column(2))
	assert.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, -1, task)
	assert.Equal(t, dnd.Column(2), itemAt(b, col, task))

	_, _, ok = locate(b, dnd.Task(999))
	assert.False(t, ok)
	_, _, ok = locate(nil, dnd.Column(1))
	assert.False(t, ok)

	// a row past the end of a column falls back to the column
	assert.Equal(t, dnd.Column(2), itemAt(b, 1, 0))
	assert.True(t, itemAt(b, 5, 0).Empty())

	assert.Equal(t, []int{2, 0}, taskCounts(b))
	assert.Nil(t, taskCounts(nil))
}
