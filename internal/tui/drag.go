package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// layoutBoard is the board positions are measured against: the board at drag
// start while dragging, otherwise what is on screen
func (m *Model) layoutBoard() *models.Board {
	if m.uiState.Mode() == state.DragMode && m.dragOrigin != nil {
		return m.dragOrigin
	}
	return m.board()
}

// startDrag picks up item with either the keyboard or the pointer
func (m *Model) startDrag(item dnd.Item) tea.Cmd {
	if item.Empty() {
		return nil
	}
	if m.busy() {
		m.notifications.Add(state.LevelWarning, dnd.ErrBusy.Error())
		m.sensor.Reset()
		return nil
	}

	if err := m.gesture.Start(item); err != nil {
		if errors.Is(err, dnd.ErrBusy) {
			m.notifications.Add(state.LevelWarning, err.Error())
		}
		m.logger.Debug("drag not started", "item", item.String(), "error", err)
		m.sensor.Reset()
		return nil
	}

	m.dragOrigin = m.gesture.Preview()
	m.selectItem(m.dragOrigin, item)
	m.uiState.SetMode(state.DragMode)
	return nil
}

// over reports the element under the pointer or keyboard cursor
func (m *Model) over(item dnd.Item) {
	m.gesture.Over(item)
	if !item.Empty() {
		m.selectItem(m.dragOrigin, item)
	}
}

// drop ends the drag on over. A no-op drop ends immediately; a real one is shown
// as dropped and committed off the update loop.
func (m *Model) drop(over dnd.Item) tea.Cmd {
	active := m.gesture.Active()
	_, resolved := m.gesture.Over(over)
	preview := m.gesture.Preview()

	m.uiState.SetMode(state.NormalMode)
	m.dragOrigin = nil
	m.sensor.Reset()

	if !resolved {
		// nothing to commit; End only resets the gesture
		_, _, _ = m.gesture.End(m.ctx, over)
		m.selectItem(m.store.Board(), active)
		return nil
	}

	m.inFlight++
	m.pending = preview
	m.selectItem(preview, active)

	ctx, gesture := m.ctx, m.gesture
	return func() tea.Msg {
		_, committed, err := gesture.End(ctx, over)
		return moveDoneMsg{item: active, committed: committed, err: err}
	}
}

func (m *Model) cancelDrag() {
	active := m.gesture.Active()
	m.gesture.Cancel()
	m.sensor.Reset()
	m.dragOrigin = nil
	m.uiState.SetMode(state.NormalMode)
	m.selectItem(m.store.Board(), active)
}

// handleDragKey moves the keyboard cursor over the drag-start board and re-resolves
// the drop target. Columns only travel sideways; tasks may also land on a column
// header, which appends them.
func (m *Model) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.CancelDrag):
		m.cancelDrag()
		return nil
	case key.Matches(msg, m.keys.Drop):
		if m.sensor.Active() {
			return nil // the pointer owns this drag
		}
		return m.drop(m.gesture.OverItem())
	}

	b := m.dragOrigin
	if b == nil || m.sensor.Active() {
		return nil
	}
	dCol, dRow := 0, 0
	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		dCol = -1
	case key.Matches(msg, m.keys.NextColumn):
		dCol = 1
	case key.Matches(msg, m.keys.PrevTask):
		dRow = -1
	case key.Matches(msg, m.keys.NextTask):
		dRow = 1
	default:
		return nil
	}
	if m.gesture.Active().Kind == dnd.KindColumn && dCol == 0 {
		return nil
	}

	m.navigate(b, dCol, dRow)
	if m.gesture.Active().Kind == dnd.KindColumn {
		m.uiState.SetSelectedTask(-1)
	}
	m.over(m.selectedItem(b))
	return nil
}

// ============================================================================
// Keyboard moves
// ============================================================================

// moveTaskAcross moves task into the neighbouring column at the same row, or last
// when that column is shorter
func (m *Model) moveTaskAcross(b *models.Board, task *models.Task, dir int) tea.Cmd {
	_, src := b.FindTask(task.ID)
	_, si := b.Column(src.ID)
	di := si + dir
	if di < 0 || di >= len(b.Columns) {
		return nil
	}
	dest := b.Columns[di]
	return m.moveTask(b, reorder.TaskMove{
		TaskID:         task.ID,
		SourceColumnID: src.ID,
		DestColumnID:   dest.ID,
		DestIndex:      min(task.Order, len(dest.Tasks)),
	})
}

// moveTaskWithin swaps task with its neighbour in the same column
func (m *Model) moveTaskWithin(b *models.Board, task *models.Task, dir int) tea.Cmd {
	_, col := b.FindTask(task.ID)
	dest := task.Order + dir
	if dest < 0 || dest >= len(col.Tasks) {
		return nil
	}
	return m.moveTask(b, reorder.TaskMove{
		TaskID:         task.ID,
		SourceColumnID: col.ID,
		DestColumnID:   col.ID,
		DestIndex:      dest,
	})
}

func (m *Model) moveTask(b *models.Board, mv reorder.TaskMove) tea.Cmd {
	if m.busy() {
		m.notifications.Add(state.LevelWarning, dnd.ErrBusy.Error())
		return nil
	}
	preview := b.Clone()
	if res, err := reorder.MoveTask(preview, mv); err != nil || res.Empty() {
		return nil
	}
	item := dnd.Task(mv.TaskID)
	m.selectItem(preview, item)

	st := m.store
	return m.move(item, preview, func(ctx context.Context) error {
		return st.MoveTask(ctx, mv)
	})
}

func (m *Model) moveColumn(b *models.Board, col *models.Column, dir int) tea.Cmd {
	if m.busy() {
		m.notifications.Add(state.LevelWarning, dnd.ErrBusy.Error())
		return nil
	}
	_, from := b.Column(col.ID)
	to := from + dir
	if to < 0 || to >= len(b.Columns) {
		return nil
	}
	preview := b.Clone()
	if _, err := reorder.MoveColumn(preview, reorder.ColumnMove{ColumnID: col.ID, DestIndex: to}); err != nil {
		return nil
	}
	item := dnd.Column(col.ID)
	m.selectItem(preview, item)

	st, id := m.store, col.ID
	return m.move(item, preview, func(ctx context.Context) error {
		return st.MoveColumn(ctx, id, to)
	})
}

// ============================================================================
// Mouse
// ============================================================================

// handleMouse drives the pointer sensor: a press arms it, motion past the
// activation distance starts the gesture, release drops or, without a drag,
// selects what was clicked. The wheel scrolls the column under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	mode := m.uiState.Mode()
	if mode != state.NormalMode && mode != state.DragMode {
		return nil
	}
	pointerDrag := mode == state.DragMode && m.sensor.Active()
	if mode == state.DragMode && !pointerDrag {
		return nil // keyboard drag in progress
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		m.scrollAt(msg)
		return nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if pointerDrag {
			return nil
		}
		m.notifications.Clear()
		m.sensor.Press(msg.X, msg.Y, hitTest(m.uiState, m.board(), msg.X, msg.Y))
		return nil

	case msg.Action == tea.MouseActionMotion:
		if pointerDrag {
			m.over(hitTest(m.uiState, m.dragOrigin, msg.X, msg.Y))
			return nil
		}
		if item, ok := m.sensor.Motion(msg.X, msg.Y); ok {
			cmd := m.startDrag(item)
			if m.uiState.Mode() == state.DragMode {
				m.over(hitTest(m.uiState, m.dragOrigin, msg.X, msg.Y))
			}
			return cmd
		}
		return nil

	case msg.Action == tea.MouseActionRelease:
		if pointerDrag {
			return m.drop(hitTest(m.uiState, m.dragOrigin, msg.X, msg.Y))
		}
		if item, _ := m.sensor.Release(); !item.Empty() {
			m.selectItem(m.board(), item)
		}
		return nil
	}
	return nil
}

func (m *Model) scrollAt(msg tea.MouseMsg) {
	b := m.layoutBoard()
	item := hitTest(m.uiState, b, msg.X, msg.Y)
	ci, _, ok := locate(b, item)
	if !ok {
		return
	}
	col := b.Columns[ci]
	delta := 1
	if msg.Button == tea.MouseButtonWheelUp {
		delta = -1
	}
	m.uiState.ScrollTasks(col.ID, delta, len(col.Tasks))
}

// columnID is a convenience for dialogs that stash their target as an int
func columnID(target int) types.ColumnID {
	return types.ColumnID(target)
}

// taskID is a convenience for dialogs that stash their target as an int
func taskID(target int) types.TaskID {
	return types.TaskID(target)
}
