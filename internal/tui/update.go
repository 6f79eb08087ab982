package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// Update handles all incoming messages and returns the updated model and any commands
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.help.Width = msg.Width
		cmd = m.updateForm(msg)

	case boardLoadedMsg:
		if msg.err != nil {
			m.notifications.Add(state.LevelError, fmt.Sprintf("%v (press %s to retry)", msg.err, m.keys.Reload.Help().Key))
		} else {
			m.uiState.ResetSelection()
		}

	case opDoneMsg:
		m.inFlight--
		if m.report(msg.op, msg.err) && !msg.selectItem.Empty() {
			m.selectItem(m.store.Board(), msg.selectItem)
		}

	case moveDoneMsg:
		m.inFlight--
		m.pending = nil
		if msg.committed {
			m.report("move", msg.err)
		}
		m.selectItem(m.store.Board(), msg.item)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		cmd = m.updateForm(msg)
	}

	m.uiState.ClampSelection(taskCounts(m.layoutBoard()))
	return m, cmd
}

// report surfaces the outcome of a backend call and reports whether it succeeded.
// Transient failures show the store's notice; rejections show the error.
func (m *Model) report(op string, err error) bool {
	if err == nil {
		return true
	}
	m.logger.Debug("operation failed", "op", op, "error", err)

	if notice := m.store.Notice(); notice != "" {
		m.notifications.Add(state.LevelWarning, notice)
		m.store.DismissNotice()
		return false
	}
	if errors.Is(err, models.ErrUnauthenticated) || errors.Is(err, models.ErrUnauthorized) {
		m.notifications.Add(state.LevelError, err.Error())
		return false
	}
	m.notifications.Add(state.LevelError, fmt.Sprintf("Could not %s: %v", op, err))
	return false
}

// ============================================================================
// Keyboard
// ============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	switch m.uiState.Mode() {
	case state.DragMode:
		return m.handleDragKey(msg)
	case state.InputMode, state.DescriptionMode, state.DeleteTaskConfirmMode, state.DeleteColumnConfirmMode:
		return m.handleFormKey(msg)
	case state.TaskViewMode, state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		m.help.ShowAll = false
		return nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	// any key dismisses the last notification
	m.notifications.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.help.ShowAll = true
		m.uiState.SetMode(state.HelpMode)
		return nil
	case key.Matches(msg, m.keys.Reload):
		return m.load(true)
	}

	if !m.store.Loaded() {
		return nil
	}
	b := m.board()
	if b == nil {
		if key.Matches(msg, m.keys.CreateBoard) {
			return m.openInput(inputCreateBoard, 0, "")
		}
		return nil
	}

	col, task := m.selection(b)
	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		m.navigate(b, -1, 0)
	case key.Matches(msg, m.keys.NextColumn):
		m.navigate(b, 1, 0)
	case key.Matches(msg, m.keys.PrevTask):
		m.navigate(b, 0, -1)
	case key.Matches(msg, m.keys.NextTask):
		m.navigate(b, 0, 1)

	case key.Matches(msg, m.keys.CreateBoard):
		m.notifications.Add(state.LevelInfo, "You already have a board")
	case key.Matches(msg, m.keys.RenameBoard):
		return m.openInput(inputRenameBoard, 0, b.Title)
	case key.Matches(msg, m.keys.CreateColumn):
		return m.openInput(inputCreateColumn, 0, "")

	case col == nil:
		return nil

	case key.Matches(msg, m.keys.RenameColumn):
		return m.openInput(inputRenameColumn, int(col.ID), col.Title)
	case key.Matches(msg, m.keys.DeleteColumn):
		return m.openConfirm(state.DeleteColumnConfirmMode, int(col.ID))
	case key.Matches(msg, m.keys.MoveColumnLeft):
		return m.moveColumn(b, col, -1)
	case key.Matches(msg, m.keys.MoveColumnRight):
		return m.moveColumn(b, col, 1)
	case key.Matches(msg, m.keys.AddTask):
		return m.openInput(inputAddTask, int(col.ID), "")
	case key.Matches(msg, m.keys.PickUp):
		return m.startDrag(m.selectedItem(b))

	case task == nil:
		return nil

	case key.Matches(msg, m.keys.EditTask):
		return m.openInput(inputEditTask, int(task.ID), task.Title)
	case key.Matches(msg, m.keys.EditDescription):
		return m.openEditor(task)
	case key.Matches(msg, m.keys.DeleteTask):
		return m.openConfirm(state.DeleteTaskConfirmMode, int(task.ID))
	case key.Matches(msg, m.keys.ViewTask):
		m.openTaskView(task)
	case key.Matches(msg, m.keys.MoveTaskLeft):
		return m.moveTaskAcross(b, task, -1)
	case key.Matches(msg, m.keys.MoveTaskRight):
		return m.moveTaskAcross(b, task, 1)
	case key.Matches(msg, m.keys.MoveTaskUp):
		return m.moveTaskWithin(b, task, -1)
	case key.Matches(msg, m.keys.MoveTaskDown):
		return m.moveTaskWithin(b, task, 1)
	}
	return nil
}

// selection returns the selected column and task, either of which may be nil
func (m *Model) selection(b *models.Board) (*models.Column, *models.Task) {
	ci, ti := m.uiState.SelectedColumn(), m.uiState.SelectedTask()
	if b == nil || ci < 0 || ci >= len(b.Columns) {
		return nil, nil
	}
	col := b.Columns[ci]
	if ti < 0 || ti >= len(col.Tasks) {
		return col, nil
	}
	return col, col.Tasks[ti]
}

func (m *Model) selectedItem(b *models.Board) dnd.Item {
	return itemAt(b, m.uiState.SelectedColumn(), m.uiState.SelectedTask())
}

// navigate moves the selection by whole columns or single rows. Row -1 is the
// column header; moving to another column keeps the row where possible.
func (m *Model) navigate(b *models.Board, dCol, dRow int) {
	if len(b.Columns) == 0 {
		return
	}
	ci := min(max(m.uiState.SelectedColumn()+dCol, 0), len(b.Columns)-1)
	col := b.Columns[ci]
	ti := min(max(m.uiState.SelectedTask()+dRow, -1), len(col.Tasks)-1)

	m.uiState.SetSelectedColumn(ci)
	m.uiState.SetSelectedTask(ti)
	m.uiState.EnsureSelectionVisible(ci)
	m.uiState.EnsureTaskVisible(col.ID, ti)
}

// selectItem points the selection at item, if it is on b
func (m *Model) selectItem(b *models.Board, item dnd.Item) {
	ci, ti, ok := locate(b, item)
	if !ok {
		return
	}
	m.uiState.SetSelectedColumn(ci)
	m.uiState.SetSelectedTask(ti)
	m.uiState.EnsureSelectionVisible(ci)
	m.uiState.EnsureTaskVisible(b.Columns[ci].ID, ti)
}
