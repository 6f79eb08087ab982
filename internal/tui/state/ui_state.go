package state

import "github.com/thenoetrevino/dragboard/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	DragMode                            // Carrying a task or column (keyboard or mouse)
	InputMode                           // Single-line prompt (titles)
	DescriptionMode                     // Multi-line description editor
	TaskViewMode                        // Read-only task with rendered description
	DeleteTaskConfirmMode               // Confirming task deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	HelpMode                            // Displaying help screen
)

// Layout measurements in terminal cells. The renderer and the mouse hit-test both
// derive every position from these, so they must agree.
const (
	// ColumnContentWidth is the text area inside a column
	ColumnContentWidth = 28
	// ColumnOuterWidth adds padding and border
	ColumnOuterWidth = ColumnContentWidth + 2 + 2
	ColumnGap        = 1
	ColumnStride     = ColumnOuterWidth + ColumnGap

	// CardHeight is border, one title line, border
	CardHeight    = 3
	CardTextWidth = ColumnContentWidth - 2 - 2

	// BoardTop is the title bar plus a gap line
	BoardTop         = 2
	FooterHeight     = 2
	MinContentHeight = columnChrome + CardHeight
	ViewportMargin   = 2

	// columnChrome is the column border plus its header line
	columnChrome = 2 + 1
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the selected task within the selected column,
	// or -1 when the column itself (its header) is selected
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// taskScrollOffsets tracks the vertical scroll offset for each column
	// Key: columnID, Value: scroll offset (index of first visible task)
	taskScrollOffsets map[types.ColumnID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // Default to 1, will be recalculated when width is set
		taskScrollOffsets: make(map[types.ColumnID]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task, -1 for the column header.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the outer height of a column box: terminal height minus
// title and footer lines, never less than one visible card.
func (s *UIState) ContentHeight() int {
	return max(s.height-BoardTop-FooterHeight, MinContentHeight)
}

// VisibleTasks returns how many cards fit in one column.
func (s *UIState) VisibleTasks() int {
	return max(1, (s.ContentHeight()-columnChrome)/CardHeight)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(0, offset)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns can fit in the terminal width,
// always at least one.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	available := s.width - ViewportMargin + ColumnGap
	s.viewportSize = max(1, available/ColumnStride)
}

// ClampSelection keeps the selection inside a board with the given per-column task
// counts and keeps the selected column on screen.
func (s *UIState) ClampSelection(taskCounts []int) {
	if len(taskCounts) == 0 {
		s.selectedColumn, s.selectedTask, s.viewportOffset = 0, -1, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), len(taskCounts)-1)
	s.selectedTask = min(max(s.selectedTask, -1), taskCounts[s.selectedColumn]-1)

	if s.viewportOffset+s.viewportSize > len(taskCounts) {
		s.viewportOffset = max(0, len(taskCounts)-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected column is visible.
// This should be called after navigation or when the selection changes.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	// If selection is off-screen to the left, scroll left
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}

	// If selection is off-screen to the right, scroll right
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ResetSelection selects the first task of the first column and scrolls home.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
	clear(s.taskScrollOffsets)
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) TaskScrollOffset(columnID types.ColumnID) int {
	return s.taskScrollOffsets[columnID]
}

// ScrollTasks moves a column's scroll offset by delta within [0, taskCount-visible].
// Returns true if scrolling occurred.
func (s *UIState) ScrollTasks(columnID types.ColumnID, delta, taskCount int) bool {
	offset := s.TaskScrollOffset(columnID)
	next := min(max(offset+delta, 0), max(0, taskCount-s.VisibleTasks()))
	if next == offset {
		return false
	}
	s.taskScrollOffsets[columnID] = next
	return true
}

// EnsureTaskVisible adjusts the scroll offset to ensure the task at index is visible.
// This should be called after task navigation within a column.
func (s *UIState) EnsureTaskVisible(columnID types.ColumnID, index int) {
	if index < 0 {
		return
	}
	offset := s.TaskScrollOffset(columnID)
	visible := s.VisibleTasks()

	// If selection is above visible area, scroll up
	if index < offset {
		s.taskScrollOffsets[columnID] = index
	}

	// If selection is below visible area, scroll down
	if index >= offset+visible {
		s.taskScrollOffsets[columnID] = index - visible + 1
	}
}
