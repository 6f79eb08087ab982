// Package tui is the interactive board: keyboard navigation, mouse and keyboard
// drag and drop, and dialogs for every board, column and task operation. All state
// changes go through the optimistic store; the TUI only renders it.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// inputKind says what the single-line prompt is for
type inputKind int

const (
	inputCreateBoard inputKind = iota
	inputRenameBoard
	inputCreateColumn
	inputRenameColumn
	inputAddTask
	inputEditTask
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	logger *slog.Logger

	store   *store.Store
	gesture *dnd.Gesture
	sensor  *dnd.PointerSensor

	keys          keyMap
	colors        config.ColorScheme
	styles        styles
	uiState       *state.UIState
	notifications *state.NotificationState

	// forms is shared between model copies; open form fields write into it
	forms     *state.FormState
	inputKind inputKind
	help      help.Model

	// target is the column or task a dialog acts on
	target int

	// dragOrigin is the board when the current drag started; pointer positions are
	// hit-tested against it so the layout does not shift under the pointer
	dragOrigin *models.Board

	// pending is the board as a move left it, shown until the backend answers
	pending *models.Board

	// rendered is the task view body, rendered once when the view opens
	rendered string

	// inFlight counts backend calls that have not answered yet
	inFlight int
}

// Option configures a Model
type Option func(*Model)

// WithContext sets the context backend calls run under
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// WithLogger sets the TUI logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates the TUI over st. The board is fetched by Init.
func New(st *store.Store, cfg *config.Config, opts ...Option) Model {
	m := Model{
		ctx:           context.Background(),
		logger:        slog.Default(),
		store:         st,
		sensor:        dnd.NewPointerSensor(cfg.Drag.Distance()),
		keys:          newKeyMap(cfg.KeyMappings),
		colors:        cfg.ColorScheme,
		styles:        newStyles(cfg.ColorScheme),
		uiState:       state.NewUIState(),
		notifications: state.NewNotificationState(),
		forms:         state.NewFormState(),
		help:          help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.gesture = dnd.NewGesture(st, st, dnd.WithLogger(m.logger))
	return m
}

// Init fetches the board
func (m Model) Init() tea.Cmd {
	return m.load(false)
}

// ============================================================================
// Messages
// ============================================================================

// boardLoadedMsg reports the end of a fetch
type boardLoadedMsg struct {
	err error
}

// opDoneMsg reports the end of a create, rename or delete. selectItem is set
// when the created element should become the selection.
type opDoneMsg struct {
	op         string
	err        error
	selectItem dnd.Item
}

// moveDoneMsg reports the end of a drop or a keyboard move. committed is false
// when the drop turned out to be a no-op.
type moveDoneMsg struct {
	item      dnd.Item
	committed bool
	err       error
}

// ============================================================================
// Commands
// ============================================================================

func (m *Model) load(reload bool) tea.Cmd {
	ctx, st := m.ctx, m.store
	return func() tea.Msg {
		if reload {
			return boardLoadedMsg{err: st.Reload(ctx)}
		}
		return boardLoadedMsg{err: st.Load(ctx)}
	}
}

// run performs a store call off the update loop
func (m *Model) run(op string, fn func(ctx context.Context) (dnd.Item, error)) tea.Cmd {
	m.inFlight++
	ctx := m.ctx
	return func() tea.Msg {
		item, err := fn(ctx)
		return opDoneMsg{op: op, err: err, selectItem: item}
	}
}

// move performs a move, showing preview until the backend answers
func (m *Model) move(item dnd.Item, preview *models.Board, fn func(ctx context.Context) error) tea.Cmd {
	m.inFlight++
	m.pending = preview
	ctx := m.ctx
	return func() tea.Msg {
		return moveDoneMsg{item: item, committed: true, err: fn(ctx)}
	}
}

// busy reports whether a backend call is still open. A create leaves a
// provisional ID on the board until it answers, and moving that element would
// be dropped as stale, so no move or drag starts meanwhile.
func (m *Model) busy() bool {
	return m.pending != nil || m.inFlight > 0
}

// board returns what is on screen: the drag preview while dragging, the pending
// result of a move, or the store's board
func (m *Model) board() *models.Board {
	if m.uiState.Mode() == state.DragMode {
		if preview := m.gesture.Preview(); preview != nil {
			return preview
		}
	}
	if m.pending != nil {
		return m.pending
	}
	return m.store.Board()
}
