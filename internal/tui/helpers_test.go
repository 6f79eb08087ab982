package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	taskservice "github.com/thenoetrevino/dragboard/internal/services/task"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/testutil"
)

const (
	testWidth  = 120
	testHeight = 30
)

type harness struct {
	repo    *database.Repository
	app     *app.App
	backend store.Backend
	store   *store.Store
	ctx     context.Context
	cfg     *config.Config
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newHarness sets up a user with no board
func newHarness(t *testing.T) *harness {
	t.Helper()
	repo := testutil.SetupTestDB(t)
	a := app.New(repo, app.WithLogger(quietLogger()))
	ctx, err := a.As(context.Background(), "tester")
	require.NoError(t, err)
	p, err := a.Principal(ctx, "tester")
	require.NoError(t, err)

	h := &harness{repo: repo, app: a, backend: a.LocalBackend(p), ctx: ctx, cfg: config.Default()}
	h.store = store.New(h.backend, store.WithLogger(quietLogger()))
	return h
}

// withBoard creates the board with the given columns, each holding the given tasks
func (h *harness) withBoard(t *testing.T, columns map[string][]string, order ...string) {
	t.Helper()
	_, err := h.app.BoardService.CreateBoard(h.ctx, "Test Board")
	require.NoError(t, err)

	// drop the seeded columns, then build the requested layout
	b, err := h.app.BoardService.GetBoard(h.ctx)
	require.NoError(t, err)
	for _, c := range b.Columns {
		require.NoError(t, h.app.ColumnService.DeleteColumn(h.ctx, c.ID))
	}
	for _, title := range order {
		col, err := h.app.ColumnService.CreateColumn(h.ctx, title)
		require.NoError(t, err)
		for _, name := range columns[title] {
			_, err := h.app.TaskService.CreateTask(h.ctx, taskservice.CreateTaskRequest{ColumnID: col.ID, Title: name})
			require.NoError(t, err)
		}
	}
}

// titles returns the persisted task titles per column in order
func (h *harness) titles(t *testing.T) [][]string {
	t.Helper()
	b, err := h.app.BoardService.GetBoard(h.ctx)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	out := make([][]string, len(b.Columns))
	for i, c := range b.Columns {
		out[i] = []string{}
		for _, task := range c.Tasks {
			out[i] = append(out[i], task.Title)
		}
	}
	return out
}

func (h *harness) columnTitles(t *testing.T) []string {
	t.Helper()
	b, err := h.app.BoardService.GetBoard(h.ctx)
	require.NoError(t, err)
	var out []string
	for _, c := range b.Columns {
		out = append(out, c.Title)
	}
	return out
}

func (h *harness) task(t *testing.T, title string) *models.Task {
	t.Helper()
	b, err := h.app.BoardService.GetBoard(h.ctx)
	require.NoError(t, err)
	for _, c := range b.Columns {
		for _, task := range c.Tasks {
			if task.Title == title {
				return task
			}
		}
	}
	t.Fatalf("task %q not found", title)
	return nil
}

// start builds the model, sizes it and loads the board
func (h *harness) start(t *testing.T, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{WithContext(h.ctx), WithLogger(quietLogger())}, opts...)
	m := New(h.store, h.cfg, opts...)
	m = send(t, m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return exec(t, m, m.Init())
}

// send delivers msg and runs every command it produces to completion
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return exec(t, next.(Model), cmd)
}

// settle bounds how long exec waits on one command. Cursor blinks sleep past
// it and are dropped; everything else answers well within it.
const settle = 300 * time.Millisecond

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// exec runs cmd and feeds every message it produces back into the model, so
// backend results and huh's field and submit steps all land.
func exec(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := await(cmd)
	if msg == nil {
		return m
	}
	// batches and sequences are both slices of commands
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		for i := 0; i < v.Len(); i++ {
			m = exec(t, m, v.Index(i).Interface().(tea.Cmd))
		}
		return m
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return m
	}
	return send(t, m, msg)
}

func await(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(settle):
		return nil
	}
}

func keys(t *testing.T, m Model, names ...string) Model {
	t.Helper()
	for _, name := range names {
		m = send(t, m, keyMsg(name))
	}
	return m
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// cardCell returns a cell inside the card at the given visible row of the given column
func cardCell(column, row int) (int, int) {
	return column*33 + 5, 2 + 2 + row*3 + 1
}

// headerCell returns a cell on the given column's header
func headerCell(column int) (int, int) {
	return column*33 + 5, 3
}

// flakyBackend fails moves as if the network dropped
type flakyBackend struct {
	store.Backend
	fail bool
}

var errNetwork = errors.New("connection reset by peer")

func (f *flakyBackend) MoveTask(ctx context.Context, m reorder.TaskMove) error {
	if f.fail {
		return errNetwork
	}
	return f.Backend.MoveTask(ctx, m)
}

func (f *flakyBackend) MoveColumn(ctx context.Context, m reorder.ColumnMove) error {
	if f.fail {
		return errNetwork
	}
	return f.Backend.MoveColumn(ctx, m)
}
