package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// fakeBackend keeps an authoritative board in memory and applies the same reorder
// operations the real services do. fail injects an error per method name.
type fakeBackend struct {
	mu     sync.Mutex
	board  *models.Board
	nextID int
	calls  []string
	fail   map[string]error
}

func newFakeBackend(board *models.Board) *fakeBackend {
	return &fakeBackend{board: board, nextID: 1000, fail: map[string]error{}}
}

func (f *fakeBackend) record(name string) error {
	f.calls = append(f.calls, name)
	return f.fail[name]
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeBackend) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) LoadBoard(_ context.Context) (*models.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("LoadBoard"); err != nil {
		return nil, err
	}
	if f.board == nil {
		return nil, models.ErrBoardNotFound
	}
	return f.board.Clone(), nil
}

func (f *fakeBackend) CreateBoard(_ context.Context, title string) (*models.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateBoard"); err != nil {
		return nil, err
	}
	if f.board != nil {
		return nil, models.ErrBoardExists
	}
	f.board = &models.Board{ID: types.BoardID(f.id()), Title: title}
	for _, t := range models.DefaultColumnTitles {
		reorder.AppendColumn(f.board, &models.Column{ID: types.ColumnID(f.id()), Title: t, Tasks: []*models.Task{}})
	}
	return f.board.Clone(), nil
}

func (f *fakeBackend) UpdateBoard(_ context.Context, title string) (*models.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateBoard"); err != nil {
		return nil, err
	}
	f.board.Title = title
	return f.board.Clone(), nil
}

func (f *fakeBackend) CreateColumn(_ context.Context, title string) (*models.Column, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateColumn"); err != nil {
		return nil, err
	}
	col := &models.Column{ID: types.ColumnID(f.id()), Title: title, Tasks: []*models.Task{}}
	reorder.AppendColumn(f.board, col)
	return col.Clone(), nil
}

func (f *fakeBackend) UpdateColumn(_ context.Context, id types.ColumnID, title string) (*models.Column, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateColumn"); err != nil {
		return nil, err
	}
	col, _ := f.board.Column(id)
	if col == nil {
		return nil, models.ErrColumnNotFound
	}
	col.Title = title
	return col.Clone(), nil
}

func (f *fakeBackend) DeleteColumn(_ context.Context, id types.ColumnID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteColumn"); err != nil {
		return err
	}
	_, _, err := reorder.RemoveColumn(f.board, id)
	return err
}

func (f *fakeBackend) MoveColumn(_ context.Context, m reorder.ColumnMove) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("MoveColumn"); err != nil {
		return err
	}
	_, err := reorder.MoveColumn(f.board, m)
	return err
}

func (f *fakeBackend) CreateTask(_ context.Context, columnID types.ColumnID, title, description string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateTask"); err != nil {
		return nil, err
	}
	now := time.Now()
	task := &models.Task{ID: types.TaskID(f.id()), Title: title, Description: description, CreatedAt: now, UpdatedAt: now}
	if _, err := reorder.AppendTask(f.board, columnID, task); err != nil {
		return nil, models.ErrColumnNotFound
	}
	return task.Clone(), nil
}

func (f *fakeBackend) UpdateTask(_ context.Context, id types.TaskID, patch models.TaskPatch) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateTask"); err != nil {
		return nil, err
	}
	task, _ := f.board.FindTask(id)
	if task == nil {
		return nil, models.ErrTaskNotFound
	}
	patch.ApplyTo(task)
	task.UpdatedAt = time.Now()
	return task.Clone(), nil
}

func (f *fakeBackend) DeleteTask(_ context.Context, id types.TaskID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteTask"); err != nil {
		return err
	}
	_, _, err := reorder.RemoveTask(f.board, id)
	return err
}

func (f *fakeBackend) MoveTask(_ context.Context, m reorder.TaskMove) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("MoveTask"); err != nil {
		return err
	}
	_, err := reorder.MoveTask(f.board, m)
	return err
}

// seededBoard has columns C0(10) [T0(100), T1(101)], C1(11) [] and C2(12) [T2(102)]
func seededBoard() *models.Board {
	return &models.Board{
		ID:    1,
		Title: "Work",
		Columns: []*models.Column{
			{ID: 10, BoardID: 1, Title: "Todo", Order: 0, Tasks: []*models.Task{
				{ID: 100, ColumnID: 10, Title: "T0", Order: 0},
				{ID: 101, ColumnID: 10, Title: "T1", Order: 1},
			}},
			{ID: 11, BoardID: 1, Title: "Doing", Order: 1, Tasks: []*models.Task{}},
			{ID: 12, BoardID: 1, Title: "Done", Order: 2, Tasks: []*models.Task{
				{ID: 102, ColumnID: 12, Title: "T2", Order: 0},
			}},
		},
	}
}

func setupStore(t *testing.T) (*Store, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend(seededBoard())
	s := New(backend)
	require.NoError(t, s.Load(context.Background()))
	return s, backend
}

// ============================================================================
// Lifecycle Tests
// ============================================================================

func TestLoadOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	backend := newFakeBackend(seededBoard())
	s := New(backend)
	assert.False(t, s.Loaded())
	assert.Nil(t, s.Board())

	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, 1, backend.callCount())
	assert.True(t, s.Loaded())
	assert.False(t, s.Loading())
	assert.Equal(t, seededBoard(), s.Board())

	require.NoError(t, s.Reload(ctx))
	assert.Equal(t, 2, backend.callCount())

	s.Clear()
	assert.False(t, s.Loaded())
	assert.Nil(t, s.Board())
}

func TestLoadWithoutBoard(t *testing.T) {
	t.Parallel()

	s := New(newFakeBackend(nil))
	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.Loaded())
	assert.Nil(t, s.Board())

	_, err := s.CreateColumn(context.Background(), "Todo")
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
}

func TestLoadFailure(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(seededBoard())
	backend.fail["LoadBoard"] = errors.New("connection refused")
	s := New(backend)

	err := s.Load(context.Background())
	require.Error(t, err)
	assert.False(t, s.Loaded())
	assert.Error(t, s.Err())
}

func TestBoardReturnsCopy(t *testing.T) {
	t.Parallel()

	s, _ := setupStore(t)
	b := s.Board()
	b.Columns[0].Tasks[0].Title = "mutated"
	assert.Equal(t, "T0", s.Board().Columns[0].Tasks[0].Title)
}

// ============================================================================
// Board Tests
// ============================================================================

func TestCreateBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	backend := newFakeBackend(nil)
	s := New(backend)
	require.NoError(t, s.Load(ctx))

	board, err := s.CreateBoard(ctx, "  Personal ")
	require.NoError(t, err)
	assert.Equal(t, "Personal", board.Title)
	assert.Positive(t, int(board.ID))
	assert.Len(t, board.Columns, len(models.DefaultColumnTitles))
	require.NoError(t, board.Validate())

	_, err = s.CreateBoard(ctx, "Another")
	assert.ErrorIs(t, err, models.ErrBoardExists)
}

func TestCreateBoardRollback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	backend := newFakeBackend(nil)
	backend.fail["CreateBoard"] = errors.New("timeout")
	s := New(backend)
	require.NoError(t, s.Load(ctx))

	_, err := s.CreateBoard(ctx, "Personal")
	assert.ErrorIs(t, err, models.ErrTransient)
	assert.Nil(t, s.Board())
	assert.NotEmpty(t, s.Notice())
}

func TestUpdateBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	require.NoError(t, s.UpdateBoard(ctx, "Home"))
	assert.Equal(t, "Home", s.Board().Title)

	backend.fail["UpdateBoard"] = errors.New("boom")
	require.Error(t, s.UpdateBoard(ctx, "Office"))
	assert.Equal(t, "Home", s.Board().Title)
}

// ============================================================================
// Column Tests
// ============================================================================

func TestCreateColumnReconcilesID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	col, err := s.CreateColumn(ctx, "Review")
	require.NoError(t, err)
	assert.False(t, col.ID.Provisional())
	assert.Equal(t, 3, col.Order)

	local := s.Board()
	require.NoError(t, local.Validate())
	assert.Equal(t, col.ID, local.Columns[3].ID)
	assert.Equal(t, backend.board.Columns[3].ID, local.Columns[3].ID)
}

func TestCreateColumnRollback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	backend.fail["CreateColumn"] = errors.New("disk I/O error")

	_, err := s.CreateColumn(ctx, "Review")
	assert.ErrorIs(t, err, models.ErrTransient)
	assert.Equal(t, seededBoard(), s.Board())
	assert.NotEmpty(t, s.Notice())

	s.DismissNotice()
	assert.Empty(t, s.Notice())
}

func TestUpdateColumn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	calls := backend.callCount()

	// same title after trimming is a no-op
	require.NoError(t, s.UpdateColumn(ctx, 10, " Todo "))
	assert.Equal(t, calls, backend.callCount())

	require.NoError(t, s.UpdateColumn(ctx, 10, "Backlog"))
	assert.Equal(t, "Backlog", s.Board().Columns[0].Title)
	assert.Equal(t, 0, s.Board().Columns[0].Order)

	assert.ErrorIs(t, s.UpdateColumn(ctx, 99, "x"), models.ErrColumnNotFound)
	assert.ErrorIs(t, s.UpdateColumn(ctx, 10, ""), models.ErrValidation)
}

func TestDeleteColumnRenumbers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// [C0, C1, C2], delete C1 → [C0(0), C2(1)]
	s, backend := setupStore(t)
	require.NoError(t, s.DeleteColumn(ctx, 11))

	b := s.Board()
	require.Len(t, b.Columns, 2)
	assert.Equal(t, types.ColumnID(10), b.Columns[0].ID)
	assert.Equal(t, 0, b.Columns[0].Order)
	assert.Equal(t, types.ColumnID(12), b.Columns[1].ID)
	assert.Equal(t, 1, b.Columns[1].Order)
	assert.Equal(t, backend.board, b)
}

func TestDeleteColumnOwnershipRejectionRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	backend.fail["DeleteColumn"] = models.ErrNotOwner

	err := s.DeleteColumn(ctx, 10)
	assert.ErrorIs(t, err, models.ErrNotOwner)
	assert.NotErrorIs(t, err, models.ErrTransient)
	assert.Empty(t, s.Notice())
	assert.Equal(t, seededBoard(), s.Board())
}

func TestMoveColumn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	require.NoError(t, s.MoveColumn(ctx, 12, 0))
	b := s.Board()
	assert.Equal(t, types.ColumnID(12), b.Columns[0].ID)
	require.NoError(t, b.Validate())
	assert.Equal(t, backend.board, b)

	calls := backend.callCount()
	require.NoError(t, s.MoveColumn(ctx, 12, 0))
	assert.Equal(t, calls, backend.callCount())

	assert.ErrorIs(t, s.MoveColumn(ctx, 77, 0), models.ErrColumnNotFound)
	assert.ErrorIs(t, s.MoveColumn(ctx, 12, -1), models.ErrInvalidPosition)
}

// ============================================================================
// Task Tests
// ============================================================================

func TestCreateTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	task, err := s.CreateTask(ctx, 11, "write tests", "table driven")
	require.NoError(t, err)
	assert.False(t, task.ID.Provisional())
	assert.Equal(t, 0, task.Order)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, backend.board, s.Board())
}

func TestCreateTaskValidationTouchesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	calls := backend.callCount()

	_, err := s.CreateTask(ctx, 10, "   ", "")
	assert.ErrorIs(t, err, models.ErrEmptyTitle)
	_, err = s.CreateTask(ctx, 99, "ok", "")
	assert.ErrorIs(t, err, models.ErrColumnNotFound)

	assert.Equal(t, calls, backend.callCount())
	assert.Equal(t, seededBoard(), s.Board())
	assert.Error(t, s.Err())
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	title := "T0 renamed"
	require.NoError(t, s.UpdateTask(ctx, 100, models.TaskPatch{Title: &title}))
	task, _ := s.Board().FindTask(100)
	assert.Equal(t, "T0 renamed", task.Title)
	assert.Equal(t, 0, task.Order)

	backend.fail["UpdateTask"] = errors.New("boom")
	desc := "lost"
	require.Error(t, s.UpdateTask(ctx, 100, models.TaskPatch{Description: &desc}))
	task, _ = s.Board().FindTask(100)
	assert.Empty(t, task.Description)
}

func TestDeleteTaskRenumbers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	require.NoError(t, s.DeleteTask(ctx, 100))

	b := s.Board()
	require.Len(t, b.Columns[0].Tasks, 1)
	assert.Equal(t, types.TaskID(101), b.Columns[0].Tasks[0].ID)
	assert.Equal(t, 0, b.Columns[0].Tasks[0].Order)
	assert.Equal(t, backend.board, b)

	assert.ErrorIs(t, s.DeleteTask(ctx, 100), models.ErrTaskNotFound)
}

// ============================================================================
// Move Tests
// ============================================================================

func TestDragTaskOntoSibling(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// K has [T0, T1]; drag T1 onto T0 → T1(0), T0(1)
	s, backend := setupStore(t)
	m, ok := dnd.Resolve(s.Board(), dnd.Task(101), dnd.Task(100))
	require.True(t, ok)
	require.NoError(t, s.Apply(ctx, m))

	k := s.Board().Columns[0]
	assert.Equal(t, types.TaskID(101), k.Tasks[0].ID)
	assert.Equal(t, 0, k.Tasks[0].Order)
	assert.Equal(t, types.TaskID(100), k.Tasks[1].ID)
	assert.Equal(t, 1, k.Tasks[1].Order)
	assert.Equal(t, backend.board, s.Board())
}

func TestDragTaskOntoEmptyColumn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// A has 2 tasks, B is empty
	s, _ := setupStore(t)
	m, ok := dnd.Resolve(s.Board(), dnd.Task(100), dnd.Column(11))
	require.True(t, ok)
	require.NoError(t, s.Apply(ctx, m))

	b := s.Board()
	require.Len(t, b.Columns[0].Tasks, 1)
	assert.Equal(t, 0, b.Columns[0].Tasks[0].Order)
	require.Len(t, b.Columns[1].Tasks, 1)
	assert.Equal(t, types.TaskID(100), b.Columns[1].Tasks[0].ID)
	assert.Equal(t, 0, b.Columns[1].Tasks[0].Order)
	assert.Equal(t, 3, b.TaskCount())
}

func TestMoveTaskNoopMakesNoCalls(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	calls := backend.callCount()

	require.NoError(t, s.MoveTask(ctx, reorder.TaskMove{TaskID: 101, SourceColumnID: 10, DestColumnID: 10, DestIndex: 1}))
	// stale: T1 is not in C2
	require.NoError(t, s.MoveTask(ctx, reorder.TaskMove{TaskID: 101, SourceColumnID: 12, DestColumnID: 11, DestIndex: 0}))

	assert.Equal(t, calls, backend.callCount())
	assert.Equal(t, seededBoard(), s.Board())
}

func TestMoveTaskTransientFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	backend.fail["MoveTask"] = errors.New("connection reset")

	err := s.MoveTask(ctx, reorder.TaskMove{TaskID: 100, SourceColumnID: 10, DestColumnID: 12, DestIndex: 0})
	assert.ErrorIs(t, err, models.ErrTransient)
	assert.Equal(t, seededBoard(), s.Board())
	assert.ErrorIs(t, s.Err(), models.ErrTransient)
	assert.Contains(t, s.Notice(), "move task")

	// the next success clears the error
	delete(backend.fail, "MoveTask")
	require.NoError(t, s.MoveTask(ctx, reorder.TaskMove{TaskID: 100, SourceColumnID: 10, DestColumnID: 12, DestIndex: 0}))
	assert.NoError(t, s.Err())
}

func TestGestureWithoutDropPersistsNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)
	calls := backend.callCount()

	g := dnd.NewGesture(s, s)
	require.NoError(t, g.Start(dnd.Task(100)))
	g.Over(dnd.Column(11))
	g.Over(dnd.Task(102))
	g.Over(dnd.Column(12))
	_, committed, err := g.End(ctx, dnd.Item{})
	require.NoError(t, err)
	assert.False(t, committed)

	assert.Equal(t, calls, backend.callCount())
	assert.Equal(t, seededBoard(), s.Board())
}

func TestConcurrentMovesKeepInvariants(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, backend := setupStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := s.Board()
			src := b.Columns[i%len(b.Columns)]
			if len(src.Tasks) == 0 {
				return
			}
			dest := b.Columns[(i+1)%len(b.Columns)]
			_ = s.MoveTask(ctx, reorder.TaskMove{
				TaskID:         src.Tasks[0].ID,
				SourceColumnID: src.ID,
				DestColumnID:   dest.ID,
				DestIndex:      i % 3,
			})
		}(i)
	}
	wg.Wait()

	b := s.Board()
	require.NoError(t, b.Validate())
	assert.Equal(t, 3, b.TaskCount())
	assert.Equal(t, backend.board, b)
}
