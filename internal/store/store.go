// Package store holds the client-visible board for the signed-in user.
//
// Every mutation is optimistic: local state changes first so the interaction
// surface can render it immediately, the backend is called, and the change is
// either reconciled with server-assigned identities or reverted with the inverse
// order operation. Mutations are serialized so no two moves interleave.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Store is an explicitly owned board state container
type Store struct {
	backend Backend
	logger  *slog.Logger

	// mu serializes mutations from optimistic change to reconcile/rollback
	mu sync.Mutex

	// state guards the fields below; held only briefly so reads see optimistic
	// changes while a backend call is in flight
	state       sync.RWMutex
	board       *models.Board
	loaded      bool
	loading     bool
	err         error
	notice      string
	provisional int
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the store logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an unloaded store over backend
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// Lifecycle
// ============================================================================

// Load fetches the user's board once. Later calls are no-ops until Clear or Reload.
// A user without a board is a successful load with a nil Board.
func (s *Store) Load(ctx context.Context) error {
	s.state.RLock()
	loaded := s.loaded
	s.state.RUnlock()
	if loaded {
		return nil
	}
	return s.Reload(ctx)
}

// Reload refetches the board unconditionally, discarding local state
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Lock()
	s.loading = true
	s.state.Unlock()

	board, err := s.backend.LoadBoard(ctx)

	s.state.Lock()
	defer s.state.Unlock()
	s.loading = false

	if err != nil && !errors.Is(err, models.ErrBoardNotFound) {
		s.err = fmt.Errorf("failed to load board: %w", err)
		s.logger.Error("failed to load board", "error", err)
		return s.err
	}

	if board != nil {
		board.Sort()
	}
	s.board = board
	s.loaded = true
	s.err = nil
	s.notice = ""
	return nil
}

// Clear drops all state, returning the store to unloaded (logout)
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Lock()
	defer s.state.Unlock()
	s.board = nil
	s.loaded = false
	s.loading = false
	s.err = nil
	s.notice = ""
}

// ============================================================================
// Reads
// ============================================================================

// Board returns a deep copy of the current board, nil when there is none
func (s *Store) Board() *models.Board {
	s.state.RLock()
	defer s.state.RUnlock()
	return s.board.Clone()
}

// Loaded reports whether the initial fetch has completed
func (s *Store) Loaded() bool {
	s.state.RLock()
	defer s.state.RUnlock()
	return s.loaded
}

// Loading reports whether a fetch is in flight
func (s *Store) Loading() bool {
	s.state.RLock()
	defer s.state.RUnlock()
	return s.loading
}

// Err returns the error of the last failed operation, nil after a success
func (s *Store) Err() error {
	s.state.RLock()
	defer s.state.RUnlock()
	return s.err
}

// Notice returns the user-visible message left by the last transient failure
func (s *Store) Notice() string {
	s.state.RLock()
	defer s.state.RUnlock()
	return s.notice
}

// DismissNotice clears the transient failure message
func (s *Store) DismissNotice() {
	s.state.Lock()
	defer s.state.Unlock()
	s.notice = ""
}

// ============================================================================
// Internals
// ============================================================================

// mutate runs fn against the live board under the state write lock
func (s *Store) mutate(fn func(b *models.Board) error) error {
	s.state.Lock()
	defer s.state.Unlock()
	return fn(s.board)
}

// requireBoard runs fn against the live board, failing when there is none
func (s *Store) requireBoard(fn func(b *models.Board) error) error {
	return s.mutate(func(b *models.Board) error {
		if b == nil {
			return models.ErrBoardNotFound
		}
		return fn(b)
	})
}

func (s *Store) nextProvisional() int {
	s.state.Lock()
	defer s.state.Unlock()
	s.provisional--
	return s.provisional
}

// succeed clears the error left by an earlier failure
func (s *Store) succeed() {
	s.state.Lock()
	defer s.state.Unlock()
	s.err = nil
}

// reject records an error that happened before any optimistic change
func (s *Store) reject(err error) error {
	s.state.Lock()
	defer s.state.Unlock()
	s.err = err
	return err
}

// rollback restores state after a failed backend call and classifies the failure.
// Deterministic rejections are returned as-is; anything else is transient and
// leaves a notice for the user.
func (s *Store) rollback(op string, undo func(b *models.Board), err error) error {
	s.state.Lock()
	defer s.state.Unlock()

	if undo != nil {
		undo(s.board)
	}

	if !models.IsClientError(err) {
		err = fmt.Errorf("%w: failed to %s: %w", models.ErrTransient, op, err)
		s.notice = fmt.Sprintf("Could not %s, change reverted. Try again.", op)
	}
	s.err = err
	s.logger.Warn("mutation rolled back", "op", op, "error", err)
	return err
}

// ============================================================================
// Board
// ============================================================================

// CreateBoard creates the user's single board
func (s *Store) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	title, err := models.NormalizeBoardTitle(title)
	if err != nil {
		return nil, s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextProvisional()
	err = s.mutate(func(b *models.Board) error {
		if b != nil {
			return models.ErrBoardExists
		}
		s.board = &models.Board{ID: types.BoardID(id), Title: title}
		return nil
	})
	if err != nil {
		return nil, s.reject(err)
	}

	created, err := s.backend.CreateBoard(ctx, title)
	if err != nil {
		return nil, s.rollback("create board", func(*models.Board) { s.board = nil }, err)
	}

	created.Sort()
	s.state.Lock()
	s.board = created
	s.loaded = true
	s.err = nil
	s.state.Unlock()
	return created.Clone(), nil
}

// UpdateBoard renames the board
func (s *Store) UpdateBoard(ctx context.Context, title string) error {
	title, err := models.NormalizeBoardTitle(title)
	if err != nil {
		return s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var previous string
	err = s.requireBoard(func(b *models.Board) error {
		previous = b.Title
		b.Title = title
		return nil
	})
	if err != nil {
		return s.reject(err)
	}
	if previous == title {
		return nil
	}

	if _, err := s.backend.UpdateBoard(ctx, title); err != nil {
		return s.rollback("rename board", func(b *models.Board) {
			if b != nil {
				b.Title = previous
			}
		}, err)
	}
	s.succeed()
	return nil
}

// ============================================================================
// Columns
// ============================================================================

// CreateColumn appends a column to the board
func (s *Store) CreateColumn(ctx context.Context, title string) (*models.Column, error) {
	title, err := models.NormalizeColumnTitle(title)
	if err != nil {
		return nil, s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	provisional := types.ColumnID(s.nextProvisional())
	var res reorder.Result
	err = s.requireBoard(func(b *models.Board) error {
		res = reorder.AppendColumn(b, &models.Column{ID: provisional, Title: title, Tasks: []*models.Task{}})
		return nil
	})
	if err != nil {
		return nil, s.reject(err)
	}

	created, err := s.backend.CreateColumn(ctx, title)
	if err != nil {
		return nil, s.rollback("create column", res.Revert, err)
	}

	var out *models.Column
	_ = s.mutate(func(b *models.Board) error {
		col, _ := b.Column(provisional)
		if col == nil {
			return nil
		}
		if col.Order != created.Order {
			s.logger.Warn("server placed column differently", "column_id", created.ID, "local", col.Order, "server", created.Order)
		}
		col.ID = created.ID
		col.Title = created.Title
		out = col.Clone()
		return nil
	})
	s.succeed()
	return out, nil
}

// UpdateColumn renames a column. Renaming to the current title is a no-op.
func (s *Store) UpdateColumn(ctx context.Context, id types.ColumnID, title string) error {
	title, err := models.NormalizeColumnTitle(title)
	if err != nil {
		return s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var previous string
	err = s.requireBoard(func(b *models.Board) error {
		col, _ := b.Column(id)
		if col == nil {
			return models.ErrColumnNotFound
		}
		previous = col.Title
		col.Title = title
		return nil
	})
	if err != nil {
		return s.reject(err)
	}
	if previous == title {
		return nil
	}

	if _, err := s.backend.UpdateColumn(ctx, id, title); err != nil {
		return s.rollback("rename column", func(b *models.Board) {
			if col, _ := b.Column(id); col != nil {
				col.Title = previous
			}
		}, err)
	}
	s.succeed()
	return nil
}

// DeleteColumn removes a column with all its tasks and renumbers the survivors
func (s *Store) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res reorder.Result
	err := s.requireBoard(func(b *models.Board) error {
		var err error
		res, _, err = reorder.RemoveColumn(b, id)
		if errors.Is(err, reorder.ErrStale) {
			return models.ErrColumnNotFound
		}
		return err
	})
	if err != nil {
		return s.reject(err)
	}

	if err := s.backend.DeleteColumn(ctx, id); err != nil {
		return s.rollback("delete column", res.Revert, err)
	}
	s.succeed()
	return nil
}

// MoveColumn moves a column to destIndex. Moving onto its own index does nothing.
func (s *Store) MoveColumn(ctx context.Context, id types.ColumnID, destIndex int) error {
	if destIndex < 0 {
		return s.reject(models.ErrInvalidPosition)
	}
	return s.applyMove(ctx, "move column", func(b *models.Board) (reorder.Result, error) {
		res, err := reorder.MoveColumn(b, reorder.ColumnMove{ColumnID: id, DestIndex: destIndex})
		if errors.Is(err, reorder.ErrStale) {
			return res, models.ErrColumnNotFound
		}
		return res, err
	}, func(ctx context.Context) error {
		return s.backend.MoveColumn(ctx, reorder.ColumnMove{ColumnID: id, DestIndex: destIndex})
	})
}

// ============================================================================
// Tasks
// ============================================================================

// CreateTask appends a task to the given column
func (s *Store) CreateTask(ctx context.Context, columnID types.ColumnID, title, description string) (*models.Task, error) {
	title, err := models.NormalizeTaskTitle(title)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := models.ValidateDescription(description); err != nil {
		return nil, s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	provisional := types.TaskID(s.nextProvisional())
	var res reorder.Result
	err = s.requireBoard(func(b *models.Board) error {
		var err error
		res, err = reorder.AppendTask(b, columnID, &models.Task{ID: provisional, Title: title, Description: description})
		if errors.Is(err, reorder.ErrStale) {
			return models.ErrColumnNotFound
		}
		return err
	})
	if err != nil {
		return nil, s.reject(err)
	}

	created, err := s.backend.CreateTask(ctx, columnID, title, description)
	if err != nil {
		return nil, s.rollback("create task", res.Revert, err)
	}

	var out *models.Task
	_ = s.mutate(func(b *models.Board) error {
		task, _ := b.FindTask(provisional)
		if task == nil {
			return nil
		}
		if task.Order != created.Order {
			s.logger.Warn("server placed task differently", "task_id", created.ID, "local", task.Order, "server", created.Order)
		}
		task.ID = created.ID
		task.CreatedAt = created.CreatedAt
		task.UpdatedAt = created.UpdatedAt
		out = task.Clone()
		return nil
	})
	s.succeed()
	return out, nil
}

// UpdateTask edits a task's title and/or description. Order is never touched.
func (s *Store) UpdateTask(ctx context.Context, id types.TaskID, patch models.TaskPatch) error {
	patch, err := patch.Normalize()
	if err != nil {
		return s.reject(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var previous models.Task
	err = s.requireBoard(func(b *models.Board) error {
		task, _ := b.FindTask(id)
		if task == nil {
			return models.ErrTaskNotFound
		}
		previous = *task
		patch.ApplyTo(task)
		return nil
	})
	if err != nil {
		return s.reject(err)
	}
	if patch.Empty() {
		return nil
	}

	updated, err := s.backend.UpdateTask(ctx, id, patch)
	if err != nil {
		return s.rollback("update task", func(b *models.Board) {
			if task, _ := b.FindTask(id); task != nil {
				task.Title = previous.Title
				task.Description = previous.Description
			}
		}, err)
	}

	_ = s.mutate(func(b *models.Board) error {
		if task, _ := b.FindTask(id); task != nil && updated != nil {
			task.UpdatedAt = updated.UpdatedAt
		}
		return nil
	})
	s.succeed()
	return nil
}

// DeleteTask removes a task and renumbers the rest of its column
func (s *Store) DeleteTask(ctx context.Context, id types.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res reorder.Result
	err := s.requireBoard(func(b *models.Board) error {
		var err error
		res, _, err = reorder.RemoveTask(b, id)
		if errors.Is(err, reorder.ErrStale) {
			return models.ErrTaskNotFound
		}
		return err
	})
	if err != nil {
		return s.reject(err)
	}

	if err := s.backend.DeleteTask(ctx, id); err != nil {
		return s.rollback("delete task", res.Revert, err)
	}
	s.succeed()
	return nil
}

// MoveTask moves a task within or across columns. A move that refers to stale state
// (the task is no longer in the stated source column) or onto the task's current
// position does nothing and makes no backend call.
func (s *Store) MoveTask(ctx context.Context, m reorder.TaskMove) error {
	if m.DestIndex < 0 {
		return s.reject(models.ErrInvalidPosition)
	}
	return s.applyMove(ctx, "move task", func(b *models.Board) (reorder.Result, error) {
		return reorder.MoveTask(b, m)
	}, func(ctx context.Context) error {
		return s.backend.MoveTask(ctx, m)
	})
}

// Apply commits a resolved drag-and-drop move
func (s *Store) Apply(ctx context.Context, m dnd.Move) error {
	switch m.Kind {
	case dnd.KindTask:
		return s.MoveTask(ctx, m.TaskMove())
	case dnd.KindColumn:
		return s.MoveColumn(ctx, types.ColumnID(m.ItemID), m.DestIndex)
	default:
		return s.reject(fmt.Errorf("%w: cannot apply move of kind %s", models.ErrValidation, m.Kind))
	}
}

func (s *Store) applyMove(
	ctx context.Context,
	op string,
	local func(b *models.Board) (reorder.Result, error),
	remote func(ctx context.Context) error,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res reorder.Result
	err := s.requireBoard(func(b *models.Board) error {
		var err error
		res, err = local(b)
		return err
	})
	if errors.Is(err, reorder.ErrStale) {
		s.logger.Debug("ignoring stale move", "op", op, "error", err)
		return nil
	}
	if err != nil {
		return s.reject(err)
	}
	if res.Empty() {
		return nil
	}

	if err := remote(ctx); err != nil {
		return s.rollback(op, res.Revert, err)
	}
	s.succeed()
	return nil
}
