package store

import (
	"context"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Backend is the authoritative side of the board: every optimistic change made by
// the Store is confirmed or rejected by one Backend call. Implementations act on
// behalf of a single signed-in user.
type Backend interface {
	// LoadBoard returns the user's board with columns and tasks sorted by order,
	// or an error wrapping models.ErrBoardNotFound when the user has none yet.
	LoadBoard(ctx context.Context) (*models.Board, error)
	CreateBoard(ctx context.Context, title string) (*models.Board, error)
	UpdateBoard(ctx context.Context, title string) (*models.Board, error)

	CreateColumn(ctx context.Context, title string) (*models.Column, error)
	UpdateColumn(ctx context.Context, id types.ColumnID, title string) (*models.Column, error)
	DeleteColumn(ctx context.Context, id types.ColumnID) error
	MoveColumn(ctx context.Context, m reorder.ColumnMove) error

	CreateTask(ctx context.Context, columnID types.ColumnID, title, description string) (*models.Task, error)
	UpdateTask(ctx context.Context, id types.TaskID, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id types.TaskID) error
	MoveTask(ctx context.Context, m reorder.TaskMove) error
}
