// Package backend provides the store.Backend implementations: an in-process
// backend that calls the services directly against the local database, and an
// HTTP client for a remote `dragboard serve`.
package backend

import (
	"context"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/services/board"
	"github.com/thenoetrevino/dragboard/internal/services/column"
	"github.com/thenoetrevino/dragboard/internal/services/task"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/types"
)

var (
	_ store.Backend = (*Local)(nil)
	_ store.Backend = (*Client)(nil)
)

// Local runs every call through the services as a fixed principal
type Local struct {
	principal auth.Principal
	boards    board.Service
	columns   column.Service
	tasks     task.Service
}

// NewLocal creates a backend acting as principal
func NewLocal(principal auth.Principal, boards board.Service, columns column.Service, tasks task.Service) *Local {
	return &Local{principal: principal, boards: boards, columns: columns, tasks: tasks}
}

func (l *Local) ctx(ctx context.Context) context.Context {
	return auth.WithPrincipal(ctx, l.principal)
}

func (l *Local) LoadBoard(ctx context.Context) (*models.Board, error) {
	return l.boards.GetBoard(l.ctx(ctx))
}

func (l *Local) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	return l.boards.CreateBoard(l.ctx(ctx), title)
}

func (l *Local) UpdateBoard(ctx context.Context, title string) (*models.Board, error) {
	return l.boards.UpdateBoard(l.ctx(ctx), title)
}

func (l *Local) CreateColumn(ctx context.Context, title string) (*models.Column, error) {
	return l.columns.CreateColumn(l.ctx(ctx), title)
}

func (l *Local) UpdateColumn(ctx context.Context, id types.ColumnID, title string) (*models.Column, error) {
	return l.columns.UpdateColumn(l.ctx(ctx), id, title)
}

func (l *Local) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return l.columns.DeleteColumn(l.ctx(ctx), id)
}

func (l *Local) MoveColumn(ctx context.Context, m reorder.ColumnMove) error {
	return l.columns.MoveColumn(l.ctx(ctx), m)
}

func (l *Local) CreateTask(ctx context.Context, columnID types.ColumnID, title, description string) (*models.Task, error) {
	return l.tasks.CreateTask(l.ctx(ctx), task.CreateTaskRequest{
		ColumnID:    columnID,
		Title:       title,
		Description: description,
	})
}

func (l *Local) UpdateTask(ctx context.Context, id types.TaskID, patch models.TaskPatch) (*models.Task, error) {
	return l.tasks.UpdateTask(l.ctx(ctx), id, patch)
}

func (l *Local) DeleteTask(ctx context.Context, id types.TaskID) error {
	return l.tasks.DeleteTask(l.ctx(ctx), id)
}

func (l *Local) MoveTask(ctx context.Context, m reorder.TaskMove) error {
	return l.tasks.MoveTask(l.ctx(ctx), m)
}
