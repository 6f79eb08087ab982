// Package scope resolves and authorizes the records a board operation touches and
// loads the board tree the reorder engine runs against. Every helper takes the
// transaction-bound queries so lookups and writes share one atomic unit.
//
// Lookups report a missing record before ownership: a missing ID is NotFound, an
// existing record on another user's board is Unauthorized.
package scope

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/converters"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/order"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// OwnBoard returns the principal's board
func OwnBoard(ctx context.Context, q *database.Queries, p auth.Principal) (database.Board, error) {
	board, err := q.GetBoardByUser(ctx, int64(p.UserID))
	if database.IsNoRows(err) {
		return database.Board{}, models.ErrBoardNotFound
	}
	if err != nil {
		return database.Board{}, fmt.Errorf("failed to get board: %w", err)
	}
	return board, nil
}

// Board re-reads board boardID and checks that p owns it
func Board(ctx context.Context, q *database.Queries, p auth.Principal, boardID int64) (database.Board, error) {
	board, err := q.GetBoardByID(ctx, boardID)
	if database.IsNoRows(err) {
		return database.Board{}, models.ErrBoardNotFound
	}
	if err != nil {
		return database.Board{}, fmt.Errorf("failed to get board: %w", err)
	}
	if board.UserID != int64(p.UserID) {
		return database.Board{}, models.ErrNotOwner
	}
	return board, nil
}

// Column returns column id and its board, checking that p owns the board
func Column(ctx context.Context, q *database.Queries, p auth.Principal, id types.ColumnID) (database.Column, database.Board, error) {
	if id <= 0 {
		return database.Column{}, database.Board{}, models.ErrInvalidID
	}
	col, err := q.GetColumnByID(ctx, int64(id))
	if database.IsNoRows(err) {
		return database.Column{}, database.Board{}, models.ErrColumnNotFound
	}
	if err != nil {
		return database.Column{}, database.Board{}, fmt.Errorf("failed to get column: %w", err)
	}
	board, err := Board(ctx, q, p, col.BoardID)
	if err != nil {
		return database.Column{}, database.Board{}, err
	}
	return col, board, nil
}

// Task returns task id with its column and board, checking that p owns the board
func Task(ctx context.Context, q *database.Queries, p auth.Principal, id types.TaskID) (database.Task, database.Board, error) {
	if id <= 0 {
		return database.Task{}, database.Board{}, models.ErrInvalidID
	}
	task, err := q.GetTaskByID(ctx, int64(id))
	if database.IsNoRows(err) {
		return database.Task{}, database.Board{}, models.ErrTaskNotFound
	}
	if err != nil {
		return database.Task{}, database.Board{}, fmt.Errorf("failed to get task: %w", err)
	}
	col, err := q.GetColumnByID(ctx, task.ColumnID)
	if err != nil {
		return database.Task{}, database.Board{}, fmt.Errorf("failed to get column of task %d: %w", id, err)
	}
	board, err := Board(ctx, q, p, col.BoardID)
	if err != nil {
		return database.Task{}, database.Board{}, err
	}
	return task, board, nil
}

// Tree loads the full board. Positions that are not contiguous (left behind by an
// interrupted write outside this service) are renumbered and saved before the tree
// is returned, so the reorder engine always starts from a valid state. Repairs and
// orphaned tasks are reported on logger.
func Tree(ctx context.Context, q *database.Queries, logger *slog.Logger, b database.Board) (*models.Board, error) {
	columns, err := q.GetColumnsByBoard(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	tasks, err := q.GetTasksByBoard(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	tree, orphans := converters.AssembleBoard(b, columns, tasks)
	for _, id := range orphans {
		logger.Warn("task references column outside board", "task_id", id, "board_id", b.ID)
	}

	var repair reorder.Result
	for _, c := range order.Renumber(tree.Columns) {
		repair.ColumnWrites = append(repair.ColumnWrites, reorder.ColumnWrite{ColumnID: c.ID, Order: c.Order})
	}
	for _, col := range tree.Columns {
		for _, t := range order.Renumber(col.Tasks) {
			repair.TaskWrites = append(repair.TaskWrites, reorder.TaskWrite{TaskID: t.ID, ColumnID: t.ColumnID, Order: t.Order})
		}
	}
	if repair.Writes() > 0 {
		logger.Warn("repairing board positions", "board_id", b.ID, "writes", repair.Writes())
		if err := Persist(ctx, q, repair); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// Persist issues one position write per changed row
func Persist(ctx context.Context, q *database.Queries, res reorder.Result) error {
	for _, w := range res.ColumnWrites {
		if err := q.SetColumnPosition(ctx, database.SetColumnPositionParams{
			ID:       int64(w.ColumnID),
			Position: int64(w.Order),
		}); err != nil {
			return fmt.Errorf("failed to set position of column %d: %w", w.ColumnID, err)
		}
	}
	for _, w := range res.TaskWrites {
		if err := q.SetTaskPosition(ctx, database.SetTaskPositionParams{
			ID:       int64(w.TaskID),
			ColumnID: int64(w.ColumnID),
			Position: int64(w.Order),
		}); err != nil {
			return fmt.Errorf("failed to set position of task %d: %w", w.TaskID, err)
		}
	}
	return nil
}
