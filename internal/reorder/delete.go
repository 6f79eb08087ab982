package reorder

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/order"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// RemoveColumn deletes a column (and with it every task it holds) from b and
// renumbers the surviving columns. The removed column is returned so callers can
// report the cascade; reverting the result puts it back in its original slot.
func RemoveColumn(b *models.Board, id types.ColumnID) (Result, *models.Column, error) {
	col, idx := b.Column(id)
	if col == nil {
		return Result{}, nil, fmt.Errorf("%w: column %d not on board", ErrStale, id)
	}

	before := snapshotColumns(b)
	cols, removed, err := order.RemoveAt(b.Columns, idx)
	if err != nil {
		return Result{}, nil, err
	}
	b.Columns = cols

	return Result{
		ColumnWrites: diffColumns(before, b),
		inverse: func(b *models.Board) {
			b.Columns = order.InsertAt(b.Columns, removed, idx)
		},
	}, removed, nil
}

// RemoveTask deletes a task from its column and renumbers the tasks after it
func RemoveTask(b *models.Board, id types.TaskID) (Result, *models.Task, error) {
	task, col := b.FindTask(id)
	if task == nil {
		return Result{}, nil, fmt.Errorf("%w: task %d not on board", ErrStale, id)
	}
	_, idx := col.Task(id)

	before := snapshotTasks(col)
	tasks, removed, err := order.RemoveAt(col.Tasks, idx)
	if err != nil {
		return Result{}, nil, err
	}
	col.Tasks = tasks
	columnID := col.ID

	return Result{
		TaskWrites: diffTasks(before, col),
		inverse: func(b *models.Board) {
			if c, _ := b.Column(columnID); c != nil {
				c.Tasks = order.InsertAt(c.Tasks, removed, idx)
			}
		},
	}, removed, nil
}

// AppendColumn adds col at the end of the board. A create touches no existing
// rows, so the result carries only the inverse.
func AppendColumn(b *models.Board, col *models.Column) Result {
	col.BoardID = b.ID
	b.Columns = order.InsertAt(b.Columns, col, len(b.Columns))
	id := col.ID

	return Result{
		inverse: func(b *models.Board) {
			if _, idx := b.Column(id); idx >= 0 {
				b.Columns, _, _ = order.RemoveAt(b.Columns, idx)
			}
		},
	}
}

// AppendTask adds task at the end of the column identified by columnID
func AppendTask(b *models.Board, columnID types.ColumnID, task *models.Task) (Result, error) {
	col, _ := b.Column(columnID)
	if col == nil {
		return Result{}, fmt.Errorf("%w: column %d not on board", ErrStale, columnID)
	}
	task.ColumnID = col.ID
	col.Tasks = order.InsertAt(col.Tasks, task, len(col.Tasks))
	id := task.ID

	return Result{
		inverse: func(b *models.Board) {
			c, _ := b.Column(columnID)
			if c == nil {
				return
			}
			if _, idx := c.Task(id); idx >= 0 {
				c.Tasks, _, _ = order.RemoveAt(c.Tasks, idx)
			}
		},
	}, nil
}
