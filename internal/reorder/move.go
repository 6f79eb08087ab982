package reorder

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/order"
)

// MoveTask relocates a task within or across columns of b.
//
// Within one column the destination index is clamped to the last slot and the
// column is renumbered in a single pass; moving a task onto its own index is a
// no-op with zero writes. Across columns the task is removed from the source
// (closing the gap) and inserted into the destination (opening a slot), and its
// column reference is reassigned.
func MoveTask(b *models.Board, m TaskMove) (Result, error) {
	src, _ := b.Column(m.SourceColumnID)
	if src == nil {
		return Result{}, fmt.Errorf("%w: column %d not on board", ErrStale, m.SourceColumnID)
	}
	task, from := src.Task(m.TaskID)
	if task == nil {
		return Result{}, fmt.Errorf("%w: task %d not in column %d", ErrStale, m.TaskID, m.SourceColumnID)
	}
	dst, _ := b.Column(m.DestColumnID)
	if dst == nil {
		return Result{}, fmt.Errorf("%w: column %d not on board", ErrStale, m.DestColumnID)
	}

	before := snapshotTasks(src, dst)

	if src == dst {
		to := order.Clamp(m.DestIndex, len(src.Tasks)-1)
		if to == from {
			return Result{}, nil
		}
		tasks, err := order.Move(src.Tasks, from, to)
		if err != nil {
			return Result{}, err
		}
		src.Tasks = tasks

		inverse := TaskMove{TaskID: task.ID, SourceColumnID: src.ID, DestColumnID: src.ID, DestIndex: from}
		return Result{
			TaskWrites: diffTasks(before, src),
			inverse:    revertTaskMove(inverse),
		}, nil
	}

	tasks, _, err := order.RemoveAt(src.Tasks, from)
	if err != nil {
		return Result{}, err
	}
	src.Tasks = tasks
	task.ColumnID = dst.ID
	dst.Tasks = order.InsertAt(dst.Tasks, task, m.DestIndex)

	inverse := TaskMove{TaskID: task.ID, SourceColumnID: dst.ID, DestColumnID: src.ID, DestIndex: from}
	return Result{
		TaskWrites: diffTasks(before, src, dst),
		inverse:    revertTaskMove(inverse),
	}, nil
}

func revertTaskMove(m TaskMove) func(*models.Board) {
	return func(b *models.Board) {
		_, _ = MoveTask(b, m)
	}
}

// MoveColumn relocates a column within the board. The destination index is clamped
// to the last slot; moving a column onto its own index is a no-op with zero writes.
func MoveColumn(b *models.Board, m ColumnMove) (Result, error) {
	col, from := b.Column(m.ColumnID)
	if col == nil {
		return Result{}, fmt.Errorf("%w: column %d not on board", ErrStale, m.ColumnID)
	}

	to := order.Clamp(m.DestIndex, len(b.Columns)-1)
	if to == from {
		return Result{}, nil
	}

	before := snapshotColumns(b)
	cols, err := order.Move(b.Columns, from, to)
	if err != nil {
		return Result{}, err
	}
	b.Columns = cols

	inverse := ColumnMove{ColumnID: col.ID, DestIndex: from}
	return Result{
		ColumnWrites: diffColumns(before, b),
		inverse: func(b *models.Board) {
			_, _ = MoveColumn(b, inverse)
		},
	}, nil
}
