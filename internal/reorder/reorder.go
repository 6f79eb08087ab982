// Package reorder applies resolved moves, creates and deletions to an in-memory
// board using the order primitives, and reports exactly which rows need a
// "set order to N" write. Every mutation returns a Result that can revert itself
// with the inverse order operation.
package reorder

import (
	"errors"
	"sort"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// ErrStale is returned when a move or delete refers to an item that is not where the
// caller believed it was. Callers treat it as a no-op, not a user-facing failure.
var ErrStale = errors.New("stale board state")

// TaskMove is the resolved destination of a dragged task
type TaskMove struct {
	TaskID         types.TaskID   `json:"taskId"`
	SourceColumnID types.ColumnID `json:"sourceColumnId"`
	DestColumnID   types.ColumnID `json:"destColumnId"`
	DestIndex      int            `json:"destIndex"`
}

// CrossColumn reports whether the move changes the task's container
func (m TaskMove) CrossColumn() bool {
	return m.SourceColumnID != m.DestColumnID
}

// ColumnMove is the resolved destination of a dragged column
type ColumnMove struct {
	ColumnID  types.ColumnID `json:"columnId"`
	DestIndex int            `json:"destIndex"`
}

// TaskWrite is one idempotent "put task in column at order" write
type TaskWrite struct {
	TaskID   types.TaskID
	ColumnID types.ColumnID
	Order    int
}

// ColumnWrite is one idempotent "set column order" write
type ColumnWrite struct {
	ColumnID types.ColumnID
	Order    int
}

// Result describes what a mutation changed
type Result struct {
	TaskWrites   []TaskWrite
	ColumnWrites []ColumnWrite

	inverse func(*models.Board)
}

// Empty reports whether the mutation changed nothing
func (r Result) Empty() bool {
	return len(r.TaskWrites) == 0 && len(r.ColumnWrites) == 0 && r.inverse == nil
}

// Writes returns the total number of order writes the mutation requires
func (r Result) Writes() int {
	return len(r.TaskWrites) + len(r.ColumnWrites)
}

// Revert applies the inverse operation to b, restoring the state before the mutation.
// b must be the board the mutation was applied to, with no interleaved mutations.
func (r Result) Revert(b *models.Board) {
	if r.inverse != nil {
		r.inverse(b)
	}
}

type taskSlot struct {
	column types.ColumnID
	order  int
}

func snapshotTasks(cols ...*models.Column) map[types.TaskID]taskSlot {
	slots := make(map[types.TaskID]taskSlot)
	for _, c := range cols {
		for _, t := range c.Tasks {
			slots[t.ID] = taskSlot{column: t.ColumnID, order: t.Order}
		}
	}
	return slots
}

func diffTasks(before map[types.TaskID]taskSlot, cols ...*models.Column) []TaskWrite {
	var writes []TaskWrite
	seen := make(map[types.ColumnID]bool)
	for _, c := range cols {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		for _, t := range c.Tasks {
			prev, ok := before[t.ID]
			if ok && prev.column == t.ColumnID && prev.order == t.Order {
				continue
			}
			writes = append(writes, TaskWrite{TaskID: t.ID, ColumnID: t.ColumnID, Order: t.Order})
		}
	}
	sort.SliceStable(writes, func(i, j int) bool {
		if writes[i].ColumnID != writes[j].ColumnID {
			return writes[i].ColumnID < writes[j].ColumnID
		}
		return writes[i].Order < writes[j].Order
	})
	return writes
}

func snapshotColumns(b *models.Board) map[types.ColumnID]int {
	orders := make(map[types.ColumnID]int, len(b.Columns))
	for _, c := range b.Columns {
		orders[c.ID] = c.Order
	}
	return orders
}

func diffColumns(before map[types.ColumnID]int, b *models.Board) []ColumnWrite {
	var writes []ColumnWrite
	for _, c := range b.Columns {
		if prev, ok := before[c.ID]; ok && prev == c.Order {
			continue
		}
		writes = append(writes, ColumnWrite{ColumnID: c.ID, Order: c.Order})
	}
	return writes
}
