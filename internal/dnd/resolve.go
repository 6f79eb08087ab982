package dnd

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/order"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Move is a resolved drop: what moves, from which container, to which container and
// index. For column moves SourceID and DestID are both the column itself.
type Move struct {
	Kind      Kind
	ItemID    int
	SourceID  types.ColumnID
	DestID    types.ColumnID
	DestIndex int
}

// TaskMove converts a task move into its reorder form
func (m Move) TaskMove() reorder.TaskMove {
	return reorder.TaskMove{
		TaskID:         types.TaskID(m.ItemID),
		SourceColumnID: m.SourceID,
		DestColumnID:   m.DestID,
		DestIndex:      m.DestIndex,
	}
}

// ColumnMove converts a column move into its reorder form
func (m Move) ColumnMove() reorder.ColumnMove {
	return reorder.ColumnMove{
		ColumnID:  types.ColumnID(m.ItemID),
		DestIndex: m.DestIndex,
	}
}

// Apply runs the move against b through the reorder transaction
func (m Move) Apply(b *models.Board) (reorder.Result, error) {
	switch m.Kind {
	case KindTask:
		return reorder.MoveTask(b, m.TaskMove())
	case KindColumn:
		return reorder.MoveColumn(b, m.ColumnMove())
	default:
		return reorder.Result{}, fmt.Errorf("cannot apply move of kind %s", m.Kind)
	}
}

func (m Move) String() string {
	if m.Kind == KindColumn {
		return fmt.Sprintf("column %d -> index %d", m.ItemID, m.DestIndex)
	}
	return fmt.Sprintf("task %d: column %d -> column %d index %d", m.ItemID, m.SourceID, m.DestID, m.DestIndex)
}

// Resolve computes where active would land if dropped on over. The second return
// value is false when the drop is a no-op: nothing under the pointer, dropping on
// itself, an unsupported pairing, identifiers missing from the snapshot, or a
// destination equal to the current position.
func Resolve(b *models.Board, active, over Item) (Move, bool) {
	if over.Empty() || active.Empty() || over == active {
		return Move{}, false
	}

	switch active.Kind {
	case KindColumn:
		return resolveColumn(b, active, over)
	case KindTask:
		return resolveTask(b, active, over)
	default:
		return Move{}, false
	}
}

func resolveColumn(b *models.Board, active, over Item) (Move, bool) {
	// columns only reorder among themselves
	if over.Kind != KindColumn {
		return Move{}, false
	}
	col, from := b.Column(active.ColumnID())
	if col == nil {
		return Move{}, false
	}
	_, to := b.Column(over.ColumnID())
	if to < 0 || to == from {
		return Move{}, false
	}
	return Move{
		Kind:      KindColumn,
		ItemID:    active.ID,
		SourceID:  col.ID,
		DestID:    col.ID,
		DestIndex: to,
	}, true
}

func resolveTask(b *models.Board, active, over Item) (Move, bool) {
	task, src := b.FindTask(active.TaskID())
	if task == nil {
		return Move{}, false
	}

	var (
		dest  *models.Column
		index int
	)
	switch over.Kind {
	case KindColumn:
		dest, _ = b.Column(over.ColumnID())
		if dest == nil {
			return Move{}, false
		}
		index = len(dest.Tasks)
	case KindTask:
		overTask, holder := b.FindTask(over.TaskID())
		if overTask == nil {
			return Move{}, false
		}
		dest, index = holder, overTask.Order
	default:
		return Move{}, false
	}

	if dest.ID == src.ID && order.Clamp(index, len(src.Tasks)-1) == task.Order {
		return Move{}, false
	}
	return Move{
		Kind:      KindTask,
		ItemID:    active.ID,
		SourceID:  src.ID,
		DestID:    dest.ID,
		DestIndex: index,
	}, true
}
