// Package dnd translates drag gestures over a board into resolved moves.
//
// The resolver is pure: it reads a board snapshot and never persists anything.
// A Gesture strings the start, over and end events of one drag together and hands
// the final resolution to a Committer exactly once.
package dnd

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// Kind tags what is being dragged or hovered
type Kind int

const (
	// KindNone marks the empty item (nothing under the pointer)
	KindNone Kind = iota
	KindTask
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindColumn:
		return "column"
	default:
		return "none"
	}
}

// Item identifies a draggable or droppable element. The zero value is empty.
type Item struct {
	Kind Kind
	ID   int
}

// Task returns the item for a task card
func Task(id types.TaskID) Item {
	return Item{Kind: KindTask, ID: int(id)}
}

// Column returns the item for a column (its header or the empty space below its cards)
func Column(id types.ColumnID) Item {
	return Item{Kind: KindColumn, ID: int(id)}
}

// Empty reports whether the item refers to nothing
func (i Item) Empty() bool {
	return i.Kind == KindNone
}

// TaskID returns the ID as a task ID; only meaningful for KindTask
func (i Item) TaskID() types.TaskID {
	return types.TaskID(i.ID)
}

// ColumnID returns the ID as a column ID; only meaningful for KindColumn
func (i Item) ColumnID() types.ColumnID {
	return types.ColumnID(i.ID)
}

func (i Item) String() string {
	if i.Empty() {
		return "none"
	}
	return fmt.Sprintf("%s:%d", i.Kind, i.ID)
}
