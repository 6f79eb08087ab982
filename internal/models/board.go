package models

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/order"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Board is the single workspace owned by a user.
// Columns is kept sorted by column order, each column's Tasks by task order.
type Board struct {
	ID      types.BoardID `json:"id"`
	UserID  types.UserID  `json:"userId"`
	Title   string        `json:"title"`
	Columns []*Column     `json:"columns"`
}

// Column returns the column with the given ID and its index on the board
func (b *Board) Column(id types.ColumnID) (*Column, int) {
	if b == nil {
		return nil, -1
	}
	for i, c := range b.Columns {
		if c.ID == id {
			return c, i
		}
	}
	return nil, -1
}

// FindTask returns the task with the given ID together with the column holding it
func (b *Board) FindTask(id types.TaskID) (*Task, *Column) {
	if b == nil {
		return nil, nil
	}
	for _, c := range b.Columns {
		if t, _ := c.Task(id); t != nil {
			return t, c
		}
	}
	return nil, nil
}

// TaskCount returns the number of tasks across all columns
func (b *Board) TaskCount() int {
	total := 0
	for _, c := range b.Columns {
		total += len(c.Tasks)
	}
	return total
}

// Clone returns a deep copy so callers can mutate or render without sharing state
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cp := *b
	cp.Columns = make([]*Column, len(b.Columns))
	for i, c := range b.Columns {
		cp.Columns[i] = c.Clone()
	}
	return &cp
}

// Sort puts columns and tasks into order-field order
func (b *Board) Sort() {
	order.Sort(b.Columns)
	for _, c := range b.Columns {
		order.Sort(c.Tasks)
	}
}

// Validate checks that column orders are exactly 0..N-1 and that every column's task
// orders are exactly 0..M-1 with matching column references.
func (b *Board) Validate() error {
	if err := order.Check(b.Columns); err != nil {
		return fmt.Errorf("board %d columns: %w", b.ID, err)
	}
	for _, c := range b.Columns {
		if err := order.Check(c.Tasks); err != nil {
			return fmt.Errorf("column %d tasks: %w", c.ID, err)
		}
		for _, t := range c.Tasks {
			if t.ColumnID != c.ID {
				return fmt.Errorf("task %d references column %d but is held by column %d", t.ID, t.ColumnID, c.ID)
			}
		}
	}
	return nil
}
