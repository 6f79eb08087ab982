package models

import "github.com/thenoetrevino/dragboard/internal/types"

// Column represents a kanban board column (e.g., "Todo", "In Progress", "Done").
// Order is the 0-based position among the board's columns; Tasks is derived from the
// tasks that reference this column and is kept sorted by task order.
type Column struct {
	ID      types.ColumnID `json:"id"`
	BoardID types.BoardID  `json:"boardId"`
	Title   string         `json:"title"`
	Order   int            `json:"order"`
	Tasks   []*Task        `json:"tasks"`
}

// GetOrder returns the column's position on its board
func (c *Column) GetOrder() int { return c.Order }

// SetOrder assigns the column's position on its board
func (c *Column) SetOrder(order int) { c.Order = order }

// Task returns the task with the given ID and its index within the column
func (c *Column) Task(id types.TaskID) (*Task, int) {
	for i, t := range c.Tasks {
		if t.ID == id {
			return t, i
		}
	}
	return nil, -1
}

// Clone returns a deep copy of the column and its tasks
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Tasks = make([]*Task, len(c.Tasks))
	for i, t := range c.Tasks {
		cp.Tasks[i] = t.Clone()
	}
	return &cp
}
