package models

import (
	"time"

	"github.com/thenoetrevino/dragboard/internal/types"
)

// Task represents a single card on the board.
// Order is the 0-based position within ColumnID.
type Task struct {
	ID          types.TaskID   `json:"id"`
	ColumnID    types.ColumnID `json:"columnId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Order       int            `json:"order"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// GetOrder returns the task's position within its column
func (t *Task) GetOrder() int { return t.Order }

// SetOrder assigns the task's position within its column
func (t *Task) SetOrder(order int) { t.Order = order }

// Clone returns a copy of the task
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// TaskPatch is a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Normalize validates the patch and returns a copy with the title trimmed
func (p TaskPatch) Normalize() (TaskPatch, error) {
	if p.Title != nil {
		title, err := NormalizeTaskTitle(*p.Title)
		if err != nil {
			return p, err
		}
		p.Title = &title
	}
	if p.Description != nil {
		if err := ValidateDescription(*p.Description); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Empty reports whether the patch changes nothing
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil
}

// ApplyTo copies the patched fields onto t
func (p TaskPatch) ApplyTo(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}
