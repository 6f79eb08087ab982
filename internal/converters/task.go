// Package converters provides type-safe conversion between
// database rows and domain models.
//
// All conversions handle:
// - Type coercions (int64 from database to typed IDs in domain)
// - Positions becoming Order fields
// - Assembling a board tree from flat column and task rows
//
// Example usage:
//
//	// Converting a single task
//	task := converters.TaskToModel(dbTask)
//
//	// Building a full board
//	board := converters.AssembleBoard(dbBoard, dbColumns, dbTasks)
package converters

import (
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// TaskToModel converts a database.Task row to models.Task
func TaskToModel(t database.Task) *models.Task {
	return &models.Task{
		ID:          types.TaskID(t.ID),
		ColumnID:    types.ColumnID(t.ColumnID),
		Title:       t.Title,
		Description: t.Description,
		Order:       int(t.Position),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TasksToModels converts a slice of task rows, preserving order
func TasksToModels(rows []database.Task) []*models.Task {
	result := make([]*models.Task, len(rows))
	for i, r := range rows {
		result[i] = TaskToModel(r)
	}
	return result
}
