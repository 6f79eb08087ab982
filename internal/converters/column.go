package converters

import (
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// ColumnToModel converts a database.Column row to models.Column with no tasks
func ColumnToModel(c database.Column) *models.Column {
	return &models.Column{
		ID:      types.ColumnID(c.ID),
		BoardID: types.BoardID(c.BoardID),
		Title:   c.Title,
		Order:   int(c.Position),
		Tasks:   []*models.Task{},
	}
}

// ColumnsToModels converts a slice of column rows, preserving order
func ColumnsToModels(rows []database.Column) []*models.Column {
	result := make([]*models.Column, len(rows))
	for i, r := range rows {
		result[i] = ColumnToModel(r)
	}
	return result
}
