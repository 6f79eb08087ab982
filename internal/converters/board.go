package converters

import (
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// UserToModel converts a database.User row to models.User
func UserToModel(u database.User) *models.User {
	return &models.User{
		ID:        types.UserID(u.ID),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// BoardToModel converts a database.Board row to models.Board with no columns
func BoardToModel(b database.Board) *models.Board {
	return &models.Board{
		ID:      types.BoardID(b.ID),
		UserID:  types.UserID(b.UserID),
		Title:   b.Title,
		Columns: []*models.Column{},
	}
}

// AssembleBoard builds the board tree from flat rows. Tasks are attached to the
// column they reference; tasks pointing at a column not in columns are left out
// and returned as orphans. Columns and tasks end up sorted by order.
func AssembleBoard(b database.Board, columns []database.Column, tasks []database.Task) (*models.Board, []types.TaskID) {
	board := BoardToModel(b)
	board.Columns = ColumnsToModels(columns)

	byID := make(map[types.ColumnID]*models.Column, len(board.Columns))
	for _, c := range board.Columns {
		byID[c.ID] = c
	}
	var orphans []types.TaskID
	for _, row := range tasks {
		task := TaskToModel(row)
		col, ok := byID[task.ColumnID]
		if !ok {
			orphans = append(orphans, task.ID)
			continue
		}
		col.Tasks = append(col.Tasks, task)
	}

	board.Sort()
	return board, orphans
}
