package converters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/types"
)

func TestTaskToModel(t *testing.T) {
	t.Parallel()
	now := time.Now()

	got := TaskToModel(database.Task{
		ID:          123,
		ColumnID:    5,
		Title:       "Fix login bug",
		Description: "Users cannot log in",
		Position:    2,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	assert.Equal(t, &models.Task{
		ID:          123,
		ColumnID:    5,
		Title:       "Fix login bug",
		Description: "Users cannot log in",
		Order:       2,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, got)
}

func TestColumnToModel(t *testing.T) {
	t.Parallel()

	got := ColumnToModel(database.Column{ID: 1, BoardID: 9, Title: "Todo", Position: 3})
	assert.Equal(t, types.ColumnID(1), got.ID)
	assert.Equal(t, types.BoardID(9), got.BoardID)
	assert.Equal(t, 3, got.Order)
	assert.NotNil(t, got.Tasks)
	assert.Empty(t, got.Tasks)
}

func TestAssembleBoard(t *testing.T) {
	t.Parallel()

	board, orphans := AssembleBoard(
		database.Board{ID: 1, UserID: 7, Title: "Work"},
		[]database.Column{
			{ID: 11, BoardID: 1, Title: "Done", Position: 1},
			{ID: 10, BoardID: 1, Title: "Todo", Position: 0},
		},
		[]database.Task{
			{ID: 101, ColumnID: 10, Title: "b", Position: 1},
			{ID: 100, ColumnID: 10, Title: "a", Position: 0},
			{ID: 102, ColumnID: 11, Title: "c", Position: 0},
			{ID: 999, ColumnID: 42, Title: "orphan", Position: 0},
		},
	)

	assert.Equal(t, types.UserID(7), board.UserID)
	require.Len(t, board.Columns, 2)
	assert.Equal(t, "Todo", board.Columns[0].Title)
	require.Len(t, board.Columns[0].Tasks, 2)
	assert.Equal(t, types.TaskID(100), board.Columns[0].Tasks[0].ID)
	assert.Equal(t, 3, board.TaskCount())
	assert.Equal(t, []types.TaskID{999}, orphans)
	assert.NoError(t, board.Validate())
}

func TestUserToModel(t *testing.T) {
	t.Parallel()

	u := UserToModel(database.User{ID: 3, Name: "alice"})
	assert.Equal(t, types.UserID(3), u.ID)
	assert.Equal(t, "alice", u.Name)
}
