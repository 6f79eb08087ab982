package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	user, err := repo.CreateUser(ctx, CreateUserParams{Name: "alice", TokenHash: NullString("abc123")})
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byToken, err := repo.GetUserByTokenHash(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byToken.ID)

	_, err = repo.CreateUser(ctx, CreateUserParams{Name: "alice"})
	assert.Error(t, err, "names are unique")

	_, err = repo.GetUserByName(ctx, "bob")
	assert.True(t, IsNoRows(err))

	require.NoError(t, repo.SetUserTokenHash(ctx, SetUserTokenHashParams{ID: user.ID, TokenHash: NullString("def456")}))
	_, err = repo.GetUserByTokenHash(ctx, "abc123")
	assert.True(t, IsNoRows(err))
}

func TestOneBoardPerUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	user, board, _ := seedBoard(t, repo)

	_, err := repo.CreateBoard(ctx, CreateBoardParams{UserID: user.ID, Title: "Second"})
	assert.Error(t, err)

	got, err := repo.GetBoardByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)

	require.NoError(t, repo.UpdateBoardTitle(ctx, UpdateBoardTitleParams{ID: board.ID, Title: "Home"}))
	got, err = repo.GetBoardByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", got.Title)
}

func TestColumnsOrderedByPosition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	_, board, cols := seedBoard(t, repo, "Todo", "Doing", "Done")

	// swap the first and last positions
	require.NoError(t, repo.SetColumnPosition(ctx, SetColumnPositionParams{ID: cols[0].ID, Position: 2}))
	require.NoError(t, repo.SetColumnPosition(ctx, SetColumnPositionParams{ID: cols[2].ID, Position: 0}))

	got, err := repo.GetColumnsByBoard(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Done", "Doing", "Todo"}, []string{got[0].Title, got[1].Title, got[2].Title})

	count, err := repo.CountColumnsByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestTasks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	_, board, cols := seedBoard(t, repo, "Todo", "Done")

	first, err := repo.CreateTask(ctx, CreateTaskParams{ColumnID: cols[0].ID, Title: "a", Position: 0})
	require.NoError(t, err)
	second, err := repo.CreateTask(ctx, CreateTaskParams{ColumnID: cols[0].ID, Title: "b", Description: "notes", Position: 1})
	require.NoError(t, err)
	assert.Equal(t, "notes", second.Description)
	assert.Equal(t, "", first.Description)

	require.NoError(t, repo.SetTaskPosition(ctx, SetTaskPositionParams{ID: first.ID, ColumnID: cols[1].ID, Position: 0}))
	require.NoError(t, repo.SetTaskPosition(ctx, SetTaskPositionParams{ID: second.ID, ColumnID: cols[0].ID, Position: 0}))

	todo, err := repo.GetTasksByColumn(ctx, cols[0].ID)
	require.NoError(t, err)
	require.Len(t, todo, 1)
	assert.Equal(t, second.ID, todo[0].ID)

	all, err := repo.GetTasksByBoard(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "tasks come back in column order")
	assert.Equal(t, first.ID, all[1].ID)

	require.NoError(t, repo.UpdateTask(ctx, UpdateTaskParams{ID: first.ID, Title: "a2", Description: "d"}))
	got, err := repo.GetTaskByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Title)
	assert.Equal(t, cols[1].ID, got.ColumnID)

	count, err := repo.CountTasksByColumn(ctx, cols[1].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCascadeDeletes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	user, board, cols := seedBoard(t, repo, "Todo")
	task, err := repo.CreateTask(ctx, CreateTaskParams{ColumnID: cols[0].ID, Title: "a", Position: 0})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteColumn(ctx, cols[0].ID))
	_, err = repo.GetTaskByID(ctx, task.ID)
	assert.True(t, IsNoRows(err), "tasks go with their column")

	_, err = repo.DB().ExecContext(ctx, `DELETE FROM users WHERE id = ?`, user.ID)
	require.NoError(t, err)
	_, err = repo.GetBoardByID(ctx, board.ID)
	assert.True(t, IsNoRows(err), "boards go with their user")
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestDB(t)

	_, board, _ := seedBoard(t, repo)
	boom := errors.New("boom")

	err := repo.WithTx(ctx, func(q *Queries) error {
		if _, err := q.CreateColumn(ctx, CreateColumnParams{BoardID: board.ID, Title: "Todo"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := repo.CountColumnsByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = repo.WithTx(ctx, func(q *Queries) error {
		_, err := q.CreateColumn(ctx, CreateColumnParams{BoardID: board.ID, Title: "Todo"})
		return err
	})
	require.NoError(t, err)
	count, err = repo.CountColumnsByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	repo := NewRepository(db)
	_, board, _ := seedBoard(t, repo, "Todo", "Done")
	require.NoError(t, repo.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	repo = NewRepository(db)
	defer repo.Close()

	cols, err := repo.GetColumnsByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, cols, 2)
}
