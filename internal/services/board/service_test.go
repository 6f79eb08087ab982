package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/testutil"
)

func TestCreateBoard(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestDB(t)
	svc := NewService(repo, nil, nil)
	ctx, p := testutil.CreateTestUser(t, repo, "alice")

	_, err := svc.GetBoard(ctx)
	assert.ErrorIs(t, err, ErrBoardNotFound)

	b, err := svc.CreateBoard(ctx, " Work ")
	require.NoError(t, err)
	assert.Equal(t, "Work", b.Title)
	assert.Equal(t, p.UserID, b.UserID)
	require.Len(t, b.Columns, len(models.DefaultColumnTitles))
	for i, col := range b.Columns {
		assert.Equal(t, models.DefaultColumnTitles[i], col.Title)
		assert.Equal(t, i, col.Order)
	}

	_, err = svc.CreateBoard(ctx, "Second")
	assert.ErrorIs(t, err, ErrBoardExists)
	assert.ErrorIs(t, err, models.ErrConflict)

	got, err := svc.GetBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.NoError(t, got.Validate())
}

func TestCreateBoardCustomColumns(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestDB(t)
	svc := NewService(repo, nil, []string{})
	ctx, _ := testutil.CreateTestUser(t, repo, "alice")

	b, err := svc.CreateBoard(ctx, "Empty")
	require.NoError(t, err)
	assert.Empty(t, b.Columns)
}

func TestCreateBoardValidation(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestDB(t)
	svc := NewService(repo, nil, nil)
	ctx, _ := testutil.CreateTestUser(t, repo, "alice")

	_, err := svc.CreateBoard(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.CreateBoard(context.Background(), "Work")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = svc.GetBoard(ctx)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestBoardsAreScopedPerUser(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestDB(t)
	svc := NewService(repo, nil, nil)
	aliceCtx, _ := testutil.CreateTestUser(t, repo, "alice")
	bobCtx, _ := testutil.CreateTestUser(t, repo, "bob")

	a, err := svc.CreateBoard(aliceCtx, "Alice")
	require.NoError(t, err)
	b, err := svc.CreateBoard(bobCtx, "Bob")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	updated, err := svc.UpdateBoard(bobCtx, "Bob's")
	require.NoError(t, err)
	assert.Equal(t, "Bob's", updated.Title)

	got, err := svc.GetBoard(aliceCtx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Title)
}

func TestGetBoardRepairsPositions(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestDB(t)
	svc := NewService(repo, nil, nil)
	ctx, p := testutil.CreateTestUser(t, repo, "alice")
	_, cols := testutil.CreateTestBoard(t, repo, p, "A", "B")
	ids := testutil.CreateTestTasks(t, repo, cols[0], "a", "b")

	// Leave a gap as an interrupted external write would.
	_, err := repo.DB().Exec("UPDATE tasks SET position = 7 WHERE id = ?", int64(ids[1]))
	require.NoError(t, err)

	b, err := svc.GetBoard(ctx)
	require.NoError(t, err)
	assert.NoError(t, b.Validate())
	assert.Equal(t, 1, b.Columns[0].Tasks[1].Order)

	stored, err := repo.GetTaskByID(context.Background(), int64(ids[1]))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Position)
}
