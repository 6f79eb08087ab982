package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return database.NewRepository(db)
}

// CreateTestUser inserts a user and returns a context acting as that user
func CreateTestUser(t *testing.T, repo *database.Repository, name string) (context.Context, auth.Principal) {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), database.CreateUserParams{Name: name})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	p := auth.Principal{UserID: types.UserID(u.ID), Name: u.Name}
	return auth.WithPrincipal(context.Background(), p), p
}

// CreateTestBoard creates a board for p with the given columns in order and returns
// the board ID and column IDs
func CreateTestBoard(t *testing.T, repo *database.Repository, p auth.Principal, columns ...string) (types.BoardID, []types.ColumnID) {
	t.Helper()
	ctx := context.Background()

	b, err := repo.CreateBoard(ctx, database.CreateBoardParams{UserID: int64(p.UserID), Title: "Test Board"})
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}

	ids := make([]types.ColumnID, 0, len(columns))
	for i, title := range columns {
		col, err := repo.CreateColumn(ctx, database.CreateColumnParams{BoardID: b.ID, Title: title, Position: int64(i)})
		if err != nil {
			t.Fatalf("Failed to create test column: %v", err)
		}
		ids = append(ids, types.ColumnID(col.ID))
	}
	return types.BoardID(b.ID), ids
}

// CreateTestTasks appends tasks with the given titles to a column and returns their IDs
func CreateTestTasks(t *testing.T, repo *database.Repository, columnID types.ColumnID, titles ...string) []types.TaskID {
	t.Helper()
	ctx := context.Background()

	count, err := repo.CountTasksByColumn(ctx, int64(columnID))
	if err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}

	ids := make([]types.TaskID, 0, len(titles))
	for i, title := range titles {
		task, err := repo.CreateTask(ctx, database.CreateTaskParams{
			ColumnID: int64(columnID),
			Title:    title,
			Position: count + int64(i),
		})
		if err != nil {
			t.Fatalf("Failed to create test task: %v", err)
		}
		ids = append(ids, types.TaskID(task.ID))
	}
	return ids
}

// TaskPositions returns the stored position of every task in a column
func TaskPositions(t *testing.T, repo *database.Repository, columnID types.ColumnID) map[types.TaskID]int {
	t.Helper()
	tasks, err := repo.GetTasksByColumn(context.Background(), int64(columnID))
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	out := make(map[types.TaskID]int, len(tasks))
	for _, task := range tasks {
		out[types.TaskID(task.ID)] = int(task.Position)
	}
	return out
}
