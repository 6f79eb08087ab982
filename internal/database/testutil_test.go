package database

import (
	"context"
	"testing"
)

// setupTestDB creates an in-memory database with the full schema
func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return NewRepository(db)
}

// seedBoard creates a user with a board holding the given column titles
func seedBoard(t *testing.T, repo *Repository, columns ...string) (User, Board, []Column) {
	t.Helper()
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, CreateUserParams{Name: "alice"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	board, err := repo.CreateBoard(ctx, CreateBoardParams{UserID: user.ID, Title: "Work"})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	var cols []Column
	for i, title := range columns {
		col, err := repo.CreateColumn(ctx, CreateColumnParams{BoardID: board.ID, Title: title, Position: int64(i)})
		if err != nil {
			t.Fatalf("Failed to create column %q: %v", title, err)
		}
		cols = append(cols, col)
	}
	return user, board, cols
}
