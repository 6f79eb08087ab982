package database

import "context"

const boardColumns = `id, user_id, title, created_at, updated_at`

func scanBoard(row interface{ Scan(...interface{}) error }) (Board, error) {
	var b Board
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

type CreateBoardParams struct {
	UserID int64
	Title  string
}

func (q *Queries) CreateBoard(ctx context.Context, arg CreateBoardParams) (Board, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO boards (user_id, title) VALUES (?, ?)`,
		arg.UserID, arg.Title)
	if err != nil {
		return Board{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Board{}, err
	}
	return q.GetBoardByID(ctx, id)
}

func (q *Queries) GetBoardByID(ctx context.Context, id int64) (Board, error) {
	return scanBoard(q.db.QueryRowContext(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE id = ?`, id))
}

func (q *Queries) GetBoardByUser(ctx context.Context, userID int64) (Board, error) {
	return scanBoard(q.db.QueryRowContext(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE user_id = ?`, userID))
}

type UpdateBoardTitleParams struct {
	ID    int64
	Title string
}

func (q *Queries) UpdateBoardTitle(ctx context.Context, arg UpdateBoardTitleParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE boards SET title = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		arg.Title, arg.ID)
	return err
}

// TouchBoard bumps updated_at after any change to the board's columns or tasks
func (q *Queries) TouchBoard(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE boards SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}
