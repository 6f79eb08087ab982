package database

import "context"

const columnColumns = `id, board_id, title, position`

func scanColumn(row interface{ Scan(...interface{}) error }) (Column, error) {
	var c Column
	err := row.Scan(&c.ID, &c.BoardID, &c.Title, &c.Position)
	return c, err
}

type CreateColumnParams struct {
	BoardID  int64
	Title    string
	Position int64
}

func (q *Queries) CreateColumn(ctx context.Context, arg CreateColumnParams) (Column, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO columns (board_id, title, position) VALUES (?, ?, ?)`,
		arg.BoardID, arg.Title, arg.Position)
	if err != nil {
		return Column{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Column{}, err
	}
	return q.GetColumnByID(ctx, id)
}

func (q *Queries) GetColumnByID(ctx context.Context, id int64) (Column, error) {
	return scanColumn(q.db.QueryRowContext(ctx,
		`SELECT `+columnColumns+` FROM columns WHERE id = ?`, id))
}

// GetColumnsByBoard returns the board's columns sorted by position. Ties (which
// only a damaged database can contain) fall back to creation order.
func (q *Queries) GetColumnsByBoard(ctx context.Context, boardID int64) ([]Column, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+columnColumns+` FROM columns WHERE board_id = ? ORDER BY position, id`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Column
	for rows.Next() {
		c, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (q *Queries) CountColumnsByBoard(ctx context.Context, boardID int64) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM columns WHERE board_id = ?`, boardID).Scan(&count)
	return count, err
}

type UpdateColumnTitleParams struct {
	ID    int64
	Title string
}

func (q *Queries) UpdateColumnTitle(ctx context.Context, arg UpdateColumnTitleParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE columns SET title = ? WHERE id = ?`, arg.Title, arg.ID)
	return err
}

type SetColumnPositionParams struct {
	ID       int64
	Position int64
}

func (q *Queries) SetColumnPosition(ctx context.Context, arg SetColumnPositionParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE columns SET position = ? WHERE id = ?`, arg.Position, arg.ID)
	return err
}

func (q *Queries) DeleteColumn(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, id)
	return err
}
