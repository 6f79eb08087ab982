package database

import "context"

const taskColumns = `id, column_id, title, description, position, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }) (Task, error) {
	var t Task
	err := row.Scan(&t.ID, &t.ColumnID, &t.Title, &t.Description, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

type CreateTaskParams struct {
	ColumnID    int64
	Title       string
	Description string
	Position    int64
}

func (q *Queries) CreateTask(ctx context.Context, arg CreateTaskParams) (Task, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO tasks (column_id, title, description, position) VALUES (?, ?, ?, ?)`,
		arg.ColumnID, arg.Title, arg.Description, arg.Position)
	if err != nil {
		return Task{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Task{}, err
	}
	return q.GetTaskByID(ctx, id)
}

func (q *Queries) GetTaskByID(ctx context.Context, id int64) (Task, error) {
	return scanTask(q.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
}

// GetTasksByColumn returns the column's tasks sorted by position
func (q *Queries) GetTasksByColumn(ctx context.Context, columnID int64) ([]Task, error) {
	return q.listTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE column_id = ? ORDER BY position, id`, columnID)
}

// GetTasksByBoard returns every task on the board sorted by column then position
func (q *Queries) GetTasksByBoard(ctx context.Context, boardID int64) ([]Task, error) {
	return q.listTasks(ctx,
		`SELECT t.id, t.column_id, t.title, t.description, t.position, t.created_at, t.updated_at
		FROM tasks t
		JOIN columns c ON c.id = t.column_id
		WHERE c.board_id = ?
		ORDER BY c.position, c.id, t.position, t.id`, boardID)
}

func (q *Queries) listTasks(ctx context.Context, query string, args ...interface{}) ([]Task, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (q *Queries) CountTasksByColumn(ctx context.Context, columnID int64) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE column_id = ?`, columnID).Scan(&count)
	return count, err
}

type UpdateTaskParams struct {
	ID          int64
	Title       string
	Description string
}

func (q *Queries) UpdateTask(ctx context.Context, arg UpdateTaskParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		arg.Title, arg.Description, arg.ID)
	return err
}

type SetTaskPositionParams struct {
	ID       int64
	ColumnID int64
	Position int64
}

// SetTaskPosition is the idempotent "put task in column at position" write used by
// every reorder
func (q *Queries) SetTaskPosition(ctx context.Context, arg SetTaskPositionParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE tasks SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		arg.ColumnID, arg.Position, arg.ID)
	return err
}

func (q *Queries) DeleteTask(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func (q *Queries) DeleteTasksByColumn(ctx context.Context, columnID int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM tasks WHERE column_id = ?`, columnID)
	return err
}
