package database

import (
	"context"
	"database/sql"
)

const userColumns = `id, name, token_hash, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.TokenHash, &u.CreatedAt)
	return u, err
}

type CreateUserParams struct {
	Name      string
	TokenHash sql.NullString
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO users (name, token_hash) VALUES (?, ?)`,
		arg.Name, arg.TokenHash)
	if err != nil {
		return User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return User{}, err
	}
	return q.GetUserByID(ctx, id)
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (q *Queries) GetUserByName(ctx context.Context, name string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE name = ?`, name))
}

func (q *Queries) GetUserByTokenHash(ctx context.Context, tokenHash string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE token_hash = ?`, tokenHash))
}

type SetUserTokenHashParams struct {
	ID        int64
	TokenHash sql.NullString
}

func (q *Queries) SetUserTokenHash(ctx context.Context, arg SetUserTokenHashParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET token_hash = ? WHERE id = ?`,
		arg.TokenHash, arg.ID)
	return err
}
