package database

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the same queries run inside or
// outside a transaction.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries holds every statement the services issue
type Queries struct {
	db DBTX
}

// New returns queries bound to db
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a copy of q bound to tx
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Row types mirror the tables one to one. Positions stay int64 here and become
// the models' Order fields in the converters package.

type User struct {
	ID        int64
	Name      string
	TokenHash sql.NullString
	CreatedAt time.Time
}

type Board struct {
	ID        int64
	UserID    int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Column struct {
	ID       int64
	BoardID  int64
	Title    string
	Position int64
}

type Task struct {
	ID          int64
	ColumnID    int64
	Title       string
	Description string
	Position    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
