package database

import (
	"context"
	"database/sql"
)

// Repository bundles the connection with its queries. Services read through the
// embedded Queries and wrap every order-affecting write in WithTx so a container is
// renumbered atomically.
type Repository struct {
	*Queries
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Queries: New(db),
		db:      db,
	}
}

// DB returns the underlying connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// WithTx runs fn with queries bound to a single transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (r *Repository) WithTx(ctx context.Context, fn func(q *Queries) error) error {
	return withTx(ctx, r.db, fn)
}

// Close closes the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}
