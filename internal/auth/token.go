package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// TokenAuthenticator looks tokens up by hash in the users table
type TokenAuthenticator struct {
	queries *database.Queries
	logger  *slog.Logger
}

// NewTokenAuthenticator creates an authenticator over repo
func NewTokenAuthenticator(repo *database.Repository, logger *slog.Logger) *TokenAuthenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenAuthenticator{queries: repo.Queries, logger: logger}
}

// Authenticate returns the principal owning token
func (a *TokenAuthenticator) Authenticate(ctx context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrUnauthenticated
	}
	user, err := a.queries.GetUserByTokenHash(ctx, HashToken(token))
	if database.IsNoRows(err) {
		return Principal{}, ErrUnauthenticated
	}
	if err != nil {
		a.logger.Error("token lookup failed", "error", err)
		return Principal{}, fmt.Errorf("failed to look up token: %w", err)
	}
	return Principal{UserID: types.UserID(user.ID), Name: user.Name}, nil
}
