package auth

import (
	"context"
	"os"
	"os/user"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// UserResolver finds or registers a user by name
type UserResolver interface {
	GetOrCreateUser(ctx context.Context, name string) (*models.User, error)
}

// Local resolves the principal for in-process use (CLI and terminal UI against a
// local database). An empty name falls back to the operating system user.
func Local(ctx context.Context, users UserResolver, name string) (Principal, error) {
	if name == "" {
		name = CurrentUsername()
	}
	u, err := users.GetOrCreateUser(ctx, name)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: u.ID, Name: u.Name}, nil
}

// CurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func CurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
