package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/converters"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
)

// Service defines all user-related business operations
type Service interface {
	// Read operations
	GetUserByName(ctx context.Context, name string) (*models.User, error)

	// Write operations
	CreateUser(ctx context.Context, name string) (*models.User, string, error)
	GetOrCreateUser(ctx context.Context, name string) (*models.User, error)
	IssueToken(ctx context.Context, name string) (string, error)
}

// service implements Service interface
type service struct {
	repo   *database.Repository
	logger *slog.Logger
}

// NewService creates a new user service
func NewService(repo *database.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// GetUserByName looks a user up by name
func (s *service) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.GetUserByName(ctx, name)
	if database.IsNoRows(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return converters.UserToModel(u), nil
}

// CreateUser registers a user and returns its API token. The token is shown once;
// only its hash is stored.
func (s *service) CreateUser(ctx context.Context, name string) (*models.User, string, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, "", err
	}

	token := auth.NewToken()
	var created database.User
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		if _, err := q.GetUserByName(ctx, name); err == nil {
			return ErrUserExists
		} else if !database.IsNoRows(err) {
			return fmt.Errorf("failed to check user: %w", err)
		}
		created, err = q.CreateUser(ctx, database.CreateUserParams{
			Name:      name,
			TokenHash: database.NullString(auth.HashToken(token)),
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user created", "user_id", created.ID, "name", name)
	return converters.UserToModel(created), token, nil
}

// GetOrCreateUser returns the named user, registering it without a token if needed
func (s *service) GetOrCreateUser(ctx context.Context, name string) (*models.User, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	var u database.User
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		u, err = q.GetUserByName(ctx, name)
		if err == nil {
			return nil
		}
		if !database.IsNoRows(err) {
			return fmt.Errorf("failed to get user: %w", err)
		}
		u, err = q.CreateUser(ctx, database.CreateUserParams{Name: name})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.Info("user created", "user_id", u.ID, "name", name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return converters.UserToModel(u), nil
}

// IssueToken replaces the user's API token and returns the new one
func (s *service) IssueToken(ctx context.Context, name string) (string, error) {
	u, err := s.GetUserByName(ctx, name)
	if err != nil {
		return "", err
	}
	token := auth.NewToken()
	if err := s.repo.SetUserTokenHash(ctx, database.SetUserTokenHashParams{
		ID:        int64(u.ID),
		TokenHash: database.NullString(auth.HashToken(token)),
	}); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxUserNameLength {
		return "", ErrNameTooLong
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", ErrNameHasSpace
	}
	return name, nil
}
