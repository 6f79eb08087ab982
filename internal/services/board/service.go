package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/services/scope"
)

// Service defines all board-related business operations. Every call acts for the
// principal in the context.
type Service interface {
	// Read operations
	GetBoard(ctx context.Context) (*models.Board, error)

	// Write operations
	CreateBoard(ctx context.Context, title string) (*models.Board, error)
	UpdateBoard(ctx context.Context, title string) (*models.Board, error)
}

// service implements Service interface
type service struct {
	repo           *database.Repository
	logger         *slog.Logger
	defaultColumns []string
}

// NewService creates a new board service. New boards are seeded with
// defaultColumns; nil uses models.DefaultColumnTitles.
func NewService(repo *database.Repository, logger *slog.Logger, defaultColumns []string) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultColumns == nil {
		defaultColumns = models.DefaultColumnTitles
	}
	return &service{repo: repo, logger: logger, defaultColumns: defaultColumns}
}

// GetBoard returns the principal's board with columns and tasks sorted by order
func (s *service) GetBoard(ctx context.Context) (*models.Board, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var tree *models.Board
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		b, err := scope.OwnBoard(ctx, q, p)
		if err != nil {
			return err
		}
		tree, err = scope.Tree(ctx, q, s.logger, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// CreateBoard creates the principal's only board with the default columns
func (s *service) CreateBoard(ctx context.Context, title string) (*models.Board, error) {
	title, err := models.NormalizeBoardTitle(title)
	if err != nil {
		return nil, err
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var tree *models.Board
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		if _, err := scope.OwnBoard(ctx, q, p); err == nil {
			return ErrBoardExists
		} else if !errors.Is(err, ErrBoardNotFound) {
			return err
		}

		b, err := q.CreateBoard(ctx, database.CreateBoardParams{UserID: int64(p.UserID), Title: title})
		if err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}
		for i, colTitle := range s.defaultColumns {
			if _, err := q.CreateColumn(ctx, database.CreateColumnParams{
				BoardID:  b.ID,
				Title:    colTitle,
				Position: int64(i),
			}); err != nil {
				return fmt.Errorf("failed to create column %q: %w", colTitle, err)
			}
		}
		tree, err = scope.Tree(ctx, q, s.logger, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("board created", "board_id", tree.ID, "user_id", p.UserID)
	return tree, nil
}

// UpdateBoard renames the principal's board
func (s *service) UpdateBoard(ctx context.Context, title string) (*models.Board, error) {
	title, err := models.NormalizeBoardTitle(title)
	if err != nil {
		return nil, err
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var tree *models.Board
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		b, err := scope.OwnBoard(ctx, q, p)
		if err != nil {
			return err
		}
		if b.Title != title {
			if err := q.UpdateBoardTitle(ctx, database.UpdateBoardTitleParams{ID: b.ID, Title: title}); err != nil {
				return fmt.Errorf("failed to update board: %w", err)
			}
			b.Title = title
		}
		tree, err = scope.Tree(ctx, q, s.logger, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}
