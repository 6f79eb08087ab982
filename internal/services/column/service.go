package column

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/converters"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/reorder"
	"github.com/thenoetrevino/dragboard/internal/services/scope"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// Service defines all column-related business operations. Every call acts for the
// principal in the context and re-checks ownership of the board it touches.
type Service interface {
	// Read operations
	ListColumns(ctx context.Context) ([]*models.Column, error)
	GetColumn(ctx context.Context, id types.ColumnID) (*models.Column, error)

	// Write operations
	CreateColumn(ctx context.Context, title string) (*models.Column, error)
	UpdateColumn(ctx context.Context, id types.ColumnID, title string) (*models.Column, error)
	DeleteColumn(ctx context.Context, id types.ColumnID) error
	MoveColumn(ctx context.Context, m reorder.ColumnMove) error
}

// service implements Service interface
type service struct {
	repo   *database.Repository
	logger *slog.Logger
}

// NewService creates a new column service
func NewService(repo *database.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// ListColumns returns the principal's columns in order, each with its tasks
func (s *service) ListColumns(ctx context.Context) ([]*models.Column, error) {
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
	return tree.Columns, nil
}

// GetColumn returns a single column with its tasks
func (s *service) GetColumn(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var out *models.Column
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		col, _, err := scope.Column(ctx, q, p, id)
		if err != nil {
			return err
		}
		tasks, err := q.GetTasksByColumn(ctx, col.ID)
		if err != nil {
			return fmt.Errorf("failed to get tasks: %w", err)
		}
		out = converters.ColumnToModel(col)
		out.Tasks = converters.TasksToModels(tasks)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateColumn appends a column to the principal's board
func (s *service) CreateColumn(ctx context.Context, title string) (*models.Column, error) {
	title, err := models.NormalizeColumnTitle(title)
	if err != nil {
		return nil, err
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var created database.Column
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		b, err := scope.OwnBoard(ctx, q, p)
		if err != nil {
			return err
		}
		count, err := q.CountColumnsByBoard(ctx, b.ID)
		if err != nil {
			return fmt.Errorf("failed to count columns: %w", err)
		}
		created, err = q.CreateColumn(ctx, database.CreateColumnParams{
			BoardID:  b.ID,
			Title:    title,
			Position: count,
		})
		if err != nil {
			return fmt.Errorf("failed to create column: %w", err)
		}
		return q.TouchBoard(ctx, b.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("column created", "column_id", created.ID, "position", created.Position)
	return converters.ColumnToModel(created), nil
}

// UpdateColumn renames a column. Renaming to the current title writes nothing.
func (s *service) UpdateColumn(ctx context.Context, id types.ColumnID, title string) (*models.Column, error) {
	title, err := models.NormalizeColumnTitle(title)
	if err != nil {
		return nil, err
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var col database.Column
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		var b database.Board
		col, b, err = scope.Column(ctx, q, p, id)
		if err != nil {
			return err
		}
		if col.Title == title {
			return nil
		}
		if err := q.UpdateColumnTitle(ctx, database.UpdateColumnTitleParams{ID: col.ID, Title: title}); err != nil {
			return fmt.Errorf("failed to update column: %w", err)
		}
		col.Title = title
		return q.TouchBoard(ctx, b.ID)
	})
	if err != nil {
		return nil, err
	}
	return converters.ColumnToModel(col), nil
}

// DeleteColumn deletes a column and every task in it, then renumbers the
// surviving columns so their positions stay 0..N-1. All of it is one transaction.
func (s *service) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	p, err := auth.Require(ctx)
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(q *database.Queries) error {
		_, b, err := scope.Column(ctx, q, p, id)
		if err != nil {
			return err
		}
		tree, err := scope.Tree(ctx, q, s.logger, b)
		if err != nil {
			return err
		}

		res, removed, err := reorder.RemoveColumn(tree, id)
		if err != nil {
			return fmt.Errorf("failed to remove column %d: %w", id, err)
		}
		if err := q.DeleteTasksByColumn(ctx, int64(id)); err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if err := q.DeleteColumn(ctx, int64(id)); err != nil {
			return fmt.Errorf("failed to delete column: %w", err)
		}
		if err := scope.Persist(ctx, q, res); err != nil {
			return err
		}

		s.logger.Debug("column deleted", "column_id", id, "tasks", len(removed.Tasks), "renumbered", len(res.ColumnWrites))
		return q.TouchBoard(ctx, b.ID)
	})
}

// MoveColumn moves a column to m.DestIndex (clamped to the last slot)
func (s *service) MoveColumn(ctx context.Context, m reorder.ColumnMove) error {
	if m.DestIndex < 0 {
		return ErrInvalidPosition
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(q *database.Queries) error {
		_, b, err := scope.Column(ctx, q, p, m.ColumnID)
		if err != nil {
			return err
		}
		tree, err := scope.Tree(ctx, q, s.logger, b)
		if err != nil {
			return err
		}

		res, err := reorder.MoveColumn(tree, m)
		if errors.Is(err, reorder.ErrStale) {
			return ErrColumnNotFound
		}
		if err != nil {
			return err
		}
		if res.Empty() {
			return nil
		}
		if err := scope.Persist(ctx, q, res); err != nil {
			return err
		}
		return q.TouchBoard(ctx, b.ID)
	})
}
