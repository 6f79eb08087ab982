package task

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

// Service defines all task-related business operations. Every call acts for the
// principal in the context and re-checks ownership of the board it touches.
type Service interface {
	// Read operations
	GetTask(ctx context.Context, id types.TaskID) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id types.TaskID, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id types.TaskID) error

	// Task movements
	MoveTask(ctx context.Context, m reorder.TaskMove) error
}

// CreateTaskRequest encapsulates all data needed to create a task.
// The task is always appended to the end of the column.
type CreateTaskRequest struct {
	ColumnID    types.ColumnID
	Title       string
	Description string
}

// service implements Service interface
type service struct {
	repo   *database.Repository
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(repo *database.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

// GetTask returns a single task
func (s *service) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var t database.Task
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		t, _, err = scope.Task(ctx, q, p, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return converters.TaskToModel(t), nil
}

// CreateTask appends a task to a column of the principal's board
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := models.NormalizeTaskTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateDescription(req.Description); err != nil {
		return nil, err
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var created database.Task
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		col, b, err := scope.Column(ctx, q, p, req.ColumnID)
		if err != nil {
			return err
		}
		count, err := q.CountTasksByColumn(ctx, col.ID)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		created, err = q.CreateTask(ctx, database.CreateTaskParams{
			ColumnID:    col.ID,
			Title:       title,
			Description: req.Description,
			Position:    count,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return q.TouchBoard(ctx, b.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task created", "task_id", created.ID, "column_id", created.ColumnID, "position", created.Position)
	return converters.TaskToModel(created), nil
}

// UpdateTask edits title and/or description; position is never touched
func (s *service) UpdateTask(ctx context.Context, id types.TaskID, patch models.TaskPatch) (*models.Task, error) {
	patch, err := patch.Normalize()
	if err != nil {
		return nil, err
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	var updated database.Task
	err = s.repo.WithTx(ctx, func(q *database.Queries) error {
		t, b, err := scope.Task(ctx, q, p, id)
		if err != nil {
			return err
		}
		model := converters.TaskToModel(t)
		patch.ApplyTo(model)
		if model.Title == t.Title && model.Description == t.Description {
			updated = t
			return nil
		}
		if err := q.UpdateTask(ctx, database.UpdateTaskParams{
			ID:          t.ID,
			Title:       model.Title,
			Description: model.Description,
		}); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if updated, err = q.GetTaskByID(ctx, t.ID); err != nil {
			return fmt.Errorf("failed to reload task: %w", err)
		}
		return q.TouchBoard(ctx, b.ID)
	})
	if err != nil {
		return nil, err
	}
	return converters.TaskToModel(updated), nil
}

// DeleteTask deletes a task and renumbers the rest of its column
func (s *service) DeleteTask(ctx context.Context, id types.TaskID) error {
	p, err := auth.Require(ctx)
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(q *database.Queries) error {
		_, b, err := scope.Task(ctx, q, p, id)
		if err != nil {
			return err
		}
		tree, err := scope.Tree(ctx, q, s.logger, b)
		if err != nil {
			return err
		}

		res, _, err := reorder.RemoveTask(tree, id)
		if err != nil {
			return fmt.Errorf("failed to remove task %d: %w", id, err)
		}
		if err := q.DeleteTask(ctx, int64(id)); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		if err := scope.Persist(ctx, q, res); err != nil {
			return err
		}
		return q.TouchBoard(ctx, b.ID)
	})
}

// MoveTask moves a task within or across columns of the principal's board.
//
// The task and both columns must exist and be owned by the principal. A move whose
// stated source column no longer holds the task is stale and does nothing, as does
// a move onto the task's current position.
func (s *service) MoveTask(ctx context.Context, m reorder.TaskMove) error {
	if m.DestIndex < 0 {
		return ErrInvalidPosition
	}
	p, err := auth.Require(ctx)
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(q *database.Queries) error {
		_, b, err := scope.Task(ctx, q, p, m.TaskID)
		if err != nil {
			return err
		}
		if _, destBoard, err := scope.Column(ctx, q, p, m.DestColumnID); err != nil {
			return err
		} else if destBoard.ID != b.ID {
			return ErrNotOwner
		}

		tree, err := scope.Tree(ctx, q, s.logger, b)
		if err != nil {
			return err
		}
		res, err := reorder.MoveTask(tree, m)
		if errors.Is(err, reorder.ErrStale) {
			s.logger.Debug("ignoring stale move", "task_id", m.TaskID, "source", m.SourceColumnID, "error", err)
			return nil
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
