package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// locate loads the board and finds the task's current column
func locate(ctx context.Context, backend store.Backend, id types.TaskID) (*models.Board, *models.Task, *models.Column, error) {
	board, err := backend.LoadBoard(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	task, column := board.FindTask(id)
	if task == nil {
		return nil, nil, nil, fmt.Errorf("task %d: %w", id, models.ErrTaskNotFound)
	}
	return board, task, column, nil
}
