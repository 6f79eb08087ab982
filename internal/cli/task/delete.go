package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	handler.MarkRequired(cmd, "id")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseTaskID("id")
	if err != nil {
		return nil, err
	}
	if err := args.CLI.Backend().DeleteTask(ctx, id); err != nil {
		return nil, err
	}
	return cli.Message{ID: int(id), Text: fmt.Sprintf("Task %d deleted", id)}, nil
}
