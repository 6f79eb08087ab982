package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a task",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	handler.MarkRequired(cmd, "id")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseTaskID("id")
	if err != nil {
		return nil, err
	}
	_, task, _, err := locate(ctx, args.CLI.Backend(), id)
	if err != nil {
		return nil, err
	}
	return task, nil
}
