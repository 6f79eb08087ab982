package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/handler"
	"github.com/thenoetrevino/dragboard/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change a task's title or description",
		Long: `Change a task's title and/or description. Only the flags you pass are changed.

Examples:
  dragboard task update --id=4 --title="Write better docs"
  dragboard task update --id=4 --description=""
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runUpdate)),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	handler.MarkRequired(cmd, "id")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseTaskID("id")
	if err != nil {
		return nil, err
	}

	var patch models.TaskPatch
	if args.Changed("title") {
		title := args.GetString("title", "")
		patch.Title = &title
	}
	if args.Changed("description") {
		description := args.GetString("description", "")
		patch.Description = &description
	}
	if patch.Empty() {
		return nil, cli.UsageError("nothing to update: pass --title and/or --description")
	}

	return args.CLI.Backend().UpdateTask(ctx, id, patch)
}
