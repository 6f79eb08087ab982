package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a task to the bottom of a column",
		Long: `Create a new task at the bottom of a column.

Examples:
  # Human-readable output
  dragboard task create --column=1 --title="Write release notes"

  # With a markdown description
  dragboard task create --column=1 --title="Fix login" --description="Steps:\n1. ..."

  # Quiet mode for bash capture
  TASK_ID=$(dragboard task create --column=1 --title="Ship it" --quiet)
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().Int("column", 0, "Column ID (required)")
	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (markdown)")
	handler.MarkRequired(cmd, "column", "title")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	columnID, err := args.Parser.ParseColumnID("column")
	if err != nil {
		return nil, err
	}
	title, err := args.Parser.ParseStringOptional("title")
	if err != nil {
		return nil, err
	}
	return args.CLI.Backend().CreateTask(ctx, columnID, title, args.GetString("description", ""))
}
