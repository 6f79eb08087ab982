package column

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a new column to your board",
		Long: `Create a new column at the right end of your board.

Examples:
  # Human-readable output
  dragboard column create --title="Review"

  # Quiet mode for bash capture
  COLUMN_ID=$(dragboard column create --title="Review" --quiet)
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().String("title", "", "Column title (required)")
	handler.MarkRequired(cmd, "title")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	title, err := args.Parser.ParseStringOptional("title")
	if err != nil {
		return nil, err
	}
	return args.CLI.Backend().CreateColumn(ctx, title)
}
