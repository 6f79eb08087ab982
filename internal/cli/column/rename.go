package column

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change a column's title",
		Long: `Change a column's title. The column keeps its position and tasks.

Examples:
  dragboard column rename --id=3 --title="Shipped"
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runRename)),
	}

	cmd.Flags().Int("id", 0, "Column ID (required)")
	cmd.Flags().String("title", "", "New title (required)")
	handler.MarkRequired(cmd, "id", "title")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runRename(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseColumnID("id")
	if err != nil {
		return nil, err
	}
	title, err := args.Parser.ParseStringOptional("title")
	if err != nil {
		return nil, err
	}
	return args.CLI.Backend().UpdateColumn(ctx, id, title)
}
