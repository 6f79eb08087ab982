package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/handler"
	"github.com/thenoetrevino/dragboard/internal/reorder"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a column to a new position",
		Long: `Move a column to a zero-based position on the board. Positions past the
end place the column last.

Examples:
  # Make column 3 the leftmost column
  dragboard column move --id=3 --index=0
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runMove)),
	}

	cmd.Flags().Int("id", 0, "Column ID (required)")
	cmd.Flags().Int("index", 0, "Destination position, starting at 0 (required)")
	handler.MarkRequired(cmd, "id", "index")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseColumnID("id")
	if err != nil {
		return nil, err
	}
	index, err := args.Parser.ParseIndex("index")
	if err != nil {
		return nil, err
	}

	column, err := lookup(ctx, args.CLI.Backend(), id)
	if err != nil {
		return nil, err
	}
	if err := args.CLI.Backend().MoveColumn(ctx, reorder.ColumnMove{ColumnID: id, DestIndex: index}); err != nil {
		return nil, err
	}
	return cli.Message{ID: int(id), Text: fmt.Sprintf("Column '%s' moved to position %d", column.Title, index)}, nil
}
