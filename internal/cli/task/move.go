package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/handler"
	"github.com/thenoetrevino/dragboard/internal/reorder"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task within its column or to another column",
		Long: `Move a task to a zero-based position in a column. Without --column the task
stays in its current column. Positions past the end place the task last.

Examples:
  # Move task 4 to the top of its column
  dragboard task move --id=4 --index=0

  # Move task 4 into column 2, second from the top
  dragboard task move --id=4 --column=2 --index=1
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runMove)),
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().Int("column", 0, "Destination column ID (default: current column)")
	cmd.Flags().Int("index", 0, "Destination position, starting at 0 (required)")
	handler.MarkRequired(cmd, "id", "index")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseTaskID("id")
	if err != nil {
		return nil, err
	}
	index, err := args.Parser.ParseIndex("index")
	if err != nil {
		return nil, err
	}

	board, _, source, err := locate(ctx, args.CLI.Backend(), id)
	if err != nil {
		return nil, err
	}

	dest := source
	if args.Changed("column") {
		destID, err := args.Parser.ParseColumnID("column")
		if err != nil {
			return nil, err
		}
		if dest, _ = board.Column(destID); dest == nil {
			return nil, fmt.Errorf("destination column %d: %w", destID, errColumnNotOnBoard)
		}
	}

	m := reorder.TaskMove{
		TaskID:         id,
		SourceColumnID: source.ID,
		DestColumnID:   dest.ID,
		DestIndex:      index,
	}
	if err := args.CLI.Backend().MoveTask(ctx, m); err != nil {
		return nil, err
	}
	return cli.Message{ID: int(id), Text: fmt.Sprintf("Task %d moved to '%s' at position %d", id, dest.Title, index)}, nil
}
