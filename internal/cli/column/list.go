package column

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your board's columns in order",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runList)),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	board, err := args.CLI.Backend().LoadBoard(ctx)
	if err != nil {
		return nil, err
	}
	return board.Columns, nil
}
