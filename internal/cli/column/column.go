package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/types"
)

var errColumnNotOnBoard = fmt.Errorf("%w on your board", models.ErrColumnNotFound)

// ColumnCmd groups the column subcommands. Every one of them acts on the
// caller's single board, so none takes a board ID.
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage the columns of your board",
	}

	for _, sub := range []*cobra.Command{CreateCmd(), ListCmd(), RenameCmd(), DeleteCmd(), MoveCmd()} {
		cmd.AddCommand(sub)
	}
	return cmd
}

// lookup loads the board and returns the column with the given ID
func lookup(ctx context.Context, backend store.Backend, id types.ColumnID) (*models.Column, error) {
	board, err := backend.LoadBoard(ctx)
	if err != nil {
		return nil, err
	}
	column, _ := board.Column(id)
	if column == nil {
		return nil, fmt.Errorf("column %d: %w", id, errColumnNotOnBoard)
	}
	return column, nil
}
