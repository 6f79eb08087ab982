package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column and every task in it",
		Long: `Delete a column together with all of its tasks. The remaining columns
close the gap, keeping their relative order.

Examples:
  # Asks for confirmation
  dragboard column delete --id=3

  # Skip confirmation
  dragboard column delete --id=3 --force
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().Int("id", 0, "Column ID (required)")
	handler.MarkRequired(cmd, "id")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := args.Parser.ParseColumnID("id")
	if err != nil {
		return nil, err
	}

	column, err := lookup(ctx, args.CLI.Backend(), id)
	if err != nil {
		return nil, err
	}

	// Agents pass --json/--quiet and cannot answer prompts
	interactive := !args.Formatter.JSON && !args.Formatter.Quiet
	if interactive && !args.GetBool("force") {
		prompt := fmt.Sprintf("Delete column '%s' and its %d task(s)?", column.Title, len(column.Tasks))
		if !cli.Confirm(args.In(), args.Out(), prompt) {
			return cli.Message{Text: "Cancelled"}, nil
		}
	}

	if err := args.CLI.Backend().DeleteColumn(ctx, id); err != nil {
		return nil, err
	}
	return cli.Message{ID: int(id), Text: fmt.Sprintf("Column '%s' deleted", column.Title)}, nil
}
