package board

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show or manage your board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameCmd())

	return cmd
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print your board with columns and tasks in order",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}
	handler.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	return args.CLI.Backend().LoadBoard(ctx)
}

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create your board",
		Long: `Create your board with the configured default columns
(board.default_columns: Todo, In Progress, Done unless changed).
Each user has exactly one board.

Examples:
  dragboard board create --title="Roadmap"
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().String("title", "", "Board title (required)")
	handler.MarkRequired(cmd, "title")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	title, err := args.Parser.ParseStringOptional("title")
	if err != nil {
		return nil, err
	}
	return args.CLI.Backend().CreateBoard(ctx, title)
}

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change your board's title",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runRename)),
	}

	cmd.Flags().String("title", "", "New title (required)")
	handler.MarkRequired(cmd, "title")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runRename(ctx context.Context, args *handler.Arguments) (any, error) {
	title, err := args.Parser.ParseStringOptional("title")
	if err != nil {
		return nil, err
	}
	return args.CLI.Backend().UpdateBoard(ctx, title)
}
