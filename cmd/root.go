package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli/board"
	"github.com/thenoetrevino/dragboard/internal/cli/column"
	"github.com/thenoetrevino/dragboard/internal/cli/task"
	"github.com/thenoetrevino/dragboard/internal/cli/user"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dragboard",
	Short: "Dragboard - a drag-and-drop kanban board",
	Long: `Dragboard is a single-board kanban for the terminal. Run it without a
subcommand to open the board, or use the subcommands to script it.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: runTUI,
}

var logCloser io.Closer

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tuiCmd())
}

// initLogging sends logs to the log file; `serve` mirrors them to stderr.
// A broken log directory only costs the logs.
func initLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closer, err := logging.Init(logging.Options{
		Level:  cfg.Log.SlogLevel(),
		Stderr: cmd.Name() == "serve",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		logging.Discard()
		return nil
	}
	logCloser = closer
	return nil
}

// Execute runs the command line
func Execute() error {
	return rootCmd.Execute()
}
