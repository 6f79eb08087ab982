package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the board (the default command)",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := cli.NewCLI(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	logger := slog.Default()
	st := store.New(c.Backend(), store.WithLogger(logger))
	model := tui.New(st, cfg, tui.WithContext(ctx), tui.WithLogger(logger))

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
