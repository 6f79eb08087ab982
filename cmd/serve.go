package cmd

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/database"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API over HTTP",
		Long: `Serve the board API for remote TUIs and browsers. Clients authenticate
with a bearer token from 'dragboard user token'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			path := cfg.Database.Path
			if path == "" {
				if path, err = database.DefaultPath(); err != nil {
					return err
				}
			}
			db, err := database.InitDB(ctx, path)
			if err != nil {
				return err
			}

			application := app.New(database.NewRepository(db),
				app.WithLogger(slog.Default()),
				app.WithDefaultColumns(cfg.Board.DefaultColumns))
			defer func() { _ = application.Close() }()

			slog.Info("dragboard api starting", "addr", cfg.Server.Addr, "database", path, "pid", os.Getpid())
			err = application.Router(cfg.Server.AllowedOrigins).Serve(ctx, cfg.Server.Addr)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("api error", "error", err)
				return err
			}
			slog.Info("dragboard api shutting down gracefully")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	return cmd
}
