package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/backend"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/store"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // nil when talking to a remote API
	Config *config.Config

	backend   store.Backend
	principal auth.Principal
}

// NewCLI opens the configured backend: the remote API when remote.url is set,
// otherwise the local database acting as the configured (or OS) user.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg.Remote.Enabled() {
		client := backend.NewClient(cfg.Remote.URL, cfg.Remote.Token,
			backend.WithTimeout(cfg.Remote.Timeout),
			backend.WithLogger(slog.Default()))
		return &CLI{Config: cfg, backend: client}, nil
	}

	path := cfg.Database.Path
	if path == "" {
		var err error
		if path, err = database.DefaultPath(); err != nil {
			return nil, err
		}
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(database.NewRepository(db),
		app.WithLogger(slog.Default()),
		app.WithDefaultColumns(cfg.Board.DefaultColumns))

	c, err := NewLocalCLI(ctx, application, cfg)
	if err != nil {
		_ = application.Close()
		return nil, err
	}
	return c, nil
}

// NewLocalCLI wraps an existing app container acting as cfg.User
func NewLocalCLI(ctx context.Context, application *app.App, cfg *config.Config) (*CLI, error) {
	p, err := application.Principal(ctx, cfg.User)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return &CLI{
		App:       application,
		Config:    cfg,
		backend:   application.LocalBackend(p),
		principal: p,
	}, nil
}

// Backend returns the authoritative board backend for this invocation
func (c *CLI) Backend() store.Backend {
	return c.backend
}

// Principal returns the local user; zero when remote
func (c *CLI) Principal() auth.Principal {
	return c.principal
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.App != nil {
		return c.App.Close()
	}
	return nil
}
