package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/api"
	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/backend"
	"github.com/thenoetrevino/dragboard/internal/database"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
	columnservice "github.com/thenoetrevino/dragboard/internal/services/column"
	taskservice "github.com/thenoetrevino/dragboard/internal/services/task"
	userservice "github.com/thenoetrevino/dragboard/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo   *database.Repository
	logger *slog.Logger

	// Service layer (business logic)
	UserService   userservice.Service
	BoardService  boardservice.Service
	ColumnService columnservice.Service
	TaskService   taskservice.Service

	// Authenticator resolves API bearer tokens
	Authenticator auth.Authenticator
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo *database.Repository, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:          repo,
		logger:        cfg.logger,
		UserService:   userservice.NewService(repo, cfg.logger),
		BoardService:  boardservice.NewService(repo, cfg.logger, cfg.defaultColumns),
		ColumnService: columnservice.NewService(repo, cfg.logger),
		TaskService:   taskservice.NewService(repo, cfg.logger),
		Authenticator: auth.NewTokenAuthenticator(repo, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Principal resolves (creating if needed) the local user name for in-process use
func (a *App) Principal(ctx context.Context, name string) (auth.Principal, error) {
	return auth.Local(ctx, a.UserService, name)
}

// As returns ctx carrying the local user name as principal
func (a *App) As(ctx context.Context, name string) (context.Context, error) {
	p, err := a.Principal(ctx, name)
	if err != nil {
		return nil, err
	}
	return auth.WithPrincipal(ctx, p), nil
}

// LocalBackend returns a board store backend that acts as p against the local database
func (a *App) LocalBackend(p auth.Principal) *backend.Local {
	return backend.NewLocal(p, a.BoardService, a.ColumnService, a.TaskService)
}

// Router builds the HTTP API over the app's services
func (a *App) Router(allowedOrigins []string) *api.Router {
	return api.NewRouter(api.Services{
		Board:  a.BoardService,
		Column: a.ColumnService,
		Task:   a.TaskService,
	}, a.Authenticator, api.Options{AllowedOrigins: allowedOrigins, Logger: a.logger})
}

// Close releases the database
func (a *App) Close() error {
	return a.repo.Close()
}
