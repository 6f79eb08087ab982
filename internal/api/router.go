// Package api exposes the board services over HTTP. Every route except the health
// check requires a bearer token; the authenticated principal travels in the request
// context and the services enforce ownership from there.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/services/board"
	"github.com/thenoetrevino/dragboard/internal/services/column"
	"github.com/thenoetrevino/dragboard/internal/services/task"
)

// Services are the backend operations the router dispatches to
type Services struct {
	Board  board.Service
	Column column.Service
	Task   task.Service
}

// Options configures the router
type Options struct {
	// AllowedOrigins for CORS; empty allows only localhost development origins
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Router wraps the gin engine serving the board API
type Router struct {
	Engine *gin.Engine
	logger *slog.Logger
}

// NewRouter builds the engine with middleware and all board routes registered
func NewRouter(svc Services, authenticator auth.Authenticator, opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()
	engine.Use(RequestID())
	engine.Use(CORS(opts.AllowedOrigins))
	engine.Use(Logger(logger))
	engine.Use(gin.Recovery())

	h := &handler{svc: svc, logger: logger}

	api := engine.Group("/api")
	api.GET("/health", h.Health)

	authed := api.Group("", Authenticate(authenticator, logger))
	authed.GET("/board", h.GetBoard)
	authed.POST("/board", h.CreateBoard)
	authed.PATCH("/board", h.UpdateBoard)

	authed.POST("/columns", h.CreateColumn)
	authed.PATCH("/columns/:id", h.UpdateColumn)
	authed.DELETE("/columns/:id", h.DeleteColumn)
	authed.POST("/columns/:id/move", h.MoveColumn)

	authed.POST("/tasks", h.CreateTask)
	authed.POST("/tasks/move", h.MoveTask)
	authed.PATCH("/tasks/:id", h.UpdateTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)

	return &Router{Engine: engine, logger: logger}
}

// Serve listens on addr until ctx is cancelled, then drains in-flight requests
func (r *Router) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	r.logger.Info("api stopped")
	return nil
}
