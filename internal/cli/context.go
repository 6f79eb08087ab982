package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/config"
)

type cliKey struct{}

// WithCLI returns a context carrying an already-open CLI. Commands run with such a
// context use it instead of opening their own (tests inject in-memory databases
// this way).
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the injected CLI, or opens one from the user's config.
// The returned release func must be called when the command is done; it only
// closes CLIs it opened.
func GetCLIFromContext(ctx context.Context) (*CLI, func(), error) {
	if c, ok := ctx.Value(cliKey{}).(*CLI); ok && c != nil {
		return c, func() {}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	c, err := NewCLI(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}
