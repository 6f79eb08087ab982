package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger         *slog.Logger
	defaultColumns []string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithDefaultColumns sets the columns seeded into every new board
func WithDefaultColumns(titles []string) Option {
	return func(cfg *appConfig) {
		cfg.defaultColumns = titles
	}
}
