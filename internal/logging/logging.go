package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Options controls where logs go
type Options struct {
	Level slog.Level

	// Stderr mirrors every record to standard error (used by `serve`)
	Stderr bool

	// Dir overrides ~/.dragboard/logs
	Dir string
}

// Init initializes the logging system, writing logs to ~/.dragboard/logs/dragboard.log
// Uses text format for human readability. The returned closer flushes the log file.
func Init(opts Options) (io.Closer, error) {
	logDir := opts.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		logDir = filepath.Join(homeDir, ".dragboard", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "dragboard.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	var out io.Writer = file
	if opts.Stderr {
		out = io.MultiWriter(file, os.Stderr)
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: opts.Level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output (used by gin's debug printer) to the same file
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags) // Include timestamp

	return file, nil
}

// Discard installs a logger that drops everything, for commands whose output is
// machine-read and for tests
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(Logger)
}
