// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/dragboard/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	CLI       *cli.CLI
	Flags     map[string]any
	Args      []string
	Parser    *FlagParser
	Formatter *cli.OutputFormatter
	cmd       *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// In returns the command's input stream (used for confirmations)
func (a *Arguments) In() io.Reader {
	return a.cmd.InOrStdin()
}

// Out returns the command's output stream
func (a *Arguments) Out() io.Writer {
	return a.cmd.OutOrStdout()
}

// Command wraps common command execution logic: output flags, opening the CLI,
// error reporting with exit codes. Returns a cobra RunE compatible function.
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{
			JSON:   jsonOutput,
			Quiet:  quietMode,
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		}

		if err := parseFlags(cmd); err != nil {
			return formatter.Fail(&cli.ExitError{Code: cli.ExitUsage, Err: err})
		}

		cliInstance, release, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		defer release()

		arguments := &Arguments{
			CLI:       cliInstance,
			Flags:     parseFlagsToMap(cmd),
			Args:      args,
			Parser:    NewFlagParser(cmd),
			Formatter: formatter,
			cmd:       cmd,
		}

		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			slog.Debug("command failed", "command", cmd.CommandPath(), "error", err)
			return formatter.Fail(err)
		}
		if result == nil {
			return nil
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// MarkRequired marks flags as required, panicking on programmer error
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("mark %s required: %v", name, err))
		}
	}
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Changed reports whether a flag was explicitly set
func (a *Arguments) Changed(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}
