// Package cli wires CLI commands to an in-memory database for tests.
// It lives apart from testutil to avoid import cycles when service tests import testutil.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/database"
	"github.com/thenoetrevino/dragboard/internal/testutil"
)

// TestUser is the name commands run as unless a test asks for another user
const TestUser = "tester"

// SetupCLITest creates an in-memory DB and an App over it, and returns a context
// that makes every command act as TestUser against that database
func SetupCLITest(t *testing.T) (*database.Repository, *app.App, context.Context) {
	t.Helper()
	repo := testutil.SetupTestDB(t)
	appInstance := app.New(repo, app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return repo, appInstance, ContextAs(t, appInstance, TestUser)
}

// ContextAs returns a context whose commands act as the named user
func ContextAs(t *testing.T, appInstance *app.App, name string) context.Context {
	t.Helper()
	cfg := config.Default()
	cfg.User = name

	c, err := cli.NewLocalCLI(context.Background(), appInstance, cfg)
	if err != nil {
		t.Fatalf("Failed to create CLI: %v", err)
	}
	return cli.WithCLI(context.Background(), c)
}

// Result is the captured outcome of one command execution
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode returns the process exit code the command would terminate with
func (r Result) ExitCode() int {
	return cli.ExitCode(r.Err)
}

// JSON parses stdout as the formatter's JSON envelope
func (r Result) JSON(t *testing.T) map[string]interface{} {
	t.Helper()
	return ParseJSON(t, r.Stdout)
}

// Data returns the "data" object of a successful JSON envelope
func (r Result) Data(t *testing.T) map[string]interface{} {
	t.Helper()
	data, ok := r.JSON(t)["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("JSON output has no data object: %s", r.Stdout)
	}
	return data
}

// ExecuteCLICommand runs cmd with args under ctx (from SetupCLITest or ContextAs)
// and captures its output. stdin feeds confirmation prompts.
func ExecuteCLICommand(t *testing.T, ctx context.Context, cmd *cobra.Command, stdin string, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var in io.Reader = strings.NewReader(stdin)
	cmd.SetIn(in)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// ID extracts the integer "id" of a JSON data object
func ID(t *testing.T, data map[string]interface{}) int {
	t.Helper()
	id, ok := data["id"].(float64)
	if !ok {
		t.Fatalf("data has no numeric id: %v", data)
	}
	return int(id)
}
