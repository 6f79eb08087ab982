// Package user manages local accounts and the API tokens remote clients sign in with.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/handler"
)

var errRemote = errors.New("user accounts are managed on the server; unset remote.url to run this locally")

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users and API tokens",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(TokenCmd())

	return cmd
}

// TokenResult is printed once; the token itself is never stored in plain text
type TokenResult struct {
	UserID int    `json:"userId,omitempty"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// QuietValue makes quiet mode print the bare token
func (r TokenResult) QuietValue() string {
	return r.Token
}

func (r TokenResult) String() string {
	return fmt.Sprintf("User '%s'\nToken: %s\n(store it now, it will not be shown again)", r.Name, r.Token)
}

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user and print their API token",
		Long: `Create a user in the local database and print a fresh API token for
"dragboard serve". Clients pass it as remote.token (or DRAGBOARD_TOKEN).

Examples:
  dragboard user create --name=alice
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().String("name", "", "User name (required)")
	handler.MarkRequired(cmd, "name")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	if args.CLI.App == nil {
		return nil, cli.UsageError("%w", errRemote)
	}
	name, err := args.Parser.ParseStringOptional("name")
	if err != nil {
		return nil, err
	}
	u, token, err := args.CLI.App.UserService.CreateUser(ctx, name)
	if err != nil {
		return nil, err
	}
	return TokenResult{UserID: int(u.ID), Name: u.Name, Token: token}, nil
}

// TokenCmd returns the user token subcommand
func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a new API token, revoking the previous one",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runToken)),
	}

	cmd.Flags().String("name", "", "User name (default: the configured user)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runToken(ctx context.Context, args *handler.Arguments) (any, error) {
	if args.CLI.App == nil {
		return nil, cli.UsageError("%w", errRemote)
	}
	name := args.GetString("name", args.CLI.Principal().Name)
	token, err := args.CLI.App.UserService.IssueToken(ctx, name)
	if err != nil {
		return nil, err
	}
	return TokenResult{Name: name, Token: token}, nil
}
