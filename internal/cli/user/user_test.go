package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/cli"
	clitest "github.com/thenoetrevino/dragboard/internal/testutil/cli"
)

func TestCreatePrintsWorkingToken(t *testing.T) {
	t.Parallel()
	_, application, ctx := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, UserCmd(), "", "create", "--name=alice", "--json")
	require.NoError(t, res.Err)
	data := res.Data(t)
	assert.Equal(t, "alice", data["name"])
	token := data["token"].(string)
	require.NotEmpty(t, token)

	p, err := application.Authenticator.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Name)
}

func TestCreateDuplicate(t *testing.T) {
	t.Parallel()
	_, _, ctx := clitest.SetupCLITest(t)

	require.NoError(t, clitest.ExecuteCLICommand(t, ctx, UserCmd(), "", "create", "--name=bob").Err)
	res := clitest.ExecuteCLICommand(t, ctx, UserCmd(), "", "create", "--name=bob")
	assert.Equal(t, cli.ExitConflict, res.ExitCode())
}

func TestTokenRotates(t *testing.T) {
	t.Parallel()
	_, application, ctx := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, UserCmd(), "", "token", "--quiet")
	require.NoError(t, res.Err)
	first := strings.TrimSpace(res.Stdout)

	res = clitest.ExecuteCLICommand(t, ctx, UserCmd(), "", "token", "--quiet")
	require.NoError(t, res.Err)
	second := strings.TrimSpace(res.Stdout)
	assert.NotEqual(t, first, second)

	_, err := application.Authenticator.Authenticate(context.Background(), first)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	p, err := application.Authenticator.Authenticate(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, clitest.TestUser, p.Name)
}

func TestTokenUnknownUser(t *testing.T) {
	t.Parallel()
	_, _, ctx := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, UserCmd(), "", "token", "--name=nobody")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}
