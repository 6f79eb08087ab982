package column

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/board"
	clitest "github.com/thenoetrevino/dragboard/internal/testutil/cli"
)

// setupBoard creates the test user's board and returns its column IDs in order
func setupBoard(t *testing.T) (context.Context, []int) {
	t.Helper()
	_, _, ctx := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, board.BoardCmd(), "", "create", "--title=Board", "--json")
	require.NoError(t, res.Err)
	return ctx, columnIDs(t, res.Data(t))
}

func columnIDs(t *testing.T, boardData map[string]interface{}) []int {
	t.Helper()
	var ids []int
	for _, c := range boardData["columns"].([]interface{}) {
		ids = append(ids, clitest.ID(t, c.(map[string]interface{})))
	}
	return ids
}

func listTitles(t *testing.T, ctx context.Context) []string {
	t.Helper()
	res := clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "list", "--json")
	require.NoError(t, res.Err)

	var titles []string
	for i, c := range res.JSON(t)["data"].([]interface{}) {
		col := c.(map[string]interface{})
		assert.Equal(t, float64(i), col["order"], "column %v", col["title"])
		titles = append(titles, col["title"].(string))
	}
	return titles
}

func TestCreateAppends(t *testing.T) {
	t.Parallel()
	ctx, _ := setupBoard(t)

	res := clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "create", "--title=Review", "--json")
	require.NoError(t, res.Err)
	assert.Equal(t, float64(3), res.Data(t)["order"])

	assert.Equal(t, []string{"Todo", "In Progress", "Done", "Review"}, listTitles(t, ctx))
}

func TestCreateWithoutBoard(t *testing.T) {
	t.Parallel()
	_, _, ctx := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "create", "--title=Review")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}

func TestRename(t *testing.T) {
	t.Parallel()
	ctx, ids := setupBoard(t)

	res := clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "rename", "--id="+itoa(ids[2]), "--title=Shipped")
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"Todo", "In Progress", "Shipped"}, listTitles(t, ctx))

	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "rename", "--id=999", "--title=X")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())

	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "rename", "--id=0", "--title=X")
	assert.Equal(t, cli.ExitUsage, res.ExitCode())
}

func TestMove(t *testing.T) {
	t.Parallel()
	ctx, ids := setupBoard(t)

	res := clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "move", "--id="+itoa(ids[2]), "--index=0")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Column 'Done' moved to position 0")
	assert.Equal(t, []string{"Done", "Todo", "In Progress"}, listTitles(t, ctx))

	// Past the end lands last
	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "move", "--id="+itoa(ids[2]), "--index=10")
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"Todo", "In Progress", "Done"}, listTitles(t, ctx))

	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "move", "--id="+itoa(ids[0]), "--index=-1")
	assert.Equal(t, cli.ExitUsage, res.ExitCode())

	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "move", "--id=999", "--index=0")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}

func TestDeleteConfirmation(t *testing.T) {
	t.Parallel()
	ctx, ids := setupBoard(t)
	id := "--id=" + itoa(ids[1])

	res := clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "n\n", "delete", id)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Delete column 'In Progress'")
	assert.Contains(t, res.Stdout, "Cancelled")
	assert.Len(t, listTitles(t, ctx), 3)

	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "y\n", "delete", id)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"Todo", "Done"}, listTitles(t, ctx))
}

func TestDeleteForceAndJSON(t *testing.T) {
	t.Parallel()
	ctx, ids := setupBoard(t)

	res := clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "delete", "--id="+itoa(ids[0]), "--force")
	require.NoError(t, res.Err)

	// JSON mode never prompts
	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "delete", "--id="+itoa(ids[2]), "--json")
	require.NoError(t, res.Err)
	assert.Equal(t, true, res.JSON(t)["success"])

	assert.Equal(t, []string{"In Progress"}, listTitles(t, ctx))

	res = clitest.ExecuteCLICommand(t, ctx, ColumnCmd(), "", "delete", "--id="+itoa(ids[0]), "--force")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}
