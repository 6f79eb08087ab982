package task

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/cli/board"
	clitest "github.com/thenoetrevino/dragboard/internal/testutil/cli"
)

type fixture struct {
	ctx     context.Context
	columns []string // column IDs as flag values, in board order
}

func setup(t *testing.T) fixture {
	t.Helper()
	_, _, ctx := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, ctx, board.BoardCmd(), "", "create", "--title=Board", "--json")
	require.NoError(t, res.Err)

	f := fixture{ctx: ctx}
	for _, c := range res.Data(t)["columns"].([]interface{}) {
		f.columns = append(f.columns, strconv.Itoa(clitest.ID(t, c.(map[string]interface{}))))
	}
	return f
}

func (f fixture) run(t *testing.T, args ...string) clitest.Result {
	t.Helper()
	return clitest.ExecuteCLICommand(t, f.ctx, TaskCmd(), "", args...)
}

func (f fixture) create(t *testing.T, column, title string) string {
	t.Helper()
	res := f.run(t, "create", "--column="+column, "--title="+title, "--quiet")
	require.NoError(t, res.Err, res.Stderr)
	return res.Stdout[:len(res.Stdout)-1]
}

// titles returns each column's task titles in order, checking orders are contiguous
func (f fixture) titles(t *testing.T) [][]string {
	t.Helper()
	res := clitest.ExecuteCLICommand(t, f.ctx, board.BoardCmd(), "", "show", "--json")
	require.NoError(t, res.Err)

	var out [][]string
	for _, c := range res.Data(t)["columns"].([]interface{}) {
		col := c.(map[string]interface{})
		titles := []string{}
		tasks, _ := col["tasks"].([]interface{})
		for i, tk := range tasks {
			task := tk.(map[string]interface{})
			assert.Equal(t, float64(i), task["order"], "task %v", task["title"])
			titles = append(titles, task["title"].(string))
		}
		out = append(out, titles)
	}
	return out
}

func TestCreate(t *testing.T) {
	t.Parallel()
	f := setup(t)

	res := f.run(t, "create", "--column="+f.columns[0], "--title=First", "--description=**bold**", "--json")
	require.NoError(t, res.Err)
	data := res.Data(t)
	assert.Equal(t, "First", data["title"])
	assert.Equal(t, "**bold**", data["description"])
	assert.Equal(t, float64(0), data["order"])

	f.create(t, f.columns[0], "Second")
	assert.Equal(t, [][]string{{"First", "Second"}, {}, {}}, f.titles(t))
}

func TestCreateErrors(t *testing.T) {
	t.Parallel()
	f := setup(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"blank title", []string{"create", "--column=" + f.columns[0], "--title=  "}, cli.ExitValidation},
		{"unknown column", []string{"create", "--column=999", "--title=X"}, cli.ExitNotFound},
		{"invalid column", []string{"create", "--column=-2", "--title=X"}, cli.ExitUsage},
	}
	for _, tt := range tests {
		res := f.run(t, tt.args...)
		require.Error(t, res.Err, tt.name)
		assert.Equal(t, tt.code, res.ExitCode(), tt.name)
	}
	assert.Equal(t, [][]string{{}, {}, {}}, f.titles(t))
}

func TestShowAndUpdate(t *testing.T) {
	t.Parallel()
	f := setup(t)
	id := f.create(t, f.columns[1], "Draft")

	res := f.run(t, "update", "--id="+id, "--description=notes")
	require.NoError(t, res.Err)

	res = f.run(t, "show", "--id="+id, "--json")
	require.NoError(t, res.Err)
	data := res.Data(t)
	assert.Equal(t, "Draft", data["title"])
	assert.Equal(t, "notes", data["description"])

	res = f.run(t, "update", "--id="+id, "--title=Final")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Final")

	res = f.run(t, "update", "--id="+id)
	assert.Equal(t, cli.ExitUsage, res.ExitCode())

	res = f.run(t, "show", "--id=999")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}

func TestDeleteCloseGap(t *testing.T) {
	t.Parallel()
	f := setup(t)
	f.create(t, f.columns[0], "A")
	b := f.create(t, f.columns[0], "B")
	f.create(t, f.columns[0], "C")

	res := f.run(t, "delete", "--id="+b)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "deleted")

	assert.Equal(t, [][]string{{"A", "C"}, {}, {}}, f.titles(t))

	res = f.run(t, "delete", "--id="+b)
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}

func TestMoveWithinColumn(t *testing.T) {
	t.Parallel()
	f := setup(t)
	f.create(t, f.columns[0], "A")
	f.create(t, f.columns[0], "B")
	c := f.create(t, f.columns[0], "C")

	require.NoError(t, f.run(t, "move", "--id="+c, "--index=0").Err)
	assert.Equal(t, [][]string{{"C", "A", "B"}, {}, {}}, f.titles(t))

	// Past the end lands last
	require.NoError(t, f.run(t, "move", "--id="+c, "--index=50").Err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {}, {}}, f.titles(t))
}

func TestMoveAcrossColumns(t *testing.T) {
	t.Parallel()
	f := setup(t)
	a := f.create(t, f.columns[0], "A")
	f.create(t, f.columns[0], "B")
	f.create(t, f.columns[2], "X")

	res := f.run(t, "move", "--id="+a, "--column="+f.columns[2], "--index=0", "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, a+"\n", res.Stdout)
	assert.Equal(t, [][]string{{"B"}, {}, {"A", "X"}}, f.titles(t))

	// Into an empty column
	res = f.run(t, "move", "--id="+a, "--column="+f.columns[1], "--index=0")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "In Progress")
	assert.Equal(t, [][]string{{"B"}, {"A"}, {"X"}}, f.titles(t))
}

func TestMoveErrors(t *testing.T) {
	t.Parallel()
	f := setup(t)
	a := f.create(t, f.columns[0], "A")

	assert.Equal(t, cli.ExitUsage, f.run(t, "move", "--id="+a, "--index=-1").ExitCode())
	assert.Equal(t, cli.ExitNotFound, f.run(t, "move", "--id=999", "--index=0").ExitCode())
	assert.Equal(t, cli.ExitNotFound, f.run(t, "move", "--id="+a, "--column=999", "--index=0").ExitCode())
	assert.Equal(t, [][]string{{"A"}, {}, {}}, f.titles(t))
}

func TestOtherUsersTasksAreHidden(t *testing.T) {
	t.Parallel()
	_, application, ctx := clitest.SetupCLITest(t)
	require.NoError(t, clitest.ExecuteCLICommand(t, ctx, board.BoardCmd(), "", "create", "--title=Mine").Err)

	res := clitest.ExecuteCLICommand(t, ctx, board.BoardCmd(), "", "show", "--json")
	require.NoError(t, res.Err)
	column := strconv.Itoa(clitest.ID(t, res.Data(t)["columns"].([]interface{})[0].(map[string]interface{})))

	res = clitest.ExecuteCLICommand(t, ctx, TaskCmd(), "", "create", "--column="+column, "--title=Secret", "--quiet")
	require.NoError(t, res.Err)
	id := res.Stdout[:len(res.Stdout)-1]

	other := clitest.ContextAs(t, application, "intruder")
	require.NoError(t, clitest.ExecuteCLICommand(t, other, board.BoardCmd(), "", "create", "--title=Theirs").Err)

	res = clitest.ExecuteCLICommand(t, other, TaskCmd(), "", "delete", "--id="+id)
	assert.Equal(t, cli.ExitUnauthorized, res.ExitCode())

	res = clitest.ExecuteCLICommand(t, other, TaskCmd(), "", "create", "--column="+column, "--title=Sneaky")
	assert.Equal(t, cli.ExitUnauthorized, res.ExitCode())
}
