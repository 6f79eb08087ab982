package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dragboard/internal/auth"
	"github.com/thenoetrevino/dragboard/internal/store"
	"github.com/thenoetrevino/dragboard/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Parallel()
	app := New(testutil.SetupTestDB(t))

	assert.NotNil(t, app.UserService)
	assert.NotNil(t, app.BoardService)
	assert.NotNil(t, app.ColumnService)
	assert.NotNil(t, app.TaskService)
	assert.NotNil(t, app.Authenticator)
	assert.NotNil(t, app.Repo())
}

func TestLocalBackendDrivesStore(t *testing.T) {
	t.Parallel()
	app := New(testutil.SetupTestDB(t), WithDefaultColumns([]string{"Only"}))
	ctx := context.Background()

	p, err := app.Principal(ctx, "alice")
	require.NoError(t, err)
	again, err := app.Principal(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, p.UserID, again.UserID, "same name resolves to the same user")

	s := store.New(app.LocalBackend(p))
	require.NoError(t, s.Load(ctx))
	b, err := s.CreateBoard(ctx, "Mine")
	require.NoError(t, err)
	require.Len(t, b.Columns, 1)
	assert.Equal(t, "Only", b.Columns[0].Title)

	userCtx, err := app.As(ctx, "alice")
	require.NoError(t, err)
	got, err := app.BoardService.GetBoard(userCtx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestRouterUsesAuthenticator(t *testing.T) {
	t.Parallel()
	app := New(testutil.SetupTestDB(t))
	_, token, err := app.UserService.CreateUser(context.Background(), "alice")
	require.NoError(t, err)

	p, err := app.Authenticator.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Name)
	_, err = app.Authenticator.Authenticate(context.Background(), "nope")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/api/board", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	app.Router(nil).Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
