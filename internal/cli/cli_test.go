package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tracker/internal/app"
	"github.com/thenoetrevino/tracker/internal/database"
)

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	application := app.New(db)
	t.Cleanup(func() { _ = application.Close() })

	c, err := GetCLIFromContext(WithApp(context.Background(), application))
	require.NoError(t, err)

	assert.Same(t, application, c.App)
	require.NotNil(t, c.Config)
	assert.Empty(t, c.Config.User.Email)

	// The caller owns an injected App, so Close leaves it usable
	require.NoError(t, c.Close())
	assert.NoError(t, db.Ping())
}

func TestNewCLI_UsesConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("TRACKER_DB_PATH", dir+"/data/tracker.db")
	t.Setenv("TRACKER_LOG_FILE", dir+"/logs/tracker.log")
	t.Setenv("TRACKER_LOG_LEVEL", "debug")
	t.Setenv("TRACKER_USER", "me@example.com")
	t.Chdir(dir)

	c, err := GetCLIFromContext(context.Background())
	require.NoError(t, err)
	t.Cleanup(restoreLogging)

	assert.Equal(t, "me@example.com", c.Config.User.Email)
	assert.FileExists(t, dir+"/data/tracker.db")
	assert.FileExists(t, dir+"/logs/tracker.log")

	require.NoError(t, c.Close())
	assert.Error(t, c.App.Repo().DB().Ping(), "owned database should be closed")
}
