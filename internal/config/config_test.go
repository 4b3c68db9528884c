package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config lookups at an empty temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{EnvDBPath, EnvLogLevel, EnvLogFile, EnvUser} {
		t.Setenv(key, "")
	}
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Database.Path)
	assert.Empty(t, cfg.User.Email)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tracker", "config.yaml"), `database:
  path: /tmp/tracker-test.db
log:
  level: debug
user:
  email: me@example.com
`)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/tracker-test.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "me@example.com", cfg.User.Email)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tracker", "config.yaml"), "user:\n  email: a@b.c\n")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "a@b.c", cfg.User.Email)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tracker", "config.yaml"), "database: [unclosed\n")

	_, err := Load()

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, filepath.Join(dir, "tracker", "config.yaml"), parseErr.Path)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tracker", "config.yaml"), "log:\n  level: debug\n")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvUser, "env@example.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "env@example.com", cfg.User.Email)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv(EnvDBPath)
	writeFile(t, filepath.Join(dir, DotEnvFile), EnvDBPath+"=/tmp/from-dotenv.db\n")
	t.Cleanup(func() { os.Unsetenv(EnvDBPath) })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.Database.Path)
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Database.Path = "/data/tracker.db"
	cfg.User.Email = "saved@example.com"

	require.NoError(t, cfg.Save())
	loaded, err := Load()

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
