package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	return cfg
}

func fakeFactory() Game {
	return &fakeGame{endAfter: 1}
}

func TestNewSSHServerNeedsFactory(t *testing.T) {
	_, err := NewSSHServer(testServerConfig(t), nil)
	assert.Error(t, err)
}

func TestNewSSHServerHostKeyFailureOpensNoStore(t *testing.T) {
	cfg := testServerConfig(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	cfg.HostKeyPath = filepath.Join(blocker, "host_key")

	_, err := NewSSHServer(cfg, fakeFactory)
	require.Error(t, err)
	assert.NoFileExists(t, cfg.DBPath, "no database is left open behind a failed server")
}

func TestSSHServerShutdownClosesStoreAfterServer(t *testing.T) {
	cfg := testServerConfig(t)
	srv, err := NewSSHServer(cfg, fakeFactory)
	require.NoError(t, err)
	require.NotNil(t, srv.store)
	assert.FileExists(t, cfg.HostKeyPath)

	_, err = srv.store.SaveScore("tetris", storage.Result{Score: 10, Lines: 1, Level: 1})
	require.NoError(t, err)

	require.NoError(t, srv.Shutdown())

	_, err = srv.store.HighScore("tetris")
	assert.Error(t, err, "the store is closed once the server is down")

	reopened, err := storage.Open(cfg.DBPath)
	require.NoError(t, err)
	defer reopened.Close()
	best, err := reopened.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 10, best)
}
