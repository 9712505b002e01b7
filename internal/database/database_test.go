package database

import (
	"path/filepath"
	"testing"

	"mlb-gamecast/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestOpenMemoryRunsMigrations(t *testing.T) {
	db, err := Open("file:database_test_open?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'players'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "players", name)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamecast.db")
	db, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestNewClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{DBPath: "file:database_test_lifecycle?mode=memory&cache=shared"}

	db, err := New(lc, cfg, zerolog.Nop())
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, db.Ping())
	lc.RequireStop()

	assert.Error(t, db.Ping())
}

func TestIsMemory(t *testing.T) {
	assert.True(t, isMemory(":memory:"))
	assert.True(t, isMemory("file:x?mode=memory&cache=shared"))
	assert.False(t, isMemory("/tmp/gamecast.db"))
}
