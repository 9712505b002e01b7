package config

import (
	"testing"
	"time"

	"mlb-gamecast/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"MLB_STATS_API_URL", "MLB_SCORES_URL", "MLB_GAMEDAY_URL", "HTTP_USER_AGENT", "DB_PATH", "LOG_LEVEL",
	"POLL_INTERVAL", "PLAY_DELAY", "SCORES_REFRESH", "SCORES_ERROR_BACKOFF", "FALLBACK_ATTEMPT_TIMEOUT",
	"FALLBACK_DELAY", "NAME_CACHE_TTL", "COMMENTARY_SEED", "CLEAR_SCREEN",
}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultStatsAPIURL, cfg.StatsAPIURL)
	assert.Equal(t, constants.DefaultDBPath, cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 3*time.Second, cfg.PlayDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.FallbackDelay)
	assert.Equal(t, int64(0), cfg.CommentarySeed)
	assert.False(t, cfg.ClearScreen)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MLB_STATS_API_URL", "http://localhost:9999/api")
	t.Setenv("POLL_INTERVAL", "2s")
	t.Setenv("PLAY_DELAY", "0s")
	t.Setenv("COMMENTARY_SEED", "42")
	t.Setenv("CLEAR_SCREEN", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api", cfg.StatsAPIURL)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, time.Duration(0), cfg.PlayDelay)
	assert.Equal(t, int64(42), cfg.CommentarySeed)
	assert.True(t, cfg.ClearScreen)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLAY_DELAY", "soon")
	t.Setenv("COMMENTARY_SEED", "abc")
	t.Setenv("CLEAR_SCREEN", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultPlayDelay, cfg.PlayDelay)
	assert.Equal(t, int64(0), cfg.CommentarySeed)
	assert.False(t, cfg.ClearScreen)
	assert.Len(t, cfg.Warnings, 3)
}

func TestLoad_NonPositiveIntervalsFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLL_INTERVAL", "0s")
	t.Setenv("SCORES_REFRESH", "-5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, constants.DefaultScoresRefresh, cfg.ScoresRefresh)
	require.Len(t, cfg.Warnings, 2)
	assert.Contains(t, cfg.Warnings[0], "POLL_INTERVAL")
	assert.Contains(t, cfg.Warnings[1], "SCORES_REFRESH")
}
