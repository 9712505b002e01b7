package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"mlb-gamecast/internal/constants"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type Config struct {
	StatsAPIURL string
	ScoresURL   string
	GamedayURL  string
	UserAgent   string
	DBPath      string
	LogLevel    string

	PollInterval           time.Duration
	PlayDelay              time.Duration
	ScoresRefresh          time.Duration
	ScoresErrorBackoff     time.Duration
	FallbackAttemptTimeout time.Duration
	FallbackDelay          time.Duration
	NameCacheTTL           time.Duration

	CommentarySeed int64
	ClearScreen    bool

	// Warnings lists settings that were malformed and replaced by defaults.
	// The logger does not exist yet when configuration loads.
	Warnings []string
}

func Load() (*Config, error) {
	envFileErr := godotenv.Load()

	cfg := &Config{
		StatsAPIURL: getEnv("MLB_STATS_API_URL", constants.DefaultStatsAPIURL),
		ScoresURL:   getEnv("MLB_SCORES_URL", constants.DefaultScoresURL),
		GamedayURL:  getEnv("MLB_GAMEDAY_URL", constants.DefaultGamedayURL),
		UserAgent:   getEnv("HTTP_USER_AGENT", constants.DefaultUserAgent),
		DBPath:      getEnv("DB_PATH", constants.DefaultDBPath),
		LogLevel:    getEnv("LOG_LEVEL", constants.DefaultLogLevel),
	}

	cfg.PollInterval = cfg.getPositiveDuration("POLL_INTERVAL", constants.DefaultPollInterval)
	cfg.PlayDelay = cfg.getDuration("PLAY_DELAY", constants.DefaultPlayDelay)
	cfg.ScoresRefresh = cfg.getPositiveDuration("SCORES_REFRESH", constants.DefaultScoresRefresh)
	cfg.ScoresErrorBackoff = cfg.getPositiveDuration("SCORES_ERROR_BACKOFF", constants.DefaultScoresBackoff)
	cfg.FallbackAttemptTimeout = cfg.getDuration("FALLBACK_ATTEMPT_TIMEOUT", constants.DefaultFallbackTimeout)
	cfg.FallbackDelay = cfg.getDuration("FALLBACK_DELAY", constants.DefaultFallbackDelay)
	cfg.NameCacheTTL = cfg.getDuration("NAME_CACHE_TTL", constants.DefaultNameCacheTTL)
	cfg.CommentarySeed = cfg.getInt64("COMMENTARY_SEED", 0)
	cfg.ClearScreen = cfg.getBool("CLEAR_SCREEN", false)

	if envFileErr != nil && !os.IsNotExist(envFileErr) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf(".env could not be read: %v", envFileErr))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is not a valid duration, using %s", key, v, fallback))
		return fallback
	}
	return d
}

// getPositiveDuration is getDuration for intervals where zero would spin.
func (c *Config) getPositiveDuration(key string, fallback time.Duration) time.Duration {
	d := c.getDuration(key, fallback)
	if d <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s must be positive, using %s", key, fallback))
		return fallback
	}
	return d
}

func (c *Config) getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is not an integer, using %d", key, v, fallback))
		return fallback
	}
	return n
}

func (c *Config) getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is not a boolean, using %t", key, v, fallback))
		return fallback
	}
	return b
}

var Module = fx.Provide(Load)
