package constants

import "time"

const (
	DefaultPollInterval    = 10 * time.Second
	DefaultPlayDelay       = 3 * time.Second
	DefaultScoresRefresh   = 30 * time.Second
	DefaultScoresBackoff   = 60 * time.Second
	DefaultNameCacheTTL    = 24 * time.Hour
	DefaultFallbackTimeout = 5 * time.Second
	DefaultFallbackDelay   = 500 * time.Millisecond
	DefaultStatsAPIURL     = "https://statsapi.mlb.com/api"
	DefaultScoresURL       = "https://www.mlb.com/scores"
	DefaultGamedayURL      = "https://www.mlb.com/gameday"
	DefaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultDBPath          = "file:gamecast?mode=memory&cache=shared"
	DefaultLogLevel        = "warn"
)

const (
	ExternalAPITimeout = 10 * time.Second
	NameLookupTimeout  = 5 * time.Second
	ScheduleTimeout    = 10 * time.Second
	ScrapeTimeout      = 15 * time.Second
)

const (
	DBMaxOpenConns    = 4
	DBMaxIdleConns    = 4
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout    = 5 * time.Second
	NameLookupParallel = 4
)
