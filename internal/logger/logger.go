package logger

import (
	"io"
	"os"

	"mlb-gamecast/internal/config"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New logs to stderr so that stdout stays reserved for the game console.
func New(cfg *config.Config) zerolog.Logger {
	logger := build(os.Stderr, cfg.LogLevel)
	for _, w := range cfg.Warnings {
		logger.Warn().Msg(w)
	}
	return logger
}

func build(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logger.Warn().Str("log_level", level).Msg("unknown log level, using warn")
		lvl = zerolog.WarnLevel
	}
	return logger.Level(lvl)
}

var Module = fx.Provide(New)
