package service

import (
	"context"
	"time"

	"mlb-gamecast/internal/api"
	"mlb-gamecast/internal/domain"

	"github.com/rs/zerolog"
)

type ScheduleSource interface {
	ListGames(ctx context.Context, date time.Time) []domain.GameListing
	GameSummary(ctx context.Context, gamePk int) (*domain.GameSummary, error)
}

type GameService struct {
	stats  ScheduleSource
	now    func() time.Time
	logger zerolog.Logger
}

func NewGameService(stats *api.StatsClient, logger zerolog.Logger) *GameService {
	return newGameService(stats, time.Now, logger)
}

func newGameService(stats ScheduleSource, now func() time.Time, logger zerolog.Logger) *GameService {
	return &GameService{stats: stats, now: now, logger: logger}
}

// WatchableGames lists today's games that are in progress or about to start.
func (s *GameService) WatchableGames(ctx context.Context) []domain.GameListing {
	var games []domain.GameListing
	for _, g := range s.stats.ListGames(ctx, time.Time{}) {
		if g.Status == domain.StatusLive || g.Status == domain.StatusPreview {
			games = append(games, g)
		}
	}
	s.logger.Debug().Int("count", len(games)).Msg("watchable games")
	return games
}

// PlayedGames lists today's games that have started, in progress or final.
func (s *GameService) PlayedGames(ctx context.Context) []domain.GameListing {
	var games []domain.GameListing
	for _, g := range s.stats.ListGames(ctx, s.now()) {
		switch g.DetailedState {
		case "Scheduled", "Postponed":
			continue
		}
		games = append(games, g)
	}
	return games
}

// Summary fetches the box-score view of a game. A nil summary means no
// endpoint had data, which callers report rather than treat as fatal.
func (s *GameService) Summary(ctx context.Context, gamePk int) *domain.GameSummary {
	summary, err := s.stats.GameSummary(ctx, gamePk)
	if err != nil {
		s.logger.Warn().Err(err).Int("game_pk", gamePk).Msg("game summary unavailable")
		return nil
	}
	s.logger.Debug().Int("game_pk", gamePk).Str("source", summary.Source).Msg("game summary fetched")
	return summary
}

type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeAwayWin
	OutcomeHomeWin
)

func GameOutcome(g domain.GameListing) Outcome {
	switch {
	case g.AwayScore > g.HomeScore:
		return OutcomeAwayWin
	case g.HomeScore > g.AwayScore:
		return OutcomeHomeWin
	}
	return OutcomeTie
}
