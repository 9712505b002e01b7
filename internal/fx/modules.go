package fx

import (
	"mlb-gamecast/internal/api"
	"mlb-gamecast/internal/app"
	"mlb-gamecast/internal/config"
	"mlb-gamecast/internal/console"
	"mlb-gamecast/internal/database"
	"mlb-gamecast/internal/game"
	"mlb-gamecast/internal/logger"
	"mlb-gamecast/internal/repository"
	"mlb-gamecast/internal/scraper"
	"mlb-gamecast/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvidePoller(
	cfg *config.Config,
	stats *api.StatsClient,
	players *service.PlayerService,
	con *console.Console,
	logger zerolog.Logger,
) *game.Poller {
	return game.NewPoller(stats, players, con, game.NewSeededCommentator(cfg.CommentarySeed), game.PollerOptions{
		Interval:  cfg.PollInterval,
		PlayDelay: cfg.PlayDelay,
	}, logger)
}

var Module = fx.Options(
	config.Module,
	logger.Module,
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	// api clients
	fx.Provide(api.NewStatsClient),
	fx.Provide(scraper.NewScraper),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewGameService),
	// console
	fx.Provide(console.New),
	fx.Provide(ProvidePoller),
	fx.Provide(app.New),
)
