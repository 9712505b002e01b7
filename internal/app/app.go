package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mlb-gamecast/internal/config"
	"mlb-gamecast/internal/console"
	"mlb-gamecast/internal/domain"
	"mlb-gamecast/internal/game"
	"mlb-gamecast/internal/scraper"
	"mlb-gamecast/internal/service"

	"github.com/rs/zerolog"
)

const usage = `usage: gamecast [command]

commands:
  watch     follow a live game play by play (default)
  summary   inning-by-inning summary of today's games
  scores    scores page refreshed until Ctrl+C`

type GameLister interface {
	WatchableGames(ctx context.Context) []domain.GameListing
	PlayedGames(ctx context.Context) []domain.GameListing
	Summary(ctx context.Context, gamePk int) *domain.GameSummary
}

type Watcher interface {
	Run(ctx context.Context, s *game.Session) error
}

type ScoreSource interface {
	Games(ctx context.Context) ([]scraper.ScoreCard, error)
}

// App runs one command against the console. Watch sessions get their own
// interrupt scope so Ctrl+C ends the session and returns to the menu.
type App struct {
	games     GameLister
	watcher   Watcher
	scores    ScoreSource
	console   *console.Console
	refresh   time.Duration
	backoff   time.Duration
	interrupt func(context.Context) (context.Context, context.CancelFunc)
	sleep     game.Sleeper
	now       func() time.Time
	logger    zerolog.Logger
}

func New(
	games *service.GameService,
	poller *game.Poller,
	scores *scraper.Scraper,
	con *console.Console,
	cfg *config.Config,
	logger zerolog.Logger,
) *App {
	return &App{
		games:     games,
		watcher:   poller,
		scores:    scores,
		console:   con,
		refresh:   cfg.ScoresRefresh,
		backoff:   cfg.ScoresErrorBackoff,
		interrupt: notifyInterrupt,
		sleep:     game.Sleep,
		now:       time.Now,
		logger:    logger,
	}
}

func notifyInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func (a *App) Run(ctx context.Context, args []string) error {
	cmd := "watch"
	if len(args) > 0 {
		cmd = args[0]
	}
	a.logger.Debug().Str("command", cmd).Msg("running command")

	switch cmd {
	case "watch":
		return a.Watch(ctx)
	case "summary":
		return a.Summary(ctx)
	case "scores":
		return a.Scores(ctx)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	}
	return fmt.Errorf("unknown command %q\n%s", cmd, usage)
}

// Watch lists live games, follows the chosen one until it ends or the
// operator interrupts it, prints the session's stats and offers another game.
func (a *App) Watch(ctx context.Context) error {
	for {
		games := a.games.WatchableGames(ctx)
		if len(games) == 0 {
			a.console.Notice("No live games currently available.")
			return nil
		}

		a.console.LiveGames(games)
		idx, ok := a.console.Choose(fmt.Sprintf("Select a game (1-%d) or Q to quit: ", len(games)), len(games))
		if !ok {
			a.console.Info("Exiting")
			return nil
		}

		g := games[idx]
		session := game.NewSession(g.GamePk, g.HomeTeam, g.AwayTeam)
		a.watch(ctx, session)
		a.console.StatTables(session.Stats)

		if ctx.Err() != nil {
			return nil
		}
		if !a.console.Confirm("Would you like to check another game? (Y/N): ") {
			a.console.Info("Thanks for using gamecast")
			return nil
		}
	}
}

func (a *App) watch(ctx context.Context, s *game.Session) {
	sessionCtx, stop := a.interrupt(ctx)
	defer stop()

	a.console.WatchStarted(s)
	if err := a.watcher.Run(sessionCtx, s); err != nil {
		a.logger.Error().Err(err).Str("session_id", s.ID).Msg("watch session failed")
	}
	if sessionCtx.Err() != nil {
		a.console.WatchStopped()
	}
}

// Summary lists today's started games and prints the box-score view of
// each one the operator picks.
func (a *App) Summary(ctx context.Context) error {
	a.console.Title("MLB Game Inning Summarizer")
	a.console.Info("Date: " + a.now().Format("Monday, January 02, 2006") + "\n")

	games := a.games.PlayedGames(ctx)
	if len(games) == 0 {
		a.console.Notice("No completed games found for today.")
		return nil
	}
	a.console.PlayedGames(games)

	for {
		idx, ok := a.console.Choose("Enter game number to see details (q to quit): ", len(games))
		if !ok {
			return nil
		}
		g := games[idx]
		a.console.Info(fmt.Sprintf("\nLoading %s @ %s...", g.AwayTeam, g.HomeTeam))
		a.console.GameSummary(g, a.games.Summary(ctx, g.GamePk))
	}
}

// Scores prints the scraped scores page every refresh interval until
// interrupted, waiting the longer backoff after a failed scrape.
func (a *App) Scores(ctx context.Context) error {
	ctx, stop := a.interrupt(ctx)
	defer stop()

	for {
		wait := a.refresh
		cards, err := a.scores.Games(ctx)
		switch {
		case ctx.Err() != nil:
		case err != nil:
			a.logger.Warn().Err(err).Dur("backoff", a.backoff).Msg("scores scrape failed")
			a.console.Error(fmt.Sprintf("Error: %v", err))
			wait = a.backoff
		case len(cards) == 0:
			a.console.Notice("No games found or could not retrieve data.")
		default:
			a.console.Scoreboard(cards, a.now())
		}

		if err := a.sleep(ctx, wait); err != nil {
			a.console.Info("\nExiting MLB Game Tracker...")
			return nil
		}
		a.console.Info("\nRefreshing data...")
	}
}
