package game

import (
	"context"
	"fmt"
	"time"

	"mlb-gamecast/internal/constants"
	"mlb-gamecast/internal/domain"

	"github.com/rs/zerolog"
)

type FeedSource interface {
	GameFeed(ctx context.Context, gamePk int) (*domain.FeedSnapshot, error)
}

// NameResolver maps player ids to display names. Implementations must not
// fail: ids they cannot resolve are simply missing from the result.
type NameResolver interface {
	ResolveNames(ctx context.Context, ids []int) map[int]string
}

// PlayReport is everything shown for one processed play.
type PlayReport struct {
	SessionID   string
	Play        domain.Play
	AwayTeam    string
	HomeTeam    string
	BatterName  string
	PitcherName string
	Score       domain.Score
	Diamond     string
	Commentary  string
}

type Sink interface {
	Play(report PlayReport)
	Notice(msg string)
	Final(awayTeam, homeTeam string, score domain.Score)
}

// Sleeper blocks for d or until ctx is done, returning ctx.Err() in the latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type PollerOptions struct {
	Interval  time.Duration
	PlayDelay time.Duration
	Sleep     Sleeper
}

type Poller struct {
	feed        FeedSource
	names       NameResolver
	sink        Sink
	commentator *Commentator
	interval    time.Duration
	playDelay   time.Duration
	sleep       Sleeper
	logger      zerolog.Logger
}

func NewPoller(feed FeedSource, names NameResolver, sink Sink, commentator *Commentator, opts PollerOptions, logger zerolog.Logger) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = constants.DefaultPollInterval
	}
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}
	return &Poller{
		feed:        feed,
		names:       names,
		sink:        sink,
		commentator: commentator,
		interval:    opts.Interval,
		playDelay:   opts.PlayDelay,
		sleep:       opts.Sleep,
		logger:      logger,
	}
}

// Run polls the game until the feed reports it final or ctx is cancelled.
// Neither is an error; fetch failures are reported to the sink and retried on
// the next tick.
func (p *Poller) Run(ctx context.Context, s *Session) error {
	logger := p.logger.With().Str("session_id", s.ID).Int("game_pk", s.GamePk).Logger()
	logger.Info().Str("away", s.AwayTeam).Str("home", s.HomeTeam).Msg("watching game")

	for {
		if ctx.Err() != nil {
			logger.Info().Int("cursor", s.Cursor).Msg("watch cancelled")
			return nil
		}

		final, err := p.Tick(ctx, s)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info().Int("cursor", s.Cursor).Msg("watch cancelled")
				return nil
			}
			logger.Warn().Err(err).Int("cursor", s.Cursor).Msg("poll failed, retrying next tick")
			p.sink.Notice(fmt.Sprintf("Could not refresh the game feed (%v). Retrying in %s.", err, p.interval))
		}
		if final {
			logger.Info().Int("plays", s.Cursor).Msg("game final")
			return nil
		}

		if err := p.sleep(ctx, p.interval); err != nil {
			logger.Info().Int("cursor", s.Cursor).Msg("watch cancelled")
			return nil
		}
	}
}

// Tick performs one fetch-and-process cycle. It reports whether the game is
// over. On a fetch error nothing is processed and the session is unchanged.
func (p *Poller) Tick(ctx context.Context, s *Session) (bool, error) {
	snap, err := p.feed.GameFeed(ctx, s.GamePk)
	if err != nil {
		return false, fmt.Errorf("fetching feed for game %d: %w", s.GamePk, err)
	}
	if s.AwayTeam == "" {
		s.AwayTeam = snap.AwayTeam
	}
	if s.HomeTeam == "" {
		s.HomeTeam = snap.HomeTeam
	}

	if len(snap.Plays) > s.Cursor {
		fresh := snap.Plays[s.Cursor:]
		p.logger.Debug().Str("session_id", s.ID).Int("cursor", s.Cursor).Int("new_plays", len(fresh)).Msg("processing new plays")

		for i, play := range fresh {
			if i > 0 && p.playDelay > 0 {
				if err := p.sleep(ctx, p.playDelay); err != nil {
					return false, err
				}
			}
			p.process(ctx, s, snap.Scoreboard, play)
		}
	}

	if snap.Status == domain.StatusFinal {
		p.sink.Final(s.AwayTeam, s.HomeTeam, snap.Scoreboard)
		return true, nil
	}
	return false, nil
}

// process applies one play to the session and emits its report. Name lookups
// run on a context detached from cancellation so a play is always applied in
// full.
func (p *Poller) process(ctx context.Context, s *Session, scoreboard domain.Score, play domain.Play) {
	bases := UpdateRunners(s.Bases, play)

	ids := []int{play.BatterID, play.PitcherID}
	for _, base := range domain.Bases {
		if id, ok := bases.Runner(base); ok {
			ids = append(ids, id)
		}
	}

	lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.NameLookupTimeout)
	names := p.names.ResolveNames(lookupCtx, ids)
	cancel()

	nameOf := func(id int) string {
		if n := names[id]; n != "" {
			return n
		}
		return domain.PlayerLabel(id)
	}

	matchup := Matchup{BatterName: nameOf(play.BatterID), PitcherName: nameOf(play.PitcherID)}
	commentary := p.commentator.Generate(play)

	s.Bases = bases
	s.Stats.Apply(play, matchup)
	s.Cursor++

	score := scoreboard
	if play.Score != nil {
		score = *play.Score
	}

	p.sink.Play(PlayReport{
		SessionID:   s.ID,
		Play:        play,
		AwayTeam:    s.AwayTeam,
		HomeTeam:    s.HomeTeam,
		BatterName:  matchup.BatterName,
		PitcherName: matchup.PitcherName,
		Score:       score,
		Diamond:     RenderDiamond(bases, nameOf),
		Commentary:  commentary,
	})
}

