package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"mlb-gamecast/internal/api"
	"mlb-gamecast/internal/config"
	"mlb-gamecast/internal/constants"
	"mlb-gamecast/internal/domain"
	"mlb-gamecast/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type PersonFetcher interface {
	Person(ctx context.Context, id int) (*domain.Player, error)
}

type PlayerStore interface {
	Get(ctx context.Context, id int) (*domain.Player, error)
	Upsert(ctx context.Context, player *domain.Player) error
	ShouldRefresh(ctx context.Context, id int, ttl time.Duration) (bool, error)
}

// PlayerService resolves player ids to names, reading through the players
// cache and refreshing entries older than the configured TTL.
type PlayerService struct {
	people PersonFetcher
	repo   PlayerStore
	ttl    time.Duration
	logger zerolog.Logger
}

func NewPlayerService(stats *api.StatsClient, repo *repository.PlayerRepository, cfg *config.Config, logger zerolog.Logger) *PlayerService {
	return newPlayerService(stats, repo, cfg.NameCacheTTL, logger)
}

func newPlayerService(people PersonFetcher, repo PlayerStore, ttl time.Duration, logger zerolog.Logger) *PlayerService {
	return &PlayerService{people: people, repo: repo, ttl: ttl, logger: logger}
}

// ResolveName never fails: ids that cannot be resolved get a "Player #id" label.
func (s *PlayerService) ResolveName(ctx context.Context, id int) string {
	name, err := s.lookup(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Int("player_id", id).Msg("using placeholder name")
		return domain.PlayerLabel(id)
	}
	return name
}

// ResolveNames looks up ids in parallel. Ids that could not be resolved are
// left out of the result.
func (s *PlayerService) ResolveNames(ctx context.Context, ids []int) map[int]string {
	var (
		mu    sync.Mutex
		names = make(map[int]string, len(ids))
		seen  = make(map[int]bool, len(ids))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.NameLookupParallel)
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true

		g.Go(func() error {
			name, err := s.lookup(gctx, id)
			if err != nil {
				s.logger.Debug().Err(err).Int("player_id", id).Msg("name lookup failed")
				return nil
			}
			mu.Lock()
			names[id] = name
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return names
}

func (s *PlayerService) lookup(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", errors.New("no player id")
	}

	cached, cacheErr := s.repo.Get(ctx, id)
	if cacheErr == nil {
		refresh, err := s.repo.ShouldRefresh(ctx, id, s.ttl)
		if err == nil && !refresh {
			return cached.FullName, nil
		}
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	player, err := s.people.Person(apiCtx, id)
	if err != nil {
		if cached != nil {
			s.logger.Debug().Err(err).Int("player_id", id).Msg("refresh failed, returning stale name")
			return cached.FullName, nil
		}
		return "", err
	}

	player.LastFetchAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, player); err != nil {
		s.logger.Warn().Err(err).Int("player_id", id).Msg("failed to cache player")
	}
	return player.FullName, nil
}
