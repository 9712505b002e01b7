package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mlb-gamecast/internal/domain"

	"github.com/rs/zerolog"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{db: sqlDB, logger: logger}
}

func (r *PlayerRepository) Get(ctx context.Context, id int) (*domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, last_fetch_at, created_at, updated_at FROM players WHERE id = ?`, id,
	).Scan(&p.ID, &p.FullName, &p.LastFetchAt, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return &p, nil
}

// Upsert stores the player, keeping the original created_at on conflict.
func (r *PlayerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	now := time.Now().UTC()
	if player.LastFetchAt.IsZero() {
		player.LastFetchAt = now
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = now
	}
	player.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO players (id, full_name, last_fetch_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			full_name = excluded.full_name,
			last_fetch_at = excluded.last_fetch_at,
			updated_at = excluded.updated_at`,
		player.ID, player.FullName, player.LastFetchAt, player.CreatedAt, player.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Int("player_id", player.ID).Msg("failed to upsert player")
		return fmt.Errorf("failed to upsert player %d: %w", player.ID, err)
	}
	return nil
}

// ShouldRefresh reports whether the cached name for id is missing or older than ttl.
func (r *PlayerRepository) ShouldRefresh(ctx context.Context, id int, ttl time.Duration) (bool, error) {
	var lastFetchAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT last_fetch_at FROM players WHERE id = ?`, id).Scan(&lastFetchAt)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Int("player_id", id).Msg("player not cached, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Int("player_id", id).Msg("failed to get player")
		return false, err
	}

	timeSince := time.Since(lastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Int("player_id", id).
		Time("last_fetch_at", lastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if player should refresh")

	return shouldRefresh, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return n, nil
}
