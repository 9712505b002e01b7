package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mlb-gamecast/internal/config"
	"mlb-gamecast/internal/constants"
	"mlb-gamecast/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

type StatsClient struct {
	baseURL   string
	userAgent string
	client    *fasthttp.Client
	fallback  FallbackPolicy
	logger    zerolog.Logger
}

func NewStatsClient(cfg *config.Config, logger zerolog.Logger) *StatsClient {
	return &StatsClient{
		baseURL:   strings.TrimRight(cfg.StatsAPIURL, "/"),
		userAgent: cfg.UserAgent,
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		fallback: DefaultFallbackPolicy(cfg.FallbackAttemptTimeout, cfg.FallbackDelay),
		logger:   logger,
	}
}

// ListGames returns the schedule for date (today when zero). Transport and
// decoding failures are logged and yield an empty list.
func (c *StatsClient) ListGames(ctx context.Context, date time.Time) []domain.GameListing {
	url := c.baseURL + "/v1/schedule?sportId=1"
	if !date.IsZero() {
		url += "&date=" + date.Format("2006-01-02")
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ScheduleTimeout)
	defer cancel()

	resp, err := doRequest[scheduleResponse](ctx, c, url)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", url).Msg("failed to fetch schedule")
		return nil
	}

	games := resp.toListings()
	c.logger.Debug().Int("count", len(games)).Msg("schedule fetched")
	return games
}

func (c *StatsClient) GameFeed(ctx context.Context, gamePk int) (*domain.FeedSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1.1/game/%d/feed/live", c.baseURL, gamePk)
	resp, err := doRequest[liveFeedResponse](ctx, c, url)
	if err != nil {
		return nil, err
	}
	return resp.toSnapshot(gamePk), nil
}

func (c *StatsClient) Person(ctx context.Context, id int) (*domain.Player, error) {
	url := fmt.Sprintf("%s/v1/people/%d", c.baseURL, id)
	resp, err := doRequest[peopleResponse](ctx, c, url)
	if err != nil {
		return nil, err
	}
	if len(resp.People) == 0 || resp.People[0].FullName == "" {
		return nil, fmt.Errorf("person %d: %w", id, ErrNotFound)
	}
	return &domain.Player{ID: id, FullName: resp.People[0].FullName}, nil
}

// GameSummary walks the fallback endpoints until one answers and assembles
// whatever line score and box score data it carries.
func (c *StatsClient) GameSummary(ctx context.Context, gamePk int) (*domain.GameSummary, error) {
	var data gameDataResponse
	ep, err := c.fallback.Do(ctx, func(ctx context.Context, ep Endpoint) error {
		url := c.baseURL + ep.Path(gamePk)
		resp, err := doRequest[gameDataResponse](ctx, c, url)
		if err != nil {
			c.logger.Debug().Err(err).Str("endpoint", ep.Name).Int("game_pk", gamePk).Msg("summary endpoint failed")
			return err
		}
		data = *resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := data.toSummary()
	summary.Source = ep.Name
	return summary, nil
}

func doRequest[T any](ctx context.Context, c *StatsClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	// fasthttp does not watch ctx once the request is sent, so cancellation
	// is only seen here and through the deadline.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("GET %s: %w", url, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, constants.ExternalAPITimeout); err != nil {
			return nil, fmt.Errorf("GET %s: %w", url, err)
		}
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return nil, fmt.Errorf("GET %s: %w", url, ErrNotFound)
	default:
		return nil, fmt.Errorf("GET %s: %w: %d", url, ErrUnexpectedStatus, resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return &result, nil
}
