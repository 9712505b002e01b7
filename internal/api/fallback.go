package api

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrAllEndpointsFailed = errors.New("all endpoints failed")

// Endpoint is one candidate source. Template takes the game pk as its only verb.
type Endpoint struct {
	Name     string
	Template string
}

func (e Endpoint) Path(gamePk int) string {
	return fmt.Sprintf(e.Template, gamePk)
}

// FallbackPolicy tries Endpoints in order, giving each AttemptTimeout and
// pausing Delay after every failed attempt but the last.
type FallbackPolicy struct {
	Endpoints      []Endpoint
	AttemptTimeout time.Duration
	Delay          time.Duration
}

func DefaultFallbackPolicy(attemptTimeout, delay time.Duration) FallbackPolicy {
	return FallbackPolicy{
		Endpoints: []Endpoint{
			{Name: "linescore", Template: "/v1/game/%d/linescore"},
			{Name: "boxscore", Template: "/v1/game/%d/boxscore"},
			{Name: "live-diff", Template: "/v1.1/game/%d/feed/live/diffPatch"},
		},
		AttemptTimeout: attemptTimeout,
		Delay:          delay,
	}
}

// Do runs attempt against each endpoint until one succeeds and returns it.
func (p FallbackPolicy) Do(ctx context.Context, attempt func(ctx context.Context, ep Endpoint) error) (Endpoint, error) {
	var lastErr error

	for i, ep := range p.Endpoints {
		if err := ctx.Err(); err != nil {
			return Endpoint{}, err
		}

		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if p.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.AttemptTimeout)
		}
		err := attempt(attemptCtx, ep)
		cancel()
		if err == nil {
			return ep, nil
		}
		lastErr = fmt.Errorf("%s: %w", ep.Name, err)

		if i < len(p.Endpoints)-1 && p.Delay > 0 {
			t := time.NewTimer(p.Delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return Endpoint{}, ctx.Err()
			case <-t.C:
			}
		}
	}

	if lastErr == nil {
		return Endpoint{}, ErrAllEndpointsFailed
	}
	return Endpoint{}, fmt.Errorf("%w: %w", ErrAllEndpointsFailed, lastErr)
}
