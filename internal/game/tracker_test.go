package game

import (
	"testing"

	"mlb-gamecast/internal/domain"

	"github.com/stretchr/testify/assert"
)

func move(runner int, start, end string) domain.RunnerMovement {
	return domain.RunnerMovement{RunnerID: runner, Start: start, End: end}
}

func TestUpdateRunners(t *testing.T) {
	tests := []struct {
		name string
		play domain.Play
		want Bases
	}{
		{
			name: "single puts batter on first",
			play: domain.Play{EventType: domain.EventSingle, BatterID: 10, Runners: []domain.RunnerMovement{move(10, "", "1B")}},
			want: Bases{10, 0, 0},
		},
		{
			name: "double overrides movement that placed batter on first",
			play: domain.Play{EventType: domain.EventDouble, BatterID: 10, Runners: []domain.RunnerMovement{move(10, "", "1B")}},
			want: Bases{0, 10, 0},
		},
		{
			name: "single moves batter off a base the movements gave him",
			play: domain.Play{EventType: domain.EventSingle, BatterID: 10, Runners: []domain.RunnerMovement{move(10, "", "2B"), move(20, "1B", "3B")}},
			want: Bases{10, 0, 20},
		},
		{
			name: "triple overwrites runner placed on third",
			play: domain.Play{EventType: domain.EventTriple, BatterID: 10, Runners: []domain.RunnerMovement{move(20, "2B", "3B")}},
			want: Bases{0, 0, 10},
		},
		{
			name: "single keeps advanced runners",
			play: domain.Play{EventType: domain.EventSingle, BatterID: 10, Runners: []domain.RunnerMovement{move(20, "1B", "3B"), move(10, "", "1B")}},
			want: Bases{10, 0, 20},
		},
		{
			name: "home run clears everything",
			play: domain.Play{EventType: domain.EventHomeRun, BatterID: 10, Runners: []domain.RunnerMovement{move(20, "1B", "3B")}},
			want: Bases{},
		},
		{
			name: "walk with empty bases puts batter on first",
			play: domain.Play{EventType: domain.EventWalk, BatterID: 10},
			want: Bases{10, 0, 0},
		},
		{
			name: "walk with a runner on does not add the batter",
			play: domain.Play{EventType: domain.EventWalk, BatterID: 10, Runners: []domain.RunnerMovement{move(20, "1B", "2B")}},
			want: Bases{0, 20, 0},
		},
		{
			name: "steal relies on movement data only",
			play: domain.Play{EventType: domain.EventSteal, BatterID: 10, Runners: []domain.RunnerMovement{move(20, "1B", "2B")}},
			want: Bases{0, 20, 0},
		},
		{
			name: "runner scoring or out is dropped",
			play: domain.Play{EventType: domain.EventOther, Runners: []domain.RunnerMovement{move(20, "3B", "score"), move(21, "1B", "")}},
			want: Bases{},
		},
		{
			name: "missing movement data yields empty bases",
			play: domain.Play{EventType: domain.EventGroundout, BatterID: 10},
			want: Bases{},
		},
		{
			name: "movement without a runner id is ignored",
			play: domain.Play{EventType: domain.EventWildPitch, Runners: []domain.RunnerMovement{move(0, "1B", "2B")}},
			want: Bases{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UpdateRunners(Bases{}, tt.play))
		})
	}
}

func TestUpdateRunners_IgnoresPriorState(t *testing.T) {
	plays := []domain.Play{
		{EventType: domain.EventSingle, BatterID: 1},
		{EventType: domain.EventWalk, BatterID: 2},
		{EventType: domain.EventFlyout, BatterID: 3, Runners: []domain.RunnerMovement{move(4, "2B", "3B")}},
		{EventType: domain.EventHomeRun, BatterID: 5},
	}
	priors := []Bases{{}, {7, 8, 9}, {0, 8, 0}}

	for _, play := range plays {
		want := UpdateRunners(Bases{}, play)
		for _, prior := range priors {
			assert.Equal(t, want, UpdateRunners(prior, play))
		}
	}
}

func TestUpdateRunners_HomeRunAfterLoadedBases(t *testing.T) {
	loaded := Bases{1, 2, 3}
	got := UpdateRunners(loaded, domain.Play{EventType: domain.EventHomeRun, BatterID: 4})
	assert.True(t, got.Empty())
}
