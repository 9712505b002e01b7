package game

import (
	"math/rand"
	"strings"
	"testing"

	"mlb-gamecast/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentator_UnknownEventIsDescriptionOnly(t *testing.T) {
	c := NewCommentator(rand.NewSource(1))

	play := domain.Play{EventType: domain.EventOther, Description: "Catcher's interference."}
	assert.Equal(t, "Catcher's interference.", c.Generate(play))

	play.Count = &domain.Count{Balls: 1, Strikes: 2}
	play.Outs = 2
	assert.Equal(t, "Catcher's interference. Count was 1-2 with 2 out(s).", c.Generate(play))
}

func TestCommentator_FlavorIsDeterministicForSeed(t *testing.T) {
	play := domain.Play{EventType: domain.EventHomeRun, Description: "Judge homers (30) on a fly ball to left field."}

	a := NewCommentator(rand.NewSource(42))
	b := NewCommentator(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Generate(play), b.Generate(play))
	}

	got := a.Generate(play)
	require.True(t, strings.HasSuffix(got, " "+play.Description))
	flavor := strings.TrimSuffix(got, " "+play.Description)
	assert.Contains(t, defaultFlavors[domain.EventHomeRun], flavor)
}

func TestCommentator_RunnerClause(t *testing.T) {
	c := NewCommentator(rand.NewSource(1)).WithFlavors(nil)

	play := domain.Play{
		EventType:   domain.EventSingle,
		Description: "Soto singles on a line drive to right fielder.",
		Runners: []domain.RunnerMovement{
			{RunnerID: 1, Start: "1B", End: "3B"},
			{RunnerID: 2, Start: "", End: "1B"},
			{RunnerID: 3, Start: "2B", End: "2B"},
			{RunnerID: 4, Start: "3B", End: "score"},
		},
	}

	want := "Soto singles on a line drive to right fielder. " +
		"Runner from 1B to 3B, Runner from home to 1B, Runner from 3B to score."
	assert.Equal(t, want, c.Generate(play))
}

func TestCommentator_PutOutRunner(t *testing.T) {
	c := NewCommentator(rand.NewSource(1)).WithFlavors(nil)
	play := domain.Play{
		EventType:   domain.EventDoublePlay,
		Description: "Grounds into a double play.",
		Outs:        2,
		Count:       &domain.Count{Balls: 0, Strikes: 1},
		Runners:     []domain.RunnerMovement{{RunnerID: 1, Start: "1B", End: ""}},
	}
	assert.Equal(t, "Grounds into a double play. Runner from 1B to out. Count was 0-1 with 2 out(s).", c.Generate(play))
}
