package game

import (
	"testing"

	"mlb-gamecast/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestStatBook_ThreeSingles(t *testing.T) {
	book := NewStatBook()
	names := Matchup{BatterName: "Juan Soto", PitcherName: "Gerrit Cole"}

	for i := 0; i < 3; i++ {
		book.Apply(domain.Play{EventType: domain.EventSingle, BatterID: 1, PitcherID: 9}, names)
	}

	require.Contains(t, book.Batters, 1)
	assert.Equal(t, 3, book.Batters[1].Hits)
	assert.Equal(t, 3, book.Batters[1].AtBats)
	assert.Equal(t, 0, book.Batters[1].HomeRuns)
	assert.Equal(t, "Juan Soto", book.Batters[1].Name)
	assert.Equal(t, 3, book.Pitchers[9].HitsAllowed)
}

func TestStatBook_StrikeoutTouchesPitcherOnly(t *testing.T) {
	book := NewStatBook()
	book.Apply(domain.Play{EventType: domain.EventStrikeout, BatterID: 1, PitcherID: 9}, Matchup{PitcherName: "Cole"})

	assert.Empty(t, book.Batters)
	require.Contains(t, book.Pitchers, 9)
	assert.Equal(t, 1, book.Pitchers[9].Strikeouts)

	book.Apply(domain.Play{EventType: domain.EventStrikeout, BatterID: 2, PitcherID: 9}, Matchup{PitcherName: "Cole"})
	assert.Equal(t, 2, book.Pitchers[9].Strikeouts)
	assert.Empty(t, book.Batters)
}

func TestStatBook_HomeRunChargesRBIAsEarned(t *testing.T) {
	book := NewStatBook()
	book.Apply(domain.Play{EventType: domain.EventHomeRun, BatterID: 1, PitcherID: 9, RBI: intPtr(3)}, Matchup{})

	assert.Equal(t, 1, book.Batters[1].HomeRuns)
	assert.Equal(t, 1, book.Batters[1].Hits)
	assert.Equal(t, 0, book.Batters[1].RBI)
	assert.Equal(t, 3, book.Pitchers[9].EarnedRuns)
	assert.InDelta(t, 27.0, book.Pitchers[9].ERA(), 1e-9)
}

func TestStatBook_HitWithoutRBI(t *testing.T) {
	book := NewStatBook()
	book.Apply(domain.Play{EventType: domain.EventDouble, BatterID: 1, PitcherID: 9}, Matchup{})
	assert.Equal(t, 0, book.Pitchers[9].EarnedRuns)
}

func TestStatBook_OtherEventsLeaveBookUnchanged(t *testing.T) {
	book := NewStatBook()
	for _, et := range []domain.EventType{domain.EventWalk, domain.EventGroundout, domain.EventFlyout, domain.EventDoublePlay, domain.EventSteal, domain.EventOther} {
		book.Apply(domain.Play{EventType: et, BatterID: 1, PitcherID: 9, RBI: intPtr(1)}, Matchup{})
	}
	assert.Empty(t, book.Batters)
	assert.Empty(t, book.Pitchers)
}

func TestStatBook_MissingMatchupIDsSkipped(t *testing.T) {
	book := NewStatBook()
	book.Apply(domain.Play{EventType: domain.EventSingle, BatterID: 0, PitcherID: 9, RBI: intPtr(1)}, Matchup{})
	book.Apply(domain.Play{EventType: domain.EventDouble, BatterID: 1, PitcherID: 0}, Matchup{})
	book.Apply(domain.Play{EventType: domain.EventStrikeout, BatterID: 1, PitcherID: 0}, Matchup{})

	assert.NotContains(t, book.Batters, 0)
	assert.NotContains(t, book.Pitchers, 0)
	require.Contains(t, book.Batters, 1)
	assert.Equal(t, 1, book.Batters[1].Hits)
	require.Contains(t, book.Pitchers, 9)
	assert.Equal(t, 1, book.Pitchers[9].HitsAllowed)
	assert.Equal(t, 1, book.Pitchers[9].EarnedRuns)
	assert.Equal(t, 0, book.Pitchers[9].Strikeouts)
}

func TestBatterRecord_AverageString(t *testing.T) {
	tests := []struct {
		hits, atBats int
		want         string
	}{
		{0, 0, ".000"},
		{0, 4, ".000"},
		{1, 3, ".333"},
		{2, 3, ".667"},
		{3, 3, "1.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BatterRecord{Hits: tt.hits, AtBats: tt.atBats}.AverageString())
	}
}

func TestPitcherRecord_ERA(t *testing.T) {
	assert.InDelta(t, 0.0, PitcherRecord{}.ERA(), 1e-9)
	assert.InDelta(t, 18.0, PitcherRecord{EarnedRuns: 2}.ERA(), 1e-9)
	assert.InDelta(t, 3.0, PitcherRecord{EarnedRuns: 2, InningsPitched: 6}.ERA(), 1e-9)
}

func TestStatBook_SortedOutput(t *testing.T) {
	book := NewStatBook()
	book.Apply(domain.Play{EventType: domain.EventSingle, BatterID: 2, PitcherID: 9}, Matchup{BatterName: "Zeta", PitcherName: "P"})
	book.Apply(domain.Play{EventType: domain.EventSingle, BatterID: 1, PitcherID: 8}, Matchup{BatterName: "Alpha", PitcherName: "P"})

	batters := book.SortedBatters()
	require.Len(t, batters, 2)
	assert.Equal(t, "Alpha", batters[0].Name)
	assert.Equal(t, "Zeta", batters[1].Name)

	pitchers := book.SortedPitchers()
	require.Len(t, pitchers, 2)
	assert.Equal(t, 8, pitchers[0].ID)
}
