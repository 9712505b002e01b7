package game

import (
	"fmt"
	"sort"

	"mlb-gamecast/internal/domain"
)

type BatterRecord struct {
	ID       int
	Name     string
	AtBats   int
	Hits     int
	HomeRuns int
	RBI      int
}

// AverageString formats hits/at-bats the way a box score does: ".333",
// "1.000", and ".000" when there are no at-bats.
func (r BatterRecord) AverageString() string {
	if r.AtBats == 0 {
		return ".000"
	}
	thousandths := (r.Hits*1000 + r.AtBats/2) / r.AtBats
	if thousandths >= 1000 {
		return fmt.Sprintf("%d.%03d", thousandths/1000, thousandths%1000)
	}
	return fmt.Sprintf(".%03d", thousandths)
}

type PitcherRecord struct {
	ID             int
	Name           string
	InningsPitched float64
	HitsAllowed    int
	EarnedRuns     int
	Strikeouts     int
}

// ERA is earned runs per nine innings. With no innings recorded the divisor
// is one.
func (r PitcherRecord) ERA() float64 {
	ip := r.InningsPitched
	if ip <= 0 {
		ip = 1
	}
	return float64(r.EarnedRuns) * 9 / ip
}

// Matchup carries the display names resolved for a play's batter and pitcher.
type Matchup struct {
	BatterName  string
	PitcherName string
}

// StatBook accumulates batting and pitching lines for one session.
type StatBook struct {
	Batters  map[int]*BatterRecord
	Pitchers map[int]*PitcherRecord
}

func NewStatBook() *StatBook {
	return &StatBook{
		Batters:  make(map[int]*BatterRecord),
		Pitchers: make(map[int]*PitcherRecord),
	}
}

// Apply credits one play. Hits go to the batter (hit + at-bat, plus a home run
// when applicable) and to the pitcher (hit allowed, and the play's RBI counted
// as earned runs). Strikeouts go to the pitcher only. Every other event leaves
// the book untouched, so records only appear once they have something to show.
// A side whose id is missing from the play is skipped.
//
// Known approximations: every RBI is charged as an earned run, strikeouts and
// outs do not add at-bats, and innings pitched is never advanced.
func (b *StatBook) Apply(play domain.Play, names Matchup) {
	switch {
	case play.EventType.IsHit():
		if play.BatterID != 0 {
			batter := b.batter(play.BatterID, names.BatterName)
			batter.Hits++
			batter.AtBats++
			if play.EventType == domain.EventHomeRun {
				batter.HomeRuns++
			}
		}

		if play.PitcherID != 0 {
			pitcher := b.pitcher(play.PitcherID, names.PitcherName)
			pitcher.HitsAllowed++
			if play.RBI != nil {
				pitcher.EarnedRuns += *play.RBI
			}
		}
	case play.EventType == domain.EventStrikeout:
		if play.PitcherID != 0 {
			b.pitcher(play.PitcherID, names.PitcherName).Strikeouts++
		}
	}
}

func (b *StatBook) batter(id int, name string) *BatterRecord {
	rec, ok := b.Batters[id]
	if !ok {
		rec = &BatterRecord{ID: id, Name: name}
		b.Batters[id] = rec
	}
	return rec
}

func (b *StatBook) pitcher(id int, name string) *PitcherRecord {
	rec, ok := b.Pitchers[id]
	if !ok {
		rec = &PitcherRecord{ID: id, Name: name}
		b.Pitchers[id] = rec
	}
	return rec
}

// SortedBatters returns copies ordered by name then id.
func (b *StatBook) SortedBatters() []BatterRecord {
	out := make([]BatterRecord, 0, len(b.Batters))
	for _, r := range b.Batters {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (b *StatBook) SortedPitchers() []PitcherRecord {
	out := make([]PitcherRecord, 0, len(b.Pitchers))
	for _, r := range b.Pitchers {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
