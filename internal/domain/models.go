package domain

import (
	"strconv"
	"strings"
	"time"
)

type EventType string

const (
	EventStrikeout      EventType = "strikeout"
	EventWalk           EventType = "walk"
	EventSingle         EventType = "single"
	EventDouble         EventType = "double"
	EventTriple         EventType = "triple"
	EventHomeRun        EventType = "homerun"
	EventGroundout      EventType = "groundout"
	EventFlyout         EventType = "flyout"
	EventDoublePlay     EventType = "double_play"
	EventWildPitch      EventType = "wild_pitch"
	EventPassedBall     EventType = "passed_ball"
	EventSteal          EventType = "steal"
	EventPitchingChange EventType = "pitching_change"
	EventOther          EventType = "other"
)

// feed spellings that differ from our enum
var eventAliases = map[string]EventType{
	"home_run":                  EventHomeRun,
	"strike_out":                EventStrikeout,
	"strikeout_double_play":     EventStrikeout,
	"intent_walk":               EventWalk,
	"ground_out":                EventGroundout,
	"fly_out":                   EventFlyout,
	"grounded_into_double_play": EventDoublePlay,
	"pitching_substitution":     EventPitchingChange,
}

// ParseEventType maps a raw play-by-play event type onto EventType. Anything
// unrecognized becomes EventOther.
func ParseEventType(raw string) EventType {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch EventType(raw) {
	case EventStrikeout, EventWalk, EventSingle, EventDouble, EventTriple, EventHomeRun,
		EventGroundout, EventFlyout, EventDoublePlay, EventWildPitch, EventPassedBall,
		EventSteal, EventPitchingChange:
		return EventType(raw)
	}
	if et, ok := eventAliases[raw]; ok {
		return et
	}
	if strings.HasPrefix(raw, "stolen_base") {
		return EventSteal
	}
	return EventOther
}

// IsHit reports whether the event credits the batter with a hit.
func (e EventType) IsHit() bool {
	switch e {
	case EventSingle, EventDouble, EventTriple, EventHomeRun:
		return true
	}
	return false
}

type Base int

const (
	FirstBase Base = iota
	SecondBase
	ThirdBase
)

var Bases = [...]Base{FirstBase, SecondBase, ThirdBase}

// ParseBase accepts the feed's "1B"/"2B"/"3B" markers. Home, "score" and empty
// values are not occupiable.
func ParseBase(raw string) (Base, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "1B":
		return FirstBase, true
	case "2B":
		return SecondBase, true
	case "3B":
		return ThirdBase, true
	}
	return 0, false
}

func (b Base) Code() string {
	return [...]string{"1B", "2B", "3B"}[b]
}

func (b Base) Ordinal() string {
	return [...]string{"1st", "2nd", "3rd"}[b]
}

type RunnerMovement struct {
	RunnerID int
	Start    string // "" when the runner started at the plate
	End      string // "" when the runner was put out
}

type Count struct {
	Balls   int
	Strikes int
}

type Score struct {
	Away int
	Home int
}

type Play struct {
	Index       int
	EventType   EventType
	RawEvent    string
	Description string
	BatterID    int
	PitcherID   int
	Inning      int
	HalfInning  string
	Outs        int
	Count       *Count
	RBI         *int
	Score       *Score
	Runners     []RunnerMovement
}

type GameStatus string

const (
	StatusPreview GameStatus = "Preview"
	StatusLive    GameStatus = "Live"
	StatusFinal   GameStatus = "Final"
	StatusUnknown GameStatus = "Unknown"
)

func ParseGameStatus(raw string) GameStatus {
	switch GameStatus(raw) {
	case StatusPreview, StatusLive, StatusFinal:
		return GameStatus(raw)
	}
	return StatusUnknown
}

type FeedSnapshot struct {
	GamePk        int
	HomeTeam      string
	AwayTeam      string
	Status        GameStatus
	DetailedState string
	Scoreboard    Score
	Plays         []Play
}

type GameListing struct {
	GamePk        int
	HomeTeam      string
	AwayTeam      string
	Status        GameStatus
	DetailedState string
	HomeScore     int
	AwayScore     int
	Venue         string
	GameType      string
	StartTime     time.Time
}

type Player struct {
	ID          int
	FullName    string
	LastFetchAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InningLine struct {
	Num      int
	AwayRuns int
	HomeRuns int
}

type TeamStats struct {
	Hits       int
	Errors     int
	HomeRuns   int
	Strikeouts int
	Walks      int
	Avg        string
}

// GameSummary is the box-score view of a game assembled from whichever
// linescore/boxscore endpoint answered.
type GameSummary struct {
	Source    string
	Innings   []InningLine
	HasLines  bool
	AwayStats TeamStats
	HomeStats TeamStats
}

// PlayerLabel is the stand-in display name for a player whose name could not
// be resolved.
func PlayerLabel(id int) string {
	return "Player #" + strconv.Itoa(id)
}
