package game

import (
	"fmt"
	"math/rand"
	"strings"

	"mlb-gamecast/internal/domain"
)

var defaultFlavors = map[domain.EventType][]string{
	domain.EventStrikeout: {
		"And he goes down swinging!",
		"Swings and misses, that's strike three!",
		"Loses the battle, strikeout!",
	},
	domain.EventWalk: {
		"And he takes ball four for a walk.",
		"Works the count and draws the walk.",
		"Free pass issued to the batter.",
	},
	domain.EventSingle: {
		"Lines it into left field for a single!",
		"Base hit up the middle!",
		"Drops it in shallow center for a single.",
		"Ground ball finds a hole! Runner on first.",
	},
	domain.EventDouble: {
		"Ripped into the gap! That's a stand-up double!",
		"Off the wall! He's in at second with a double.",
		"Lined down the line for a two-bagger!",
	},
	domain.EventTriple: {
		"Driven deep to right center! He's going for three!",
		"Gap shot! The outfielder can't cut it off - triple!",
		"Off the wall and it gets away! Triple for the batter!",
	},
	domain.EventHomeRun: {
		"HIGH FLY BALL... DEEP LEFT FIELD... GONE! HOME RUN!",
		"CRUSHED! That ball is way outta here!",
		"Launches one to the upper deck! Homerun!",
		"No doubt about it! That's a moonshot!",
	},
	domain.EventGroundout: {
		"Ground ball to short, throw to first... out.",
		"Chopper to third, easy play for the out.",
		"Rolls over it, ground out to second base.",
	},
	domain.EventFlyout: {
		"High fly ball to left, caught for the out.",
		"Can of corn to center field.",
		"Lazy pop fly to the infield, caught.",
	},
	domain.EventDoublePlay: {
		"Ground ball... turn two! Double play!",
		"One-hopper to short, around the horn for two!",
		"Perfect double play ball to second base.",
	},
	domain.EventWildPitch: {
		"Wild pitch! The runner advances!",
		"Gets away from the catcher!",
		"Spiked in the dirt, gets past the backstop.",
	},
	domain.EventPassedBall: {
		"Passed ball! Runner moves up!",
		"Catcher can't handle it!",
		"Tips off the glove, runner takes the base.",
	},
	domain.EventSteal: {
		"Runner goes! SAFE at second base!",
		"Great jump! Stolen base!",
		"Slide... SAFE! Stolen base successful.",
	},
	domain.EventPitchingChange: {
		"And here comes the manager, making a pitching change.",
		"Bullpen gate swings open, new arm coming in.",
		"They're going to the pen for a fresh arm.",
	},
}

// Commentator turns plays into broadcast-style lines. It is not safe for
// concurrent use; the game loop owns it.
type Commentator struct {
	flavors map[domain.EventType][]string
	rng     *rand.Rand
}

func NewCommentator(src rand.Source) *Commentator {
	return &Commentator{flavors: defaultFlavors, rng: rand.New(src)}
}

// NewSeededCommentator seeds from seed, or from the clock when seed is zero.
func NewSeededCommentator(seed int64) *Commentator {
	if seed == 0 {
		seed = rand.Int63()
	}
	return NewCommentator(rand.NewSource(seed))
}

// WithFlavors replaces the flavor table. A nil or empty table disables flavor text.
func (c *Commentator) WithFlavors(flavors map[domain.EventType][]string) *Commentator {
	c.flavors = flavors
	return c
}

func (c *Commentator) Generate(play domain.Play) string {
	var sb strings.Builder

	if lines := c.flavors[play.EventType]; len(lines) > 0 {
		sb.WriteString(lines[c.rng.Intn(len(lines))])
		sb.WriteString(" ")
	}
	sb.WriteString(play.Description)

	var moves []string
	for _, mv := range play.Runners {
		if mv.Start == mv.End {
			continue
		}
		moves = append(moves, fmt.Sprintf("Runner from %s to %s", baseLabel(mv.Start, "home"), baseLabel(mv.End, "out")))
	}
	if len(moves) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(moves, ", "))
		sb.WriteString(".")
	}

	if play.Count != nil {
		fmt.Fprintf(&sb, " Count was %d-%d with %d out(s).", play.Count.Balls, play.Count.Strikes, play.Outs)
	}

	return sb.String()
}

func baseLabel(raw, missing string) string {
	if raw == "" {
		return missing
	}
	return raw
}
