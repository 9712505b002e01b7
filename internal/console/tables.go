package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mlb-gamecast/internal/domain"
	"mlb-gamecast/internal/game"
	"mlb-gamecast/internal/scraper"

	"github.com/olekukonko/tablewriter"
)

const (
	summaryWidth = 70
	teamColWidth = 15
)

func (c *Console) newTable(header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(c.out)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	return t
}

// StatTables prints the session's batting and pitching lines.
func (c *Console) StatTables(book *game.StatBook) {
	infoColor.Fprintln(c.out, "\nCurrent Batter Stats:")
	batters := book.SortedBatters()
	if len(batters) == 0 {
		c.printf("No at-bats recorded.\n")
	} else {
		t := c.newTable("Batter", "H-AB", "AVG", "HR")
		for _, b := range batters {
			t.Append([]string{
				b.Name,
				fmt.Sprintf("%d-%d", b.Hits, b.AtBats),
				b.AverageString(),
				strconv.Itoa(b.HomeRuns),
			})
		}
		t.Render()
	}

	infoColor.Fprintln(c.out, "\nCurrent Pitcher Stats:")
	pitchers := book.SortedPitchers()
	if len(pitchers) == 0 {
		c.printf("No pitching recorded.\n")
		return
	}
	t := c.newTable("Pitcher", "IP", "H", "ER", "K", "ERA")
	for _, p := range pitchers {
		t.Append([]string{
			p.Name,
			strconv.FormatFloat(p.InningsPitched, 'f', 1, 64),
			strconv.Itoa(p.HitsAllowed),
			strconv.Itoa(p.EarnedRuns),
			strconv.Itoa(p.Strikeouts),
			fmt.Sprintf("%.2f", p.ERA()),
		})
	}
	t.Render()
}

// GameSummary prints the box-score view of g. A nil summary prints the
// basic score line instead.
func (c *Console) GameSummary(g domain.GameListing, summary *domain.GameSummary) {
	if summary == nil {
		noticeColor.Fprintln(c.out, "Detailed stats not available for this game.")
		infoColor.Fprintf(c.out, "Basic Info: %s %d - %s %d\n", g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore)
		c.printf("Status: %s | Venue: %s\n", g.DetailedState, g.Venue)
		return
	}

	away, home := outcomeColors(g.AwayScore, g.HomeScore)
	result := "Tie"
	switch {
	case g.AwayScore > g.HomeScore:
		result = g.AwayTeam + " win"
	case g.HomeScore > g.AwayScore:
		result = g.HomeTeam + " win"
	}

	c.printf("\n%s\n", strings.Repeat("=", summaryWidth))
	c.printf("%s\n", center(fmt.Sprintf("%s vs %s", g.AwayTeam, g.HomeTeam), summaryWidth))
	c.printf("%s\n", center(fmt.Sprintf("%s | %s | %s", g.Venue, startTime(g.StartTime), result), summaryWidth))
	c.printf("%s\n", strings.Repeat("=", summaryWidth))

	if summary.HasLines {
		c.printf("\nInning-by-Inning Summary:\n")
		t := c.newTable("", truncate(g.AwayTeam), truncate(g.HomeTeam))
		for _, in := range summary.Innings {
			t.Append([]string{
				fmt.Sprintf("Inning %d", in.Num),
				away.Sprint(in.AwayRuns),
				home.Sprint(in.HomeRuns),
			})
		}
		t.Append([]string{"TOTAL", away.Sprint(g.AwayScore), home.Sprint(g.HomeScore)})
		t.Render()
	} else {
		noticeColor.Fprintln(c.out, "\nInning-by-inning data not available")
		c.printf("Final Score: %s %d - %s %d\n", g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore)
	}

	a, h := summary.AwayStats, summary.HomeStats
	c.printf("\nDetailed Stats:\n")
	t := c.newTable("Stat", truncate(g.AwayTeam), truncate(g.HomeTeam))
	t.AppendBulk([][]string{
		{"Hits", strconv.Itoa(a.Hits), strconv.Itoa(h.Hits)},
		{"Errors", strconv.Itoa(a.Errors), strconv.Itoa(h.Errors)},
		{"Home Runs", strconv.Itoa(a.HomeRuns), strconv.Itoa(h.HomeRuns)},
		{"Strikeouts", strconv.Itoa(a.Strikeouts), strconv.Itoa(h.Strikeouts)},
		{"Walks", strconv.Itoa(a.Walks), strconv.Itoa(h.Walks)},
		{"Batting Avg", a.Avg, h.Avg},
	})
	t.Render()
}

// Scoreboard prints the scraped scores page.
func (c *Console) Scoreboard(cards []scraper.ScoreCard, at time.Time) {
	if c.clear {
		c.printf("%s", clearScreen)
	}
	titleColor.Fprintf(c.out, "\nMLB Games - %s\n", at.Format("2006-01-02 15:04:05"))
	c.printf("%s\n", strings.Repeat("=", ruleWidth))

	for i, card := range cards {
		c.printf("\nGame %d: %s @ %s\n", i+1, card.AwayTeam, card.HomeTeam)
		c.printf("Score: %s %s - %s %s\n", card.AwayTeam, card.AwayScore, card.HomeTeam, card.HomeScore)
		c.printf("Status: %s - %s\n", card.Status, card.StatusDetail)

		if d := card.Details; d != nil {
			if d.HasSituation {
				c.printf("\nCurrent Situation:\n")
				c.printf("Outs: %s\n", d.Outs)
				if len(d.Runners) > 0 {
					c.printf("Runners: %s\n", strings.Join(d.Runners, ", "))
				} else {
					c.printf("Bases empty\n")
				}
				if d.Batter != "" {
					c.printf("\nAt Bat: %s\n", d.Batter)
					c.printf("Pitcher: %s\n", d.Pitcher)
					c.printf("Count: %s\n", d.Count)
				}
			}
			if len(d.Innings) > 0 {
				c.printf("\nInning Scores:\n%s\n", strings.Join(d.Innings, " "))
			}
			if d.AwayBox != nil && d.HomeBox != nil {
				c.printf("\nTeam Stats:\n")
				t := c.newTable("Team", "H", "E")
				t.Append([]string{d.AwayBox.Team, d.AwayBox.Hits, d.AwayBox.Errors})
				t.Append([]string{d.HomeBox.Team, d.HomeBox.Hits, d.HomeBox.Errors})
				t.Render()
			}
		}
		c.printf("%s\n", strings.Repeat("-", ruleWidth))
	}
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > teamColWidth {
		return string(r[:teamColWidth])
	}
	return s
}

func startTime(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("03:04 PM")
}
