package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mlb-gamecast/internal/config"
	"mlb-gamecast/internal/domain"
	"mlb-gamecast/internal/game"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

const (
	clearScreen = "\033[H\033[2J"
	ruleWidth   = 50
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noticeColor  = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	winnerColor  = color.New(color.FgGreen)
	loserColor   = color.New(color.FgRed)
	tieColor     = color.New(color.FgYellow)
	playColor    = color.New(color.Bold)
	runnersColor = color.New(color.FgHiBlack)
)

// Console is the operator's terminal: it prints game lists, play bundles and
// tables to out and reads menu answers from in.
type Console struct {
	out    io.Writer
	in     *bufio.Scanner
	clear  bool
	logger zerolog.Logger
}

func New(cfg *config.Config, logger zerolog.Logger) *Console {
	return NewWithIO(os.Stdin, color.Output, cfg.ClearScreen, logger)
}

func NewWithIO(in io.Reader, out io.Writer, clear bool, logger zerolog.Logger) *Console {
	return &Console{out: out, in: bufio.NewScanner(in), clear: clear, logger: logger}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Title(title string) {
	titleColor.Fprintln(c.out, "\n"+title)
	titleColor.Fprintln(c.out, strings.Repeat("=", len(title)))
}

func (c *Console) Info(msg string) {
	infoColor.Fprintln(c.out, msg)
}

// Notice implements game.Sink.
func (c *Console) Notice(msg string) {
	noticeColor.Fprintln(c.out, msg)
}

func (c *Console) Error(msg string) {
	errorColor.Fprintln(c.out, msg)
}

// Play implements game.Sink and prints one play bundle.
func (c *Console) Play(r game.PlayReport) {
	if c.clear {
		c.printf("%s", clearScreen)
	}
	c.printf("\n%s\n", strings.Repeat("=", ruleWidth))
	c.printf("Inning: %d %s\n", r.Play.Inning, capitalize(r.Play.HalfInning))
	c.printf("Batter: %s vs Pitcher: %s\n", r.BatterName, r.PitcherName)
	c.printf("Score: %s %d - %s %d\n", r.AwayTeam, r.Score.Away, r.HomeTeam, r.Score.Home)
	c.printf("Outs: %d\n", r.Play.Outs)

	lines := strings.Split(r.Diamond, "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "Runners:") {
			runnersColor.Fprintln(c.out, line)
			continue
		}
		c.printf("%s\n", line)
	}

	c.printf("\n")
	playColor.Fprintln(c.out, r.Commentary)
}

// Final implements game.Sink.
func (c *Console) Final(awayTeam, homeTeam string, score domain.Score) {
	titleColor.Fprintln(c.out, "\nGame over! Final score:")
	away, home := outcomeColors(score.Away, score.Home)
	away.Fprintf(c.out, "%s %d", awayTeam, score.Away)
	c.printf(" - ")
	home.Fprintf(c.out, "%s %d\n", homeTeam, score.Home)
}

func (c *Console) WatchStarted(s *game.Session) {
	c.printf("\nStarting play-by-play for %s @ %s\n", s.AwayTeam, s.HomeTeam)
	c.printf("Press Ctrl+C to stop watching at any time.\n\n")
}

func (c *Console) WatchStopped() {
	noticeColor.Fprintln(c.out, "\nStopped watching.")
}

// LiveGames lists the games available to watch.
func (c *Console) LiveGames(games []domain.GameListing) {
	c.Title("Current Live MLB Games")
	for i, g := range games {
		c.printf("%d. %s @ %s - %s\n", i+1, g.AwayTeam, g.HomeTeam, g.DetailedState)
	}
}

// PlayedGames lists today's games with their scores, in-progress scores in yellow.
func (c *Console) PlayedGames(games []domain.GameListing) {
	infoColor.Fprintln(c.out, "Today's MLB Games:")
	for i, g := range games {
		score := color.New(color.FgWhite)
		if g.Status != domain.StatusFinal {
			score = noticeColor
		}
		c.printf("%d. %s @ %s - ", i+1, g.AwayTeam, g.HomeTeam)
		score.Fprintf(c.out, "%d-%d (%s)\n", g.AwayScore, g.HomeScore, g.DetailedState)
	}
}

// Choose prompts until the operator picks 1..n or quits. It returns the
// zero-based index, or false on Q or end of input.
func (c *Console) Choose(prompt string, n int) (int, bool) {
	for {
		c.printf("\n%s", prompt)
		answer, ok := c.readLine()
		if !ok {
			return 0, false
		}
		if strings.EqualFold(answer, "q") {
			return 0, false
		}
		choice, err := strconv.Atoi(answer)
		if err != nil {
			errorColor.Fprintln(c.out, "Please enter a valid number or 'q' to quit.")
			continue
		}
		if choice < 1 || choice > n {
			errorColor.Fprintln(c.out, "Invalid selection. Please try again.")
			continue
		}
		return choice - 1, true
	}
}

// Confirm asks a Y/N question; anything but y is no.
func (c *Console) Confirm(prompt string) bool {
	c.printf("\n%s", prompt)
	answer, ok := c.readLine()
	return ok && strings.EqualFold(answer, "y")
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			c.logger.Warn().Err(err).Msg("failed to read input")
		}
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func outcomeColors(away, home int) (*color.Color, *color.Color) {
	switch {
	case away > home:
		return winnerColor, loserColor
	case home > away:
		return loserColor, winnerColor
	}
	return tieColor, tieColor
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
