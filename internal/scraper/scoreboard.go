package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"mlb-gamecast/internal/config"
	"mlb-gamecast/internal/constants"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// ScoreCard is one game card from the scores page, with whatever gameday
// details could be scraped for it.
type ScoreCard struct {
	GameID       string
	AwayTeam     string
	HomeTeam     string
	AwayScore    string
	HomeScore    string
	Status       string
	StatusDetail string
	Details      *GameDetails
}

type GameDetails struct {
	Batter       string
	Pitcher      string
	Count        string
	Outs         string
	HasSituation bool
	Runners      []string
	Innings      []string
	AwayBox      *TeamBox
	HomeBox      *TeamBox
}

type TeamBox struct {
	Team     string
	Hits     string
	Errors   string
	Batters  []BatterLine
	Pitchers []PitcherLine
}

type BatterLine struct {
	Name, Pos, AB, R, H, RBI, BB, SO, Avg string
}

type PitcherLine struct {
	Name, IP, H, R, ER, BB, SO, ERA string
}

// ParseScoreboard reads the game cards of a scores page. Cards without a
// game link are skipped.
func ParseScoreboard(r io.Reader) ([]ScoreCard, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scores page: %w", err)
	}

	var cards []ScoreCard
	doc.Find("div.game-card-wrapper").Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Find("a.game-card-link").First().Attr("href")
		if !ok {
			return
		}
		href = strings.TrimRight(href, "/")
		id := href[strings.LastIndex(href, "/")+1:]
		if id == "" {
			return
		}

		teams := texts(card.Find("span.team-name--abbrev"))
		scores := texts(card.Find("span.score"))
		cards = append(cards, ScoreCard{
			GameID:       id,
			AwayTeam:     at(teams, 0),
			HomeTeam:     at(teams, 1),
			AwayScore:    at(scores, 0),
			HomeScore:    at(scores, 1),
			Status:       text(card.Find("div.game-status").First()),
			StatusDetail: text(card.Find("div.game-status-detail").First()),
		})
	})
	return cards, nil
}

// ParseGameDetails reads the at-bat, situation, line score and box score
// sections of a gameday page. Missing sections are left empty.
func ParseGameDetails(r io.Reader) (*GameDetails, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gameday page: %w", err)
	}

	d := &GameDetails{}
	if atBat := doc.Find("div.at-bat").First(); atBat.Length() > 0 {
		d.Batter = text(atBat.Find("span.batter-name").First())
		d.Pitcher = text(atBat.Find("span.pitcher-name").First())
		d.Count = text(atBat.Find("div.count").First())
	}
	if situation := doc.Find("div.situation").First(); situation.Length() > 0 {
		d.HasSituation = true
		d.Outs = text(situation.Find("div.outs").First())
		d.Runners = texts(situation.Find("div.runner"))
	}
	if ls := doc.Find("div.linescore").First(); ls.Length() > 0 {
		d.Innings = texts(ls.Find("div.inning"))
	}
	if box := doc.Find("div.boxscore").First(); box.Length() > 0 {
		teams := box.Find("div.team-stats")
		if teams.Length() >= 2 {
			d.AwayBox = parseTeamBox(teams.Eq(0))
			d.HomeBox = parseTeamBox(teams.Eq(1))
		}
	}
	return d, nil
}

func parseTeamBox(s *goquery.Selection) *TeamBox {
	box := &TeamBox{Team: text(s.Find("div.team-name").First())}

	if he := text(s.Find("div.hits-errors").First()); he != "" {
		parts := strings.Split(he, ",")
		box.Hits = strings.TrimSpace(strings.Replace(parts[0], "H", "", 1))
		if len(parts) > 1 {
			box.Errors = strings.TrimSpace(strings.Replace(parts[1], "E", "", 1))
		}
	}

	s.Find("tr.batter").Each(func(_ int, row *goquery.Selection) {
		c := texts(row.Find("td"))
		if len(c) < 8 {
			return
		}
		box.Batters = append(box.Batters, BatterLine{
			Name: c[0], Pos: c[1], AB: c[2], R: c[3], H: c[4], RBI: c[5], BB: c[6], SO: c[7], Avg: at(c, 8),
		})
	})
	s.Find("tr.pitcher").Each(func(_ int, row *goquery.Selection) {
		c := texts(row.Find("td"))
		if len(c) < 7 {
			return
		}
		box.Pitchers = append(box.Pitchers, PitcherLine{
			Name: c[0], IP: c[1], H: c[2], R: c[3], ER: c[4], BB: c[5], SO: c[6], ERA: at(c, 7),
		})
	})
	return box
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func texts(s *goquery.Selection) []string {
	out := make([]string, 0, s.Length())
	s.Each(func(_ int, el *goquery.Selection) {
		out = append(out, text(el))
	})
	return out
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// Fetcher returns the body of a page.
type Fetcher func(ctx context.Context, url string) ([]byte, error)

type Scraper struct {
	scoresURL  string
	gamedayURL string
	fetch      Fetcher
	logger     zerolog.Logger
}

func NewScraper(cfg *config.Config, logger zerolog.Logger) *Scraper {
	client := &fasthttp.Client{
		ReadTimeout:         constants.ScrapeTimeout,
		WriteTimeout:        constants.ScrapeTimeout,
		MaxResponseBodySize: 16 << 20,
	}
	return newScraper(cfg, httpFetcher(client, cfg.UserAgent), logger)
}

func newScraper(cfg *config.Config, fetch Fetcher, logger zerolog.Logger) *Scraper {
	return &Scraper{
		scoresURL:  cfg.ScoresURL,
		gamedayURL: strings.TrimRight(cfg.GamedayURL, "/"),
		fetch:      fetch,
		logger:     logger,
	}
}

// Games scrapes the scores page and then each game's gameday page. A failed
// gameday page leaves that card without details.
func (s *Scraper) Games(ctx context.Context) ([]ScoreCard, error) {
	body, err := s.fetch(ctx, s.scoresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores page: %w", err)
	}
	cards, err := ParseScoreboard(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for i := range cards {
		if err := ctx.Err(); err != nil {
			return cards, err
		}
		url := s.gamedayURL + "/" + cards[i].GameID
		page, err := s.fetch(ctx, url)
		if err != nil {
			s.logger.Warn().Err(err).Str("game_id", cards[i].GameID).Msg("failed to fetch game details")
			continue
		}
		details, err := ParseGameDetails(bytes.NewReader(page))
		if err != nil {
			s.logger.Warn().Err(err).Str("game_id", cards[i].GameID).Msg("failed to parse game details")
			continue
		}
		cards[i].Details = details
	}

	s.logger.Debug().Int("count", len(cards)).Msg("scores page scraped")
	return cards, nil
}

func httpFetcher(client *fasthttp.Client, userAgent string) Fetcher {
	return func(ctx context.Context, url string) ([]byte, error) {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(url)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set("User-Agent", userAgent)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		deadline, ok := ctx.Deadline()
		if !ok {
			deadline = time.Now().Add(constants.ScrapeTimeout)
		}
		if err := client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("GET %s: %w", url, err)
		}
		if resp.StatusCode() != fasthttp.StatusOK {
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode())
		}

		body := make([]byte, len(resp.Body()))
		copy(body, resp.Body())
		return body, nil
	}
}
