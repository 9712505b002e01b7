package api

import (
	"time"

	"mlb-gamecast/internal/domain"
)

type scheduleResponse struct {
	Dates []struct {
		Date  string         `json:"date"`
		Games []scheduleGame `json:"games"`
	} `json:"dates"`
}

type scheduleGame struct {
	GamePk   int    `json:"gamePk"`
	GameDate string `json:"gameDate"`
	GameType string `json:"gameType"`
	Status   struct {
		AbstractGameState string `json:"abstractGameState"`
		DetailedState     string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Home scheduleTeam `json:"home"`
		Away scheduleTeam `json:"away"`
	} `json:"teams"`
	Venue struct {
		Name string `json:"name"`
	} `json:"venue"`
}

type scheduleTeam struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	Score *int `json:"score"`
}

func (r *scheduleResponse) toListings() []domain.GameListing {
	var games []domain.GameListing
	for _, d := range r.Dates {
		for _, g := range d.Games {
			listing := domain.GameListing{
				GamePk:        g.GamePk,
				HomeTeam:      g.Teams.Home.Team.Name,
				AwayTeam:      g.Teams.Away.Team.Name,
				Status:        domain.ParseGameStatus(g.Status.AbstractGameState),
				DetailedState: g.Status.DetailedState,
				HomeScore:     deref(g.Teams.Home.Score),
				AwayScore:     deref(g.Teams.Away.Score),
				Venue:         g.Venue.Name,
				GameType:      g.GameType,
			}
			if t, err := time.Parse(time.RFC3339, g.GameDate); err == nil {
				listing.StartTime = t
			}
			games = append(games, listing)
		}
	}
	return games
}

type liveFeedResponse struct {
	GameData struct {
		Status struct {
			AbstractGameState string `json:"abstractGameState"`
			DetailedState     string `json:"detailedState"`
		} `json:"status"`
		Teams struct {
			Home struct {
				Name string `json:"name"`
			} `json:"home"`
			Away struct {
				Name string `json:"name"`
			} `json:"away"`
		} `json:"teams"`
	} `json:"gameData"`
	LiveData struct {
		Plays struct {
			AllPlays []feedPlay `json:"allPlays"`
		} `json:"plays"`
		Linescore linescore `json:"linescore"`
	} `json:"liveData"`
}

type feedPlay struct {
	Result struct {
		EventType   string `json:"eventType"`
		Description string `json:"description"`
		RBI         *int   `json:"rbi"`
		AwayScore   *int   `json:"awayScore"`
		HomeScore   *int   `json:"homeScore"`
	} `json:"result"`
	About struct {
		AtBatIndex int    `json:"atBatIndex"`
		Inning     int    `json:"inning"`
		HalfInning string `json:"halfInning"`
	} `json:"about"`
	Count *struct {
		Balls   int `json:"balls"`
		Strikes int `json:"strikes"`
		Outs    int `json:"outs"`
	} `json:"count"`
	Matchup struct {
		Batter  personRef `json:"batter"`
		Pitcher personRef `json:"pitcher"`
	} `json:"matchup"`
	Runners []struct {
		Movement struct {
			Start *string `json:"start"`
			End   *string `json:"end"`
		} `json:"movement"`
		Details struct {
			Runner personRef `json:"runner"`
		} `json:"details"`
	} `json:"runners"`
}

type personRef struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

func (f *feedPlay) toPlay(index int) domain.Play {
	play := domain.Play{
		Index:       index,
		EventType:   domain.ParseEventType(f.Result.EventType),
		RawEvent:    f.Result.EventType,
		Description: f.Result.Description,
		BatterID:    f.Matchup.Batter.ID,
		PitcherID:   f.Matchup.Pitcher.ID,
		Inning:      f.About.Inning,
		HalfInning:  f.About.HalfInning,
		RBI:         f.Result.RBI,
	}
	if f.Count != nil {
		play.Count = &domain.Count{Balls: f.Count.Balls, Strikes: f.Count.Strikes}
		play.Outs = f.Count.Outs
	}
	if f.Result.AwayScore != nil && f.Result.HomeScore != nil {
		play.Score = &domain.Score{Away: *f.Result.AwayScore, Home: *f.Result.HomeScore}
	}
	for _, r := range f.Runners {
		play.Runners = append(play.Runners, domain.RunnerMovement{
			RunnerID: r.Details.Runner.ID,
			Start:    derefString(r.Movement.Start),
			End:      derefString(r.Movement.End),
		})
	}
	return play
}

func (r *liveFeedResponse) toSnapshot(gamePk int) *domain.FeedSnapshot {
	snap := &domain.FeedSnapshot{
		GamePk:        gamePk,
		HomeTeam:      r.GameData.Teams.Home.Name,
		AwayTeam:      r.GameData.Teams.Away.Name,
		Status:        domain.ParseGameStatus(r.GameData.Status.AbstractGameState),
		DetailedState: r.GameData.Status.DetailedState,
		Scoreboard: domain.Score{
			Away: deref(r.LiveData.Linescore.Teams.Away.Runs),
			Home: deref(r.LiveData.Linescore.Teams.Home.Runs),
		},
		Plays: make([]domain.Play, 0, len(r.LiveData.Plays.AllPlays)),
	}
	for i := range r.LiveData.Plays.AllPlays {
		snap.Plays = append(snap.Plays, r.LiveData.Plays.AllPlays[i].toPlay(i))
	}
	return snap
}

type peopleResponse struct {
	People []personRef `json:"people"`
}

type linescore struct {
	Innings *[]linescoreInning `json:"innings"`
	Teams   struct {
		Home linescoreTeam `json:"home"`
		Away linescoreTeam `json:"away"`
	} `json:"teams"`
}

type linescoreInning struct {
	Num  int           `json:"num"`
	Home linescoreTeam `json:"home"`
	Away linescoreTeam `json:"away"`
}

type linescoreTeam struct {
	Runs   *int `json:"runs"`
	Hits   *int `json:"hits"`
	Errors *int `json:"errors"`
}

// gameDataResponse decodes any of the summary endpoints: a bare line score,
// a bare box score, or a full live feed carrying both under liveData.
type gameDataResponse struct {
	Innings  *[]linescoreInning `json:"innings"`
	Teams    *boxTeams          `json:"teams"`
	LiveData *struct {
		Linescore *linescore `json:"linescore"`
		Boxscore  *struct {
			Teams *boxTeams `json:"teams"`
		} `json:"boxscore"`
	} `json:"liveData"`
}

type boxTeams struct {
	Home *boxTeam `json:"home"`
	Away *boxTeam `json:"away"`
}

type boxTeam struct {
	TeamStats *struct {
		Batting *struct {
			Hits        *int    `json:"hits"`
			Errors      *int    `json:"errors"`
			HomeRuns    *int    `json:"homeRuns"`
			StrikeOuts  *int    `json:"strikeOuts"`
			BaseOnBalls *int    `json:"baseOnBalls"`
			Avg         *string `json:"avg"`
		} `json:"batting"`
	} `json:"teamStats"`
	Hits   *int `json:"hits"`
	Errors *int `json:"errors"`
}

func (r *gameDataResponse) toSummary() *domain.GameSummary {
	summary := &domain.GameSummary{}

	innings := r.Innings
	if innings == nil && r.LiveData != nil && r.LiveData.Linescore != nil {
		innings = r.LiveData.Linescore.Innings
	}
	if innings != nil {
		summary.HasLines = true
		for _, in := range *innings {
			summary.Innings = append(summary.Innings, domain.InningLine{
				Num:      in.Num,
				AwayRuns: deref(in.Away.Runs),
				HomeRuns: deref(in.Home.Runs),
			})
		}
	}

	teams := r.Teams
	if teams == nil && r.LiveData != nil && r.LiveData.Boxscore != nil {
		teams = r.LiveData.Boxscore.Teams
	}
	summary.AwayStats = teamStats(teams, func(t *boxTeams) *boxTeam { return t.Away })
	summary.HomeStats = teamStats(teams, func(t *boxTeams) *boxTeam { return t.Home })
	return summary
}

// teamStats prefers the box score batting line and falls back to the line
// score totals, defaulting to zero and ".000".
func teamStats(teams *boxTeams, side func(*boxTeams) *boxTeam) domain.TeamStats {
	stats := domain.TeamStats{Avg: ".000"}
	if teams == nil {
		return stats
	}
	team := side(teams)
	if team == nil {
		return stats
	}

	stats.Hits = deref(team.Hits)
	stats.Errors = deref(team.Errors)
	if team.TeamStats == nil || team.TeamStats.Batting == nil {
		return stats
	}

	b := team.TeamStats.Batting
	if b.Hits != nil {
		stats.Hits = *b.Hits
	}
	if b.Errors != nil {
		stats.Errors = *b.Errors
	}
	stats.HomeRuns = deref(b.HomeRuns)
	stats.Strikeouts = deref(b.StrikeOuts)
	stats.Walks = deref(b.BaseOnBalls)
	if b.Avg != nil && *b.Avg != "" {
		stats.Avg = *b.Avg
	}
	return stats
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
