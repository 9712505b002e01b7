package game

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Session is everything the game loop mutates while watching one game. It is
// created fresh for each game and never shared across goroutines.
type Session struct {
	ID       string
	GamePk   int
	HomeTeam string
	AwayTeam string

	// Cursor is the number of plays already processed. It only moves forward.
	Cursor int
	Bases  Bases
	Stats  *StatBook
}

func NewSession(gamePk int, homeTeam, awayTeam string) *Session {
	id, err := gonanoid.New(10)
	if err != nil {
		id = "session"
	}
	return &Session{
		ID:       id,
		GamePk:   gamePk,
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
		Stats:    NewStatBook(),
	}
}
