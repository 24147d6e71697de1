package league

import (
	"errors"
	"fmt"
	"time"
)

// ErrAlreadyPlayed is returned when a result is recorded twice for the same fixture.
var ErrAlreadyPlayed = errors.New("league: fixture already played")

// Fixture is one scheduled match between two clubs.
type Fixture struct {
	Round     int
	Date      time.Time
	Home      *Club
	Away      *Club
	Played    bool
	HomeGoals int
	AwayGoals int
	Score     string
}

// FormatScore renders a scoreline the way fixtures store it.
func FormatScore(home, away int) string {
	return fmt.Sprintf("%d : %d", home, away)
}

// RecordResult marks the fixture played and updates both clubs' records:
// 3 points for a win, 1 each for a draw, and goals for/against on both
// sides. It refuses to apply a second result.
func (f *Fixture) RecordResult(homeGoals, awayGoals int) error {
	if f.Played {
		return fmt.Errorf("%w: %s", ErrAlreadyPlayed, f)
	}
	f.Played = true
	f.HomeGoals = homeGoals
	f.AwayGoals = awayGoals
	f.Score = FormatScore(homeGoals, awayGoals)

	f.Home.Stats.record(homeGoals, awayGoals)
	f.Away.Stats.record(awayGoals, homeGoals)
	return nil
}

// Involves reports whether the club plays in this fixture.
func (f *Fixture) Involves(c *Club) bool {
	return f.Home == c || f.Away == c
}

func (f *Fixture) String() string {
	if f.Played {
		return fmt.Sprintf("R%d %s %s %s", f.Round, f.Home.Name, f.Score, f.Away.Name)
	}
	return fmt.Sprintf("R%d %s v %s", f.Round, f.Home.Name, f.Away.Name)
}
