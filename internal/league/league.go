package league

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrUnknownClub is returned when a club name does not match any league member.
var ErrUnknownClub = errors.New("league: unknown club")

// MinSquadSize is the squad size clubs are topped up to when loaded.
const MinSquadSize = 18

// League is a set of clubs playing a double round robin over one season.
type League struct {
	Name        string
	Clubs       []*Club
	Fixtures    []*Fixture
	SeasonStart time.Time
	SeasonEnd   time.Time
}

// New creates a league and generates its fixtures.
func New(name string, clubs []*Club, start, end time.Time) *League {
	l := &League{
		Name:        name,
		Clubs:       clubs,
		SeasonStart: start,
		SeasonEnd:   end,
	}
	l.GenerateFixtures()
	return l
}

// Season returns the season label, e.g. "2025/26".
func (l *League) Season() string {
	y := l.SeasonStart.Year()
	return fmt.Sprintf("%d/%02d", y, (y+1)%100)
}

// ClubByName finds a club by case-insensitive name.
func (l *League) ClubByName(name string) (*Club, error) {
	for _, c := range l.Clubs {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownClub, name)
}

// GenerateFixtures replaces the schedule with a double round robin built
// with the circle method. With an odd number of clubs one club sits out each
// round. The second half repeats the first with home and away swapped.
// Rounds are a week apart starting from the first Saturday of the season.
func (l *League) GenerateFixtures() {
	l.Fixtures = nil
	slots := make([]*Club, len(l.Clubs))
	copy(slots, l.Clubs)
	if len(slots) < 2 {
		return
	}
	if len(slots)%2 == 1 {
		slots = append(slots, nil)
	}

	n := len(slots)
	half := n - 1
	first := firstWeekday(l.SeasonStart, time.Saturday)

	for r := 0; r < 2*half; r++ {
		round := r % half
		date := first.AddDate(0, 0, 7*r)
		for m := 0; m < n/2; m++ {
			var home, away *Club
			if m == 0 {
				home, away = slots[round], slots[n-1]
				if round%2 == 1 {
					home, away = away, home
				}
			} else {
				home = slots[(round+m)%half]
				away = slots[(round+half-m)%half]
			}
			if home == nil || away == nil {
				continue
			}
			if r >= half {
				home, away = away, home
			}
			l.Fixtures = append(l.Fixtures, &Fixture{
				Round: r + 1,
				Date:  date,
				Home:  home,
				Away:  away,
			})
		}
	}
}

func firstWeekday(from time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, offset)
}

// Rounds returns the number of rounds in the schedule.
func (l *League) Rounds() int {
	n := 0
	for _, f := range l.Fixtures {
		n = max(n, f.Round)
	}
	return n
}

// Round returns the fixtures of round n in schedule order.
func (l *League) Round(n int) []*Fixture {
	var out []*Fixture
	for _, f := range l.Fixtures {
		if f.Round == n {
			out = append(out, f)
		}
	}
	return out
}

// CurrentRound returns the first round with an unplayed fixture, or 0 once
// the season is complete.
func (l *League) CurrentRound() int {
	for _, f := range l.Fixtures {
		if !f.Played {
			return f.Round
		}
	}
	return 0
}

// NextFixture returns the club's first unplayed fixture, or nil when its
// season is over.
func (l *League) NextFixture(c *Club) *Fixture {
	for _, f := range l.Fixtures {
		if !f.Played && f.Involves(c) {
			return f
		}
	}
	return nil
}

// FindFixture returns the fixture of the given round between two named clubs.
func (l *League) FindFixture(round int, home, away string) *Fixture {
	for _, f := range l.Fixtures {
		if f.Round == round && strings.EqualFold(f.Home.Name, home) && strings.EqualFold(f.Away.Name, away) {
			return f
		}
	}
	return nil
}

// Standings returns the clubs ordered by points, goal difference, goals
// scored and then name.
func (l *League) Standings() []*Club {
	out := make([]*Club, len(l.Clubs))
	copy(out, l.Clubs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Stats, out[j].Stats
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ResetSeason clears every club's record and regenerates the schedule.
func (l *League) ResetSeason() {
	for _, c := range l.Clubs {
		c.Stats = Stats{}
	}
	l.GenerateFixtures()
}

// Result is a played fixture as stored outside the league.
type Result struct {
	Round     int
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
}

// ApplyResults replays stored results onto the schedule. Results whose
// fixture cannot be found are skipped and reported in the returned error
// along with any duplicates; the remaining results are still applied.
func (l *League) ApplyResults(results []Result) error {
	var errs []error
	for _, r := range results {
		f := l.FindFixture(r.Round, r.Home, r.Away)
		if f == nil {
			errs = append(errs, fmt.Errorf("league: no fixture R%d %s v %s", r.Round, r.Home, r.Away))
			continue
		}
		if err := f.RecordResult(r.HomeGoals, r.AwayGoals); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
