package league

import (
	"fmt"
	"sort"
)

// Stats is a club's league record for the current season.
type Stats struct {
	Wins         int
	Draws        int
	Losses       int
	Points       int
	GoalsFor     int
	GoalsAgainst int
}

// GoalDifference returns goals scored minus goals conceded.
func (s Stats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Played returns the number of matches recorded.
func (s Stats) Played() int {
	return s.Wins + s.Draws + s.Losses
}

// record applies one match from this club's point of view.
func (s *Stats) record(scored, conceded int) {
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		s.Wins++
		s.Points += PointsWin
	case scored == conceded:
		s.Draws++
		s.Points += PointsDraw
	default:
		s.Losses++
	}
}

// Points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
)

// Club is a league member and its squad.
type Club struct {
	Name    string
	Players []Player
	Stats   Stats
}

// NewClub creates a club with an empty record.
func NewClub(name string, players ...Player) *Club {
	return &Club{Name: name, Players: append([]Player(nil), players...)}
}

// Goalkeepers returns the club's goalkeepers, best rated first.
func (c *Club) Goalkeepers() []Player {
	var out []Player
	for _, p := range c.Players {
		if p.IsGoalkeeper() {
			out = append(out, p)
		}
	}
	sortByRating(out)
	return out
}

// Outfielders returns the club's non-goalkeepers, best rated first.
func (c *Club) Outfielders() []Player {
	var out []Player
	for _, p := range c.Players {
		if !p.IsGoalkeeper() {
			out = append(out, p)
		}
	}
	sortByRating(out)
	return out
}

// AverageRating returns the mean squad rating, or 0 for an empty squad.
func (c *Club) AverageRating() float64 {
	if len(c.Players) == 0 {
		return 0
	}
	total := 0
	for _, p := range c.Players {
		total += p.Rating
	}
	return float64(total) / float64(len(c.Players))
}

func (c *Club) String() string {
	return fmt.Sprintf("%s (%d players)", c.Name, len(c.Players))
}

func sortByRating(ps []Player) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Rating > ps[j].Rating
	})
}

// Rand is the random source used when synthesizing squads. *rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

var (
	firstNames = []string{"John", "Michael", "Alex", "Chris", "David", "James", "Robert", "Daniel", "Mark", "Steven", "Paul"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Davis", "Miller", "Wilson", "Anderson", "Taylor", "Thomas"}
)

// EnsureMinimumPlayers tops the squad up to n players with generated
// squad members rated 55-79. A club with no goalkeeper gets one first so
// a starting eleven can always be picked.
func EnsureMinimumPlayers(c *Club, n int, rng Rand) {
	if len(c.Players) < n && len(c.Goalkeepers()) == 0 {
		c.Players = append(c.Players, generatePlayer(rng, PosGK))
	}
	for len(c.Players) < n {
		pos := Positions[1+rng.Intn(len(Positions)-1)]
		c.Players = append(c.Players, generatePlayer(rng, pos))
	}
}

func generatePlayer(rng Rand, pos string) Player {
	name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))] + " (Auto)"
	return Player{
		Name:     name,
		Position: pos,
		Rating:   55 + rng.Intn(25),
		Age:      18 + rng.Intn(17),
	}
}
