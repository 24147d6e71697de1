// Package league holds the clubs, fixtures and standings a match is played
// inside of. Club statistics are only ever changed by recording a fixture
// result, so the table can always be rebuilt by replaying stored results.
package league

import "strings"

// Position codes used for squad members.
const (
	PosGK  = "GK"
	PosLB  = "LB"
	PosRB  = "RB"
	PosCB  = "CB"
	PosCDM = "CDM"
	PosCM  = "CM"
	PosCAM = "CAM"
	PosLM  = "LM"
	PosRM  = "RM"
	PosLW  = "LW"
	PosRW  = "RW"
	PosST  = "ST"
)

// Positions lists every position code in the order synthesized players draw from.
var Positions = []string{PosGK, PosLB, PosRB, PosCB, PosCM, PosCDM, PosCAM, PosLM, PosRM, PosLW, PosRW, PosST}

// Player is a squad member. Rating is on a 0-100 scale.
type Player struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Rating   int    `yaml:"rating"`
	Age      int    `yaml:"age,omitempty"`
}

// IsGoalkeeper reports whether the player's primary position is in goal.
// Multi-position codes such as "GK/CB" count when GK is listed first.
func (p Player) IsGoalkeeper() bool {
	pos := strings.ToUpper(strings.TrimSpace(p.Position))
	return pos == PosGK || strings.HasPrefix(pos, PosGK+"/")
}

// Skill maps the rating onto [0, 1].
func (p Player) Skill() float64 {
	return min(max(float64(p.Rating)/100, 0), 1)
}
