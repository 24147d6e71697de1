package match

// Bands splits the 0-99 action roll: rolls below Pass pass, rolls below
// Pass+Shot shoot, everything else dribbles.
type Bands struct {
	Pass int
	Shot int
}

// Tactic shifts a side's action bands.
type Tactic int

const (
	TacticBalanced Tactic = iota
	TacticAttacking
	TacticDefensive
)

// Tactics in menu order.
var Tactics = []Tactic{TacticBalanced, TacticAttacking, TacticDefensive}

func (t Tactic) String() string {
	switch t {
	case TacticAttacking:
		return "Attacking"
	case TacticDefensive:
		return "Defensive"
	default:
		return "Balanced"
	}
}

// Apply returns the bands this tactic produces from the configured base.
// Attacking trades passes for shots, defensive keeps the ball moving.
func (t Tactic) Apply(base Bands) Bands {
	b := base
	switch t {
	case TacticAttacking:
		b.Pass -= 2
		b.Shot += 4
	case TacticDefensive:
		b.Pass += 4
		b.Shot -= 3
	}
	b.Pass = max(0, b.Pass)
	b.Shot = max(0, b.Shot)
	if b.Pass+b.Shot > 100 {
		b.Shot = 100 - b.Pass
	}
	return b
}
