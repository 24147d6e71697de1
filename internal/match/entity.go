// Package match is the live match simulation: two sides of eleven entities
// advancing one minute per step on an occupancy grid, with possession
// moving through tackles, passes and shots. Simulation state is pure data;
// rendering consumes settled snapshots and pacing lives in the loop.
package match

import (
	"math"

	"github.com/vovakirdan/tui-matchday/internal/core"
	"github.com/vovakirdan/tui-matchday/internal/pitch"
)

// Side identifies one of the two teams.
type Side int

const (
	Home Side = iota
	Away
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Home {
		return Away
	}
	return Home
}

// String returns "home" or "away".
func (s Side) String() string {
	if s == Home {
		return "home"
	}
	return "away"
}

// ParseSide converts "home"/"away" to a Side. Anything else is Home.
func ParseSide(v string) Side {
	if v == "away" {
		return Away
	}
	return Home
}

// SquadSize is the number of entities per side.
const SquadSize = 11

// Entity is one simulated player on the pitch.
type Entity struct {
	Name     string
	Position string // Squad position code, e.g. "CB"
	Side     Side
	Pos      pitch.Point
	Skill    float64 // In [0, 1]
	Keeper   bool
	HasBall  bool
}

func distance(a, b pitch.Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func chebyshev(a, b pitch.Point) int {
	return max(core.Abs(a.X-b.X), core.Abs(a.Y-b.Y))
}

// Rand is the random source threaded through every probabilistic decision.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
