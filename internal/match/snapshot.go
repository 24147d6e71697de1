package match

import "github.com/vovakirdan/tui-matchday/internal/pitch"

// EntityView is a read-only copy of an entity for rendering.
type EntityView struct {
	Name       string
	Position   string
	Side       Side
	Pos        pitch.Point
	Skill      float64
	Keeper     bool
	HasBall    bool
	Controlled bool
}

// Snapshot captures the settled state after a step. It shares no memory
// with the engine, so renderers and tests may keep it.
type Snapshot struct {
	Minute           int
	Phase            Phase
	Paused           bool
	Ended            bool
	Reason           EndReason
	HomeClub         string
	AwayClub         string
	HomeScore        int
	AwayScore        int
	HomeAttacksRight bool
	Bounds           pitch.Bounds
	Entities         []EntityView
	Holder           int // Index into Entities, -1 while the ball is loose
	Ball             pitch.Point
	BallState        BallState
	Trail            []pitch.Point // Cells the ball crossed during this step's pass
	Events           []Event       // Everything that happened during the last step
	Feed             []Event       // Recent notable events, oldest first
	Bench            [2][]string
	UserSide         Side
	Tactics          [2]Tactic
}

// Score returns the scoreline in fixture format.
func (s Snapshot) Score() string {
	return Outcome{HomeGoals: s.HomeScore, AwayGoals: s.AwayScore}.Score()
}

// HolderCount returns how many entities hold the ball. It is 0 or 1.
func (s Snapshot) HolderCount() int {
	n := 0
	for _, e := range s.Entities {
		if e.HasBall {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Minute:           e.minute,
		Phase:            e.Phase(),
		Paused:           e.paused,
		Ended:            e.ended,
		Reason:           e.reason,
		HomeClub:         e.clubs[Home],
		AwayClub:         e.clubs[Away],
		HomeScore:        e.score[Home],
		AwayScore:        e.score[Away],
		HomeAttacksRight: e.homeAttacksRight,
		Bounds:           e.bounds,
		Entities:         make([]EntityView, len(e.entities)),
		Holder:           e.holder(),
		Ball:             e.ball,
		BallState:        e.ballState,
		Trail:            append([]pitch.Point(nil), e.trail...),
		Events:           append([]Event(nil), e.events...),
		Feed:             append([]Event(nil), e.feed...),
		Bench:            [2][]string{append([]string(nil), e.bench[Home]...), append([]string(nil), e.bench[Away]...)},
		UserSide:         e.userSide,
		Tactics:          e.tactics,
	}
	for i, ent := range e.entities {
		snap.Entities[i] = EntityView{
			Name:       ent.Name,
			Position:   ent.Position,
			Side:       ent.Side,
			Pos:        ent.Pos,
			Skill:      ent.Skill,
			Keeper:     ent.Keeper,
			HasBall:    ent.HasBall,
			Controlled: i == e.control,
		}
	}
	if snap.Holder >= 0 {
		snap.Ball = snap.Entities[snap.Holder].Pos
	}
	return snap
}
