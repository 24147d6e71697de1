package match

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/league"
	"github.com/vovakirdan/tui-matchday/internal/pitch"
)

// Phase is the period of the match clock.
type Phase int

const (
	PhaseFirstHalf Phase = iota
	PhaseSecondHalf
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseFirstHalf:
		return "1st half"
	case PhaseSecondHalf:
		return "2nd half"
	default:
		return "Full time"
	}
}

// BallState is what the ball did during the last step.
type BallState int

const (
	BallDribbling BallState = iota
	BallPassing
	BallShooting
	BallLoose // Nobody holds the ball until the next restart
)

func (s BallState) String() string {
	switch s {
	case BallDribbling:
		return "Dribbling"
	case BallPassing:
		return "Passing"
	case BallShooting:
		return "Shooting"
	default:
		return "Loose"
	}
}

// EndReason records how a match finished.
type EndReason string

const (
	EndFullTime EndReason = "full_time"
	EndQuit     EndReason = "quit"
)

// Outcome is what the committer receives when a match ends.
type Outcome struct {
	MatchID   uuid.UUID
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
	Minute    int
	Reason    EndReason
}

// Score returns the scoreline in fixture format.
func (o Outcome) Score() string {
	return league.FormatScore(o.HomeGoals, o.AwayGoals)
}

// Committer persists a finished match. It is called exactly once per engine.
type Committer interface {
	Commit(Outcome) error
}

// CommitFunc adapts a function to Committer.
type CommitFunc func(Outcome) error

// Commit implements Committer.
func (f CommitFunc) Commit(o Outcome) error { return f(o) }

// FixtureCommitter records the outcome on a fixture, updating both clubs.
func FixtureCommitter(f *league.Fixture) Committer {
	return CommitFunc(func(o Outcome) error {
		return f.RecordResult(o.HomeGoals, o.AwayGoals)
	})
}

// MultiCommitter runs every committer in order and joins their errors.
func MultiCommitter(cs ...Committer) Committer {
	return CommitFunc(func(o Outcome) error {
		var errs []error
		for _, c := range cs {
			if c == nil {
				continue
			}
			if err := c.Commit(o); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// Direction is a manual movement of the controlled entity.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step of the direction.
func (d Direction) Delta() pitch.Point {
	return pitch.Neighbours[d]
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source. Every probabilistic decision draws from it.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithPathfinder replaces the breadth-first default.
func WithPathfinder(pf pitch.Pathfinder) Option {
	return func(e *Engine) { e.pf = pf }
}

// WithCommitter sets who receives the final result.
func WithCommitter(c Committer) Option {
	return func(e *Engine) { e.committer = c }
}

// AlsoCommit chains another committer after the current one.
func AlsoCommit(c Committer) Option {
	return func(e *Engine) {
		if e.committer == nil {
			e.committer = c
			return
		}
		e.committer = MultiCommitter(e.committer, c)
	}
}

// WithID sets the match identifier instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(e *Engine) { e.id = id }
}

const feedSize = 8

// Engine owns all state of one match. It is not safe for concurrent use;
// a single loop drives Step and the control hooks between steps.
type Engine struct {
	rules     config.RulesConfig
	bounds    pitch.Bounds
	grid      *pitch.Grid
	pf        pitch.Pathfinder
	rng       Rand
	logger    *log.Logger
	committer Committer
	id        uuid.UUID

	clubs    [2]string
	bench    [2][]string
	entities []*Entity // Home 0..10, away 11..21; keeper first on each side
	bands    [2]Bands
	tactics  [2]Tactic
	userSide Side
	control  int // Entity index of the manually controlled entity, -1 for none

	minute           int
	firstHalf        bool
	ended            bool
	paused           bool
	homeAttacksRight bool
	score            [2]int
	ball             pitch.Point
	ballState        BallState
	reason           EndReason
	committed        bool
	commitErr        error

	events []Event
	feed   []Event
	trail  []pitch.Point
}

// New creates a match between two lineups and seats every entity.
func New(cfg config.MatchConfig, home, away Lineup, opts ...Option) (*Engine, error) {
	if err := cfg.Pitch.Validate(); err != nil {
		return nil, err
	}
	if err := home.Validate(); err != nil {
		return nil, err
	}
	if err := away.Validate(); err != nil {
		return nil, err
	}
	if cells, need := cfg.Pitch.Width()*cfg.Pitch.Height(), len(home.Entities)+len(away.Entities); cells < need {
		return nil, fmt.Errorf("match: %w: %d cells cannot seat %d entities", pitch.ErrInvalidBounds, cells, need)
	}

	e := &Engine{
		rules:            cfg.Rules,
		bounds:           cfg.Pitch,
		grid:             pitch.NewGrid(cfg.Pitch),
		pf:               pitch.BFS{},
		clubs:            [2]string{home.Club, away.Club},
		bench:            [2][]string{home.Bench, away.Bench},
		control:          -1,
		firstHalf:        true,
		homeAttacksRight: true,
		ball:             cfg.Pitch.Center(),
		ballState:        BallLoose,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(1))
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.id == uuid.Nil {
		e.id = uuid.New()
	}

	for _, l := range []Lineup{home, away} {
		e.entities = append(e.entities, keeperFirst(l.Entities)...)
	}
	for i, side := range []Side{Home, Away} {
		for _, ent := range e.side(side) {
			ent.Side = side
		}
		e.bands[i] = Bands{Pass: cfg.Rules.PassBand, Shot: cfg.Rules.ShotBand}
	}

	if err := e.place(cfg.Placement); err != nil {
		return nil, err
	}

	if cfg.Control.Enabled {
		e.userSide = ParseSide(cfg.Control.UserSide)
		e.control = e.offset(e.userSide) + min(max(cfg.Control.ControlledIndex, 0), SquadSize-1)
	}
	return e, nil
}

func keeperFirst(src []Entity) []*Entity {
	out := make([]*Entity, 0, len(src))
	for i := range src {
		if src[i].Keeper {
			ent := src[i]
			out = append(out, &ent)
		}
	}
	for i := range src {
		if !src[i].Keeper {
			ent := src[i]
			out = append(out, &ent)
		}
	}
	for _, ent := range out {
		ent.HasBall = false
	}
	return out
}

func (e *Engine) place(pc config.PlacementConfig) error {
	e.grid.Reset()
	switch pc.Mode {
	case config.PlacementRandom:
		seatRandom(e.side(Home), e.bounds, e.attacksRight(Home), e.grid, e.rng)
		seatRandom(e.side(Away), e.bounds, e.attacksRight(Away), e.grid, e.rng)
	default:
		f, err := ParseFormation(pc.Formation)
		if err != nil {
			return err
		}
		seatFormation(e.side(Home), f, e.bounds, e.attacksRight(Home), e.grid)
		seatFormation(e.side(Away), f, e.bounds, e.attacksRight(Away), e.grid)
	}
	return nil
}

func (e *Engine) offset(s Side) int {
	if s == Home {
		return 0
	}
	return SquadSize
}

func (e *Engine) side(s Side) []*Entity {
	o := e.offset(s)
	return e.entities[o : o+SquadSize]
}

func (e *Engine) attacksRight(s Side) bool {
	if s == Home {
		return e.homeAttacksRight
	}
	return !e.homeAttacksRight
}

func (e *Engine) attackColumn(s Side) int {
	if e.attacksRight(s) {
		return e.bounds.Right
	}
	return e.bounds.Left
}

// ID returns the match identifier stored with the result.
func (e *Engine) ID() uuid.UUID { return e.id }

// Minute returns the match clock.
func (e *Engine) Minute() int { return e.minute }

// Score returns the home and away goals.
func (e *Engine) Score() (int, int) { return e.score[Home], e.score[Away] }

// Ended reports whether the match has finished by full time or quit.
func (e *Engine) Ended() bool { return e.ended }

// Paused reports whether the clock is paused.
func (e *Engine) Paused() bool { return e.paused }

// SetPaused pauses or resumes the clock. Ended matches stay ended.
func (e *Engine) SetPaused(p bool) {
	if !e.ended {
		e.paused = p
	}
}

// TogglePause flips the pause flag.
func (e *Engine) TogglePause() {
	e.SetPaused(!e.paused)
}

// Phase returns the current period.
func (e *Engine) Phase() Phase {
	switch {
	case e.ended:
		return PhaseEnded
	case e.firstHalf:
		return PhaseFirstHalf
	default:
		return PhaseSecondHalf
	}
}

// Committed reports whether the result has been handed to the committer.
func (e *Engine) Committed() bool { return e.committed }

// CommitErr returns the committer's error, if any.
func (e *Engine) CommitErr() error { return e.commitErr }

// Outcome returns the current result.
func (e *Engine) Outcome() Outcome {
	return Outcome{
		MatchID:   e.id,
		Home:      e.clubs[Home],
		Away:      e.clubs[Away],
		HomeGoals: e.score[Home],
		AwayGoals: e.score[Away],
		Minute:    e.minute,
		Reason:    e.reason,
	}
}

// Step advances the match by one minute. Paused and ended matches ignore
// it, and a paused match keeps the events of its last step.
func (e *Engine) Step() {
	if e.paused {
		return
	}
	e.events = e.events[:0]
	e.trail = e.trail[:0]
	if e.ended {
		return
	}
	if e.minute >= e.rules.FullTimeMinute {
		e.finish(EndFullTime)
		return
	}
	if e.firstHalf && e.minute >= e.rules.HalfTimeMinute {
		e.halfTime()
	}

	e.minute++
	e.rebuildOccupancy()

	holder := e.holder()
	if holder < 0 {
		holder = e.nearestTo(e.bounds.Center())
		e.transfer(holder)
		e.ballState = BallDribbling
		e.emit(EventKickOff, e.entities[holder], nil)
	}

	e.moveSide(Home, holder)
	e.moveSide(Away, holder)

	if !e.tackle(holder) {
		e.act(holder)
	}

	if e.minute >= e.rules.FullTimeMinute {
		e.finish(EndFullTime)
	}
}

// Quit ends the match at the current minute and commits the score as it
// stands.
func (e *Engine) Quit() {
	e.finish(EndQuit)
}

func (e *Engine) rebuildOccupancy() {
	positions := make([]pitch.Point, len(e.entities))
	for i, ent := range e.entities {
		positions[i] = ent.Pos
	}
	e.grid.Rebuild(positions)
}

func (e *Engine) holder() int {
	for i, ent := range e.entities {
		if ent.HasBall {
			return i
		}
	}
	return -1
}

// nearestTo returns the entity closest to p. Ties go to the earlier entity,
// home side first.
func (e *Engine) nearestTo(p pitch.Point) int {
	best, bestD := 0, math.MaxFloat64
	for i, ent := range e.entities {
		if d := distance(ent.Pos, p); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// transfer is the only way possession changes hands: clear every flag,
// then set exactly one.
func (e *Engine) transfer(i int) {
	e.release()
	e.entities[i].HasBall = true
	e.ball = e.entities[i].Pos
}

func (e *Engine) release() {
	for _, ent := range e.entities {
		ent.HasBall = false
	}
}

func (e *Engine) moveSide(s Side, holder int) {
	col := e.attackColumn(s)
	o := e.offset(s)
	for k, ent := range e.side(s) {
		i := o + k
		if i == holder || i == e.control || ent.Keeper {
			continue
		}
		e.grid.Unmark(ent.Pos)
		ty := ent.Pos.Y
		if n := e.rules.MovementNoise; n > 0 {
			ty += e.rng.Intn(2*n+1) - n
		}
		if next, ok := pitch.NextStep(e.pf, e.grid, ent.Pos, pitch.Pt(col, ty)); ok {
			ent.Pos = next
		}
		e.grid.Mark(ent.Pos)
	}
}

func (e *Engine) tackle(holder int) bool {
	h := e.entities[holder]
	o := e.offset(h.Side.Opponent())
	for k, opp := range e.side(h.Side.Opponent()) {
		if opp.Keeper || chebyshev(opp.Pos, h.Pos) > e.rules.TackleRadius {
			continue
		}
		if e.rng.Float64() < opp.Skill*e.rules.TackleFactor {
			e.transfer(o + k)
			e.ballState = BallDribbling
			e.emit(EventTackle, opp, h)
			e.logger.Debug("tackle", "minute", e.minute, "by", opp.Name, "on", h.Name)
			return true
		}
	}
	return false
}

func (e *Engine) act(holder int) {
	h := e.entities[holder]
	b := e.bands[h.Side]
	roll := e.rng.Intn(100)
	switch {
	case roll < b.Pass:
		e.pass(holder)
	case roll < b.Pass+b.Shot:
		e.shoot(holder)
	default:
		e.ballState = BallDribbling
	}
}

func (e *Engine) nearestTeammate(holder int) int {
	h := e.entities[holder]
	o := e.offset(h.Side)
	best, bestD := -1, math.MaxFloat64
	for k, mate := range e.side(h.Side) {
		if o+k == holder {
			continue
		}
		if d := distance(mate.Pos, h.Pos); d < bestD {
			best, bestD = o+k, d
		}
	}
	return best
}

func (e *Engine) pass(holder int) {
	target := e.nearestTeammate(holder)
	if target < 0 {
		e.ballState = BallDribbling
		return
	}
	passer, receiver := e.entities[holder], e.entities[target]
	from, to := passer.Pos, receiver.Pos

	e.release()
	e.ballState = BallPassing

	steps := max(1, e.rules.PassSteps)
	dx := float64(to.X-from.X) / float64(steps)
	dy := float64(to.Y-from.Y) / float64(steps)
	opp := passer.Side.Opponent()
	o := e.offset(opp)

	for s := 1; s <= steps; s++ {
		p := pitch.Pt(
			int(math.Round(float64(from.X)+dx*float64(s))),
			int(math.Round(float64(from.Y)+dy*float64(s))),
		)
		e.ball = p
		e.trail = append(e.trail, p)

		for k, ent := range e.side(opp) {
			if ent.Keeper || distance(ent.Pos, p) > e.rules.InterceptionRadius {
				continue
			}
			if e.rng.Float64() < ent.Skill*e.rules.InterceptionFactor {
				e.transfer(o + k)
				e.ballState = BallDribbling
				e.emit(EventInterception, ent, passer)
				e.logger.Debug("interception", "minute", e.minute, "by", ent.Name, "from", passer.Name)
				return
			}
		}
	}

	e.transfer(target)
	e.ballState = BallDribbling
	e.emit(EventPass, passer, receiver)
}

func (e *Engine) shoot(holder int) {
	shooter := e.entities[holder]
	e.release()
	e.ballState = BallShooting
	e.ball = pitch.Pt(e.attackColumn(shooter.Side), e.bounds.Center().Y)

	if e.rng.Float64() < e.rules.ShotSuccess {
		e.score[shooter.Side]++
		e.emit(EventGoal, shooter, nil)
		e.logger.Debug("goal", "minute", e.minute, "scorer", shooter.Name, "side", shooter.Side,
			"score", league.FormatScore(e.score[Home], e.score[Away]))
	} else {
		e.emit(EventMiss, shooter, nil)
	}
	e.ballState = BallLoose
}

func (e *Engine) halfTime() {
	e.paused = true
	e.homeAttacksRight = !e.homeAttacksRight
	for _, ent := range e.entities {
		ent.Pos = e.bounds.Mirror(ent.Pos)
	}
	e.ball = e.bounds.Mirror(e.ball)
	e.minute = e.rules.HalfTimeMinute
	e.firstHalf = false
	e.paused = false
	e.emit(EventHalfTime, nil, nil)
	e.logger.Debug("half-time", "score", league.FormatScore(e.score[Home], e.score[Away]))
}

func (e *Engine) finish(reason EndReason) {
	if e.ended {
		return
	}
	e.ended = true
	e.paused = false
	e.reason = reason
	if reason == EndQuit {
		e.emit(EventQuit, nil, nil)
	} else {
		e.emit(EventFullTime, nil, nil)
	}
	e.logger.Debug("match ended", "reason", reason, "minute", e.minute,
		"score", league.FormatScore(e.score[Home], e.score[Away]))
	e.commit()
}

func (e *Engine) commit() {
	if e.committed {
		return
	}
	e.committed = true
	if e.committer == nil {
		return
	}
	if err := e.committer.Commit(e.Outcome()); err != nil {
		e.commitErr = err
		e.logger.Error("commit result", "match", e.id, "err", err)
	}
}

func (e *Engine) emit(kind EventKind, actor, target *Entity) {
	ev := Event{Minute: e.minute, Kind: kind}
	if actor != nil {
		ev.Actor = actor.Name
		ev.Side = actor.Side
	}
	if target != nil {
		ev.Target = target.Name
	}
	e.events = append(e.events, ev)
	if kind == EventKickOff || kind == EventPass {
		return
	}
	e.feed = append(e.feed, ev)
	if len(e.feed) > feedSize {
		e.feed = e.feed[len(e.feed)-feedSize:]
	}
}

// MoveControlled moves the manually controlled entity one cell. The move is
// clamped to the pitch and refused when the cell is taken. It reports
// whether the entity moved.
func (e *Engine) MoveControlled(d Direction) bool {
	if e.ended || e.control < 0 {
		return false
	}
	ent := e.entities[e.control]
	next := e.bounds.Clamp(ent.Pos.Add(d.Delta()))
	if next == ent.Pos {
		return false
	}
	for _, other := range e.entities {
		if other != ent && other.Pos == next {
			return false
		}
	}
	ent.Pos = next
	if ent.HasBall {
		e.ball = next
	}
	return true
}

// UserSide returns the side the manual control belongs to.
func (e *Engine) UserSide() Side { return e.userSide }

// Controlled returns the controlled entity's index within the user side,
// or -1 when manual control is off.
func (e *Engine) Controlled() int {
	if e.control < 0 {
		return -1
	}
	return e.control - e.offset(e.userSide)
}

// SetControlled hands manual control to the i-th entity of the user side.
func (e *Engine) SetControlled(i int) error {
	if i < 0 || i >= SquadSize {
		return fmt.Errorf("match: controlled index %d outside 0..%d", i, SquadSize-1)
	}
	e.control = e.offset(e.userSide) + i
	return nil
}

// SetTactic changes a side's action bands from the next step on.
func (e *Engine) SetTactic(s Side, t Tactic) {
	e.tactics[s] = t
	e.bands[s] = t.Apply(Bands{Pass: e.rules.PassBand, Shot: e.rules.ShotBand})
}

// Tactic returns a side's current tactic.
func (e *Engine) Tactic(s Side) Tactic { return e.tactics[s] }

// Bands returns a side's current action bands.
func (e *Engine) Bands(s Side) Bands { return e.bands[s] }

// Reform re-seats a side's outfielders in a new formation within the half
// the side currently defends. Call it between steps.
func (e *Engine) Reform(s Side, f Formation) {
	if e.ended {
		return
	}
	e.grid.Reset()
	outfield := e.side(s)[1:]
	for _, ent := range e.entities {
		if ent.Side != s || ent.Keeper {
			e.grid.Mark(ent.Pos)
		}
	}
	slots := f.Slots(e.bounds)[1:]
	for i, ent := range outfield {
		if i >= len(slots) {
			break
		}
		p := slots[i]
		if !e.attacksRight(s) {
			p = e.bounds.Mirror(p)
		}
		ent.Pos = nearestFree(e.grid, p)
		e.grid.Mark(ent.Pos)
		if ent.HasBall {
			e.ball = ent.Pos
		}
	}
}
