package match

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/pitch"
)

// fixedRand returns the same roll every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return min(r.n, n-1) }

func testLineups(seed int64) (Lineup, Lineup) {
	rng := rand.New(rand.NewSource(seed))
	return SyntheticLineup("Home", Home, config.UserSkillRange, rng),
		SyntheticLineup("Away", Away, config.UserSkillRange, rng)
}

func newTestEngine(t *testing.T, cfg config.MatchConfig, opts ...Option) *Engine {
	t.Helper()
	home, away := testLineups(7)
	e, err := New(cfg, home, away, append([]Option{WithSeed(42)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestDeterminism(t *testing.T) {
	// Two matches with the same seed and lineups must finish identically
	cfg := config.DefaultMatchConfig()
	cfg.Rules.MovementNoise = 1

	e1 := newTestEngine(t, cfg)
	e2 := newTestEngine(t, cfg)

	for !e1.Ended() {
		e1.Step()
		e2.Step()
	}
	if !e2.Ended() {
		t.Fatal("second engine did not finish with the first")
	}

	s1, s2 := e1.Snapshot(), e2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestPossessionAndScoreInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		e := newTestEngine(t, config.DefaultMatchConfig(), WithSeed(seed))
		prevHome, prevAway := 0, 0
		for !e.Ended() {
			e.Step()
			snap := e.Snapshot()

			if n := snap.HolderCount(); n > 1 {
				t.Fatalf("seed %d minute %d: %d holders", seed, snap.Minute, n)
			}
			if snap.HomeScore < prevHome || snap.AwayScore < prevAway {
				t.Fatalf("seed %d minute %d: score decreased", seed, snap.Minute)
			}
			if (snap.HomeScore-prevHome)+(snap.AwayScore-prevAway) > 1 {
				t.Fatalf("seed %d minute %d: more than one goal in a step", seed, snap.Minute)
			}
			prevHome, prevAway = snap.HomeScore, snap.AwayScore

			seen := map[pitch.Point]string{}
			for _, ent := range snap.Entities {
				if !snap.Bounds.Contains(ent.Pos) {
					t.Fatalf("seed %d: %s left the pitch at %v", seed, ent.Name, ent.Pos)
				}
				if other, ok := seen[ent.Pos]; ok {
					t.Fatalf("seed %d minute %d: %s and %s share %v", seed, snap.Minute, ent.Name, other, ent.Pos)
				}
				seen[ent.Pos] = ent.Name
			}
		}
	}
}

func TestHalfTimeAndFullTime(t *testing.T) {
	commits := 0
	e := newTestEngine(t, config.DefaultMatchConfig(), WithCommitter(CommitFunc(func(Outcome) error {
		commits++
		return nil
	})))

	for i := 0; i < 45; i++ {
		e.Step()
	}
	if e.Minute() != 45 || e.Phase() != PhaseFirstHalf {
		t.Fatalf("after 45 steps: minute %d phase %s", e.Minute(), e.Phase())
	}

	e.Step()
	snap := e.Snapshot()
	if snap.Minute != 46 || snap.Phase != PhaseSecondHalf || snap.HomeAttacksRight {
		t.Errorf("after half-time step: minute %d phase %s homeRight %v", snap.Minute, snap.Phase, snap.HomeAttacksRight)
	}
	if len(snap.Events) == 0 || snap.Events[0].Kind != EventHalfTime {
		t.Errorf("half-time event missing: %v", snap.Events)
	}

	for i := 0; i < 44; i++ {
		e.Step()
	}
	if !e.Ended() || e.Minute() != 90 {
		t.Fatalf("after 90 steps: ended %v minute %d", e.Ended(), e.Minute())
	}
	if commits != 1 {
		t.Errorf("commits = %d, expected 1", commits)
	}

	before := e.Snapshot()
	e.Step()
	e.Quit()
	after := e.Snapshot()
	if after.Minute != 90 || after.HomeScore != before.HomeScore || after.AwayScore != before.AwayScore {
		t.Error("steps after full time must be no-ops")
	}
	if commits != 1 {
		t.Errorf("commit ran again after full time: %d", commits)
	}
	if e.Outcome().Reason != EndFullTime {
		t.Errorf("reason = %s", e.Outcome().Reason)
	}
}

func TestMirrorInvolution(t *testing.T) {
	e := newTestEngine(t, config.DefaultMatchConfig())
	for i := 0; i < 10; i++ {
		e.Step()
	}
	orig := e.Snapshot()

	e.halfTime()
	once := e.Snapshot()
	for i, ent := range once.Entities {
		want := orig.Bounds.MirrorX(orig.Entities[i].Pos.X)
		if ent.Pos.X != want || ent.Pos.Y != orig.Entities[i].Pos.Y {
			t.Fatalf("%s mirrored to %v, expected (%d,%d)", ent.Name, ent.Pos, want, orig.Entities[i].Pos.Y)
		}
	}
	if once.Minute != 45 || once.Phase != PhaseSecondHalf || once.Paused {
		t.Errorf("half-time state: minute %d phase %s paused %v", once.Minute, once.Phase, once.Paused)
	}

	e.halfTime()
	twice := e.Snapshot()
	for i, ent := range twice.Entities {
		if ent.Pos != orig.Entities[i].Pos {
			t.Errorf("%s at %v after double mirror, expected %v", ent.Name, ent.Pos, orig.Entities[i].Pos)
		}
	}
	if twice.HomeAttacksRight != orig.HomeAttacksRight {
		t.Error("double flip should restore attacking direction")
	}
}

func TestShotSuccessOne(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Rules.ShotSuccess = 1.0

	t.Run("scripted shooter", func(t *testing.T) {
		e := newTestEngine(t, cfg)
		shooter := 5
		for i := 0; i < 3; i++ {
			e.transfer(shooter)
			e.shoot(shooter)
			if e.holder() != -1 || e.ballState != BallLoose {
				t.Fatal("ball should be loose after a shot")
			}
		}
		if h, a := e.Score(); h != 3 || a != 0 {
			t.Errorf("score = %d-%d, expected 3-0", h, a)
		}
	})

	t.Run("every step shoots", func(t *testing.T) {
		// Roll 12 lands in the shot band; 0.99 fails every tackle but
		// still beats a certain shot.
		e := newTestEngine(t, cfg, WithRand(fixedRand{f: 0.99, n: 12}))
		for i := 0; i < 3; i++ {
			e.Step()
		}
		h, a := e.Score()
		if h+a != 3 {
			t.Errorf("goals = %d, expected 3", h+a)
		}
	})
}

func TestShotSuccessZero(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Rules.ShotSuccess = 0
	e := newTestEngine(t, cfg)
	for i := 0; i < 5; i++ {
		e.transfer(3)
		e.shoot(3)
	}
	if h, a := e.Score(); h != 0 || a != 0 {
		t.Errorf("score = %d-%d with zero shot success", h, a)
	}
	if last := e.Snapshot().Events; len(last) == 0 || last[len(last)-1].Kind != EventMiss {
		t.Errorf("expected a miss event, got %v", last)
	}
}

func TestInterceptionZeroReceiverKeepsBall(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Rules.InterceptionFactor = 0
	cfg.Rules.TackleFactor = 0

	// Roll 5 always passes; a zero float would win any non-zero chance.
	e := newTestEngine(t, cfg, WithRand(fixedRand{f: 0, n: 5}))
	passes := 0
	for i := 0; i < 30; i++ {
		e.Step()
		snap := e.Snapshot()
		for _, ev := range snap.Events {
			switch ev.Kind {
			case EventInterception, EventTackle:
				t.Fatalf("minute %d: unexpected %s", snap.Minute, ev.Kind)
			case EventPass:
				passes++
				if snap.Holder < 0 || snap.Entities[snap.Holder].Name != ev.Target {
					t.Fatalf("minute %d: pass to %s but holder is %d", snap.Minute, ev.Target, snap.Holder)
				}
				if len(snap.Trail) != cfg.Rules.PassSteps {
					t.Errorf("trail has %d frames, expected %d", len(snap.Trail), cfg.Rules.PassSteps)
				}
			}
		}
	}
	if passes != 30 {
		t.Errorf("passes = %d, expected one per step", passes)
	}
}

func TestPassTrailEndsAtReceiver(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Rules.InterceptionFactor = 0
	e := newTestEngine(t, cfg)

	passer := 4
	target := e.nearestTeammate(passer)
	dest := e.entities[target].Pos
	e.transfer(passer)
	e.pass(passer)

	if e.holder() != target {
		t.Fatalf("holder = %d, expected %d", e.holder(), target)
	}
	if got := e.trail[len(e.trail)-1]; got != dest {
		t.Errorf("trail ends at %v, expected %v", got, dest)
	}
}

func TestInterceptionCertain(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Rules.InterceptionFactor = 1
	e := newTestEngine(t, cfg, WithRand(fixedRand{f: 0, n: 0}))

	// Put an away outfielder right next to the home passer.
	passer := 4
	p := e.entities[passer].Pos
	e.entities[SquadSize+3].Pos = pitch.Pt(p.X+1, p.Y)

	e.transfer(passer)
	e.pass(passer)
	h := e.holder()
	if h < SquadSize {
		t.Fatalf("holder %d should be an away interceptor", h)
	}
	if e.entities[h].Keeper {
		t.Error("keepers never intercept")
	}
}

func TestInterceptionMeasuredAlongPassPath(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Rules.InterceptionFactor = 1
	e := newTestEngine(t, cfg, WithRand(fixedRand{f: 0, n: 0}))

	// Everyone out of the way on the right, except a 20-cell pass along
	// row 6 and one opponent waiting beside its end.
	for i, ent := range e.entities {
		ent.Pos = pitch.Pt(70+i%2*5, 1+i/2)
	}
	passer, receiver, lurker := 4, 5, SquadSize+3
	e.entities[passer].Pos = pitch.Pt(10, 6)
	e.entities[receiver].Pos = pitch.Pt(30, 6)
	e.entities[lurker].Pos = pitch.Pt(30, 7)

	e.transfer(passer)
	e.pass(passer)
	if h := e.holder(); h != lurker {
		t.Fatalf("holder = %d, expected the opponent beside the receiver (%d)", h, lurker)
	}
	if n := len(e.trail); n != cfg.Rules.PassSteps {
		t.Errorf("interception after %d steps, expected it on the last one", n)
	}
}

func TestTackleTransfersPossession(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Rules.TackleFactor = 1
	e := newTestEngine(t, cfg, WithRand(fixedRand{f: 0, n: 50}))

	holder := 6
	p := e.entities[holder].Pos
	e.entities[SquadSize+5].Pos = pitch.Pt(p.X+2, p.Y+2)
	e.transfer(holder)

	if !e.tackle(holder) {
		t.Fatal("tackle within Chebyshev 2 with certain success should win")
	}
	if e.holder() != SquadSize+5 {
		t.Errorf("holder = %d, expected %d", e.holder(), SquadSize+5)
	}
	if n := e.Snapshot().HolderCount(); n != 1 {
		t.Errorf("holders = %d", n)
	}
}

func TestQuitCommitsCurrentScore(t *testing.T) {
	var got []Outcome
	e := newTestEngine(t, config.DefaultMatchConfig(), WithCommitter(CommitFunc(func(o Outcome) error {
		got = append(got, o)
		return nil
	})))
	for i := 0; i < 20; i++ {
		e.Step()
	}
	h, a := e.Score()

	e.Quit()
	e.Quit()
	e.Step()

	if len(got) != 1 {
		t.Fatalf("commits = %d, expected 1", len(got))
	}
	o := got[0]
	if o.Reason != EndQuit || o.Minute != 20 || o.HomeGoals != h || o.AwayGoals != a {
		t.Errorf("outcome = %+v", o)
	}
	if o.MatchID != e.ID() {
		t.Error("outcome should carry the match id")
	}
	if e.Minute() != 20 {
		t.Errorf("minute advanced after quit: %d", e.Minute())
	}
}

func TestMoveControlled(t *testing.T) {
	e := newTestEngine(t, config.DefaultMatchConfig())
	b := e.bounds
	ctrl := e.entities[e.control]

	ctrl.Pos = pitch.Pt(b.Left+1, b.Top)
	if e.MoveControlled(DirUp) {
		t.Error("moving off the top edge should be refused")
	}
	if ctrl.Pos != pitch.Pt(b.Left+1, b.Top) {
		t.Errorf("position changed to %v", ctrl.Pos)
	}

	if !e.MoveControlled(DirDown) || ctrl.Pos != pitch.Pt(b.Left+1, b.Top+1) {
		t.Errorf("move down failed, at %v", ctrl.Pos)
	}

	blocker := e.entities[SquadSize+4]
	blocker.Pos = pitch.Pt(b.Left+2, b.Top+1)
	if e.MoveControlled(DirRight) {
		t.Error("moving onto another entity should be refused")
	}

	e.Quit()
	if e.MoveControlled(DirDown) {
		t.Error("no movement after the match ended")
	}
}

func TestControlledEntityExemptFromPathing(t *testing.T) {
	e := newTestEngine(t, config.DefaultMatchConfig())
	start := e.entities[e.control].Pos
	for i := 0; i < 10; i++ {
		e.Step()
	}
	if got := e.entities[e.control].Pos; got != start {
		t.Errorf("controlled entity moved on its own from %v to %v", start, got)
	}
	if e.Controlled() != 10 || e.UserSide() != Home {
		t.Errorf("default control = side %s index %d", e.UserSide(), e.Controlled())
	}
}

func TestKickOffGoesToNearestCentre(t *testing.T) {
	e := newTestEngine(t, config.DefaultMatchConfig(), WithRand(fixedRand{f: 0.99, n: 99}))
	want := e.nearestTo(e.bounds.Center())
	e.Step()
	snap := e.Snapshot()
	if snap.Events[0].Kind != EventKickOff || snap.Events[0].Actor != e.entities[want].Name {
		t.Errorf("kick-off = %+v, expected %s", snap.Events[0], e.entities[want].Name)
	}
	if snap.Holder != want || snap.BallState != BallDribbling {
		t.Errorf("holder %d state %s", snap.Holder, snap.BallState)
	}
}

func TestTacticsShiftBands(t *testing.T) {
	base := Bands{Pass: 10, Shot: 5}
	if got := TacticBalanced.Apply(base); got != base {
		t.Errorf("balanced = %+v", got)
	}
	if got := TacticAttacking.Apply(base); got.Shot <= base.Shot {
		t.Errorf("attacking should shoot more: %+v", got)
	}
	if got := TacticDefensive.Apply(base); got.Pass <= base.Pass || got.Shot >= base.Shot {
		t.Errorf("defensive should pass more and shoot less: %+v", got)
	}
	if got := TacticDefensive.Apply(Bands{Pass: 98, Shot: 1}); got.Pass+got.Shot > 100 || got.Shot < 0 {
		t.Errorf("bands out of range: %+v", got)
	}

	e := newTestEngine(t, config.DefaultMatchConfig())
	e.SetTactic(Away, TacticAttacking)
	if e.Bands(Away) != TacticAttacking.Apply(base) || e.Bands(Home) != base {
		t.Errorf("SetTactic applied to the wrong side: home %+v away %+v", e.Bands(Home), e.Bands(Away))
	}
}

func TestReformKeepsCellsDistinct(t *testing.T) {
	e := newTestEngine(t, config.DefaultMatchConfig())
	for i := 0; i < 50; i++ {
		e.Step()
	}
	f, err := ParseFormation("3-5-2")
	if err != nil {
		t.Fatal(err)
	}
	keeper := e.entities[0].Pos
	e.Reform(Home, f)

	seen := map[pitch.Point]bool{}
	for _, ent := range e.entities {
		if seen[ent.Pos] {
			t.Fatalf("two entities at %v after reform", ent.Pos)
		}
		seen[ent.Pos] = true
	}
	if e.entities[0].Pos != keeper {
		t.Error("reform must not move the keeper")
	}
	// Second half: home defends the right.
	for _, ent := range e.side(Home)[1:] {
		if ent.Pos.X <= e.bounds.MidX() {
			t.Errorf("%s seated at %v outside the defended half", ent.Name, ent.Pos)
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	home, away := testLineups(1)
	cfg := config.DefaultMatchConfig()

	short := home
	short.Entities = short.Entities[:10]
	if _, err := New(cfg, short, away); err == nil {
		t.Error("ten entities should be rejected")
	}

	for _, b := range []pitch.Bounds{
		{Left: 1, Top: 1, Right: 0, Bottom: 12},
		{Left: 5, Top: 1, Right: 5, Bottom: 12},
		{Left: 1, Top: 1, Right: 4, Bottom: 4},
	} {
		cfg.Pitch = b
		if _, err := New(cfg, home, away); !errors.Is(err, pitch.ErrInvalidBounds) {
			t.Errorf("bounds %+v: New() = %v, expected ErrInvalidBounds", b, err)
		}
	}
}

func TestNarrowPitchKeepsCellsDistinct(t *testing.T) {
	for _, mode := range []string{config.PlacementFormation, config.PlacementRandom} {
		cfg := config.DefaultMatchConfig()
		cfg.Pitch = pitch.Bounds{Left: 1, Top: 1, Right: 2, Bottom: 12}
		cfg.Placement.Mode = mode
		e := newTestEngine(t, cfg)
		for !e.Ended() {
			seen := map[pitch.Point]bool{}
			for _, ent := range e.Snapshot().Entities {
				if seen[ent.Pos] {
					t.Fatalf("%s minute %d: two entities on %v", mode, e.Minute(), ent.Pos)
				}
				seen[ent.Pos] = true
			}
			e.Step()
		}
	}
}

func TestStepIgnoredWhilePaused(t *testing.T) {
	e := newTestEngine(t, config.DefaultMatchConfig())
	e.Step()
	before := e.Snapshot()

	e.SetPaused(true)
	for i := 0; i < 5; i++ {
		e.Step()
	}
	if e.Minute() != before.Minute {
		t.Fatalf("minute moved from %d to %d while paused", before.Minute, e.Minute())
	}
	if got := len(e.Snapshot().Events); got != len(before.Events) {
		t.Errorf("paused step changed the event feed: %d events, expected %d", got, len(before.Events))
	}

	e.SetPaused(false)
	e.Step()
	if e.Minute() != before.Minute+1 {
		t.Errorf("minute = %d after resuming, expected %d", e.Minute(), before.Minute+1)
	}
}

func TestRandomPlacement(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.Placement.Mode = config.PlacementRandom
	e := newTestEngine(t, cfg)
	mid := e.bounds.MidX()
	seen := map[pitch.Point]bool{}
	for _, ent := range e.entities {
		if seen[ent.Pos] {
			t.Fatalf("duplicate cell %v", ent.Pos)
		}
		seen[ent.Pos] = true
		if ent.Side == Home && ent.Pos.X >= mid || ent.Side == Away && ent.Pos.X <= mid {
			t.Errorf("%s placed in the wrong half at %v", ent.Name, ent.Pos)
		}
	}
}
