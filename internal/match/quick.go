package match

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/league"
)

// NewFixtureEngine builds lineups for both clubs of a fixture and creates
// an engine whose result is recorded on the fixture. The user side, when
// manual control is enabled, draws generated skills from the user range;
// the other side uses the difficulty preset.
func NewFixtureEngine(f *league.Fixture, cfg config.MatchConfig, seed int64, extra ...Option) (*Engine, error) {
	if f.Played {
		return nil, fmt.Errorf("match: %w: %s", league.ErrAlreadyPlayed, f)
	}
	rng := rand.New(rand.NewSource(seed))

	cpu, ok := config.SkillRangeForPreset(cfg.Difficulty)
	if !ok {
		return nil, fmt.Errorf("match: unknown difficulty %q", cfg.Difficulty)
	}
	ranges := [2]config.SkillRange{cpu, cpu}
	if cfg.Control.Enabled {
		ranges[ParseSide(cfg.Control.UserSide)] = config.UserSkillRange
	}

	home := NewLineup(f.Home, Home, ranges[Home], rng)
	away := NewLineup(f.Away, Away, ranges[Away], rng)

	opts := append([]Option{WithRand(rng), WithCommitter(FixtureCommitter(f))}, extra...)
	return New(cfg, home, away, opts...)
}

// QuickResult plays a fixture headlessly with no manual control and no
// wall-clock delay. The result is committed to the fixture and to any
// committer chained with AlsoCommit.
func QuickResult(ctx context.Context, f *league.Fixture, cfg config.MatchConfig, seed int64, extra ...Option) (Outcome, error) {
	cfg.Control.Enabled = false
	e, err := NewFixtureEngine(f, cfg, seed, extra...)
	if err != nil {
		return Outcome{}, err
	}
	loop := Loop{Session: NewSession(e, cfg), Scheduler: Instant{}}
	if err := loop.Run(ctx); err != nil {
		return e.Outcome(), err
	}
	if err := e.CommitErr(); err != nil {
		return e.Outcome(), fmt.Errorf("match: commit %s: %w", f, err)
	}
	return e.Outcome(), nil
}

// PlayRound quick-simulates every unplayed fixture of a round, skipping the
// one passed in skip. Seeds are derived from the base seed and fixture
// position so a round replays identically.
func PlayRound(ctx context.Context, l *league.League, round int, cfg config.MatchConfig, seed int64, skip *league.Fixture, logger *log.Logger, extra ...Option) ([]Outcome, error) {
	var out []Outcome
	for i, f := range l.Round(round) {
		if f.Played || f == skip {
			continue
		}
		opts := extra
		if logger != nil {
			opts = append([]Option{WithLogger(logger)}, extra...)
		}
		o, err := QuickResult(ctx, f, cfg, seed+int64(round*100+i), opts...)
		if err != nil {
			return out, err
		}
		out = append(out, o)
	}
	return out, nil
}

// NewFixtureSession prepares a user-controlled match for a fixture. The
// user takes the side the club plays on; the clock holds at half-time.
func NewFixtureSession(f *league.Fixture, user *league.Club, cfg config.MatchConfig, seed int64, extra ...Option) (*Session, error) {
	if !f.Involves(user) {
		return nil, fmt.Errorf("match: %s does not play in %s", user.Name, f)
	}
	cfg.Control.Enabled = true
	cfg.Control.UserSide = config.SideHome
	if f.Away == user {
		cfg.Control.UserSide = config.SideAway
	}
	e, err := NewFixtureEngine(f, cfg, seed, extra...)
	if err != nil {
		return nil, err
	}
	s := NewSession(e, cfg)
	s.PauseAtHalfTime = true
	return s, nil
}
