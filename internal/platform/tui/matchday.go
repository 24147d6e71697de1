package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/league"
	"github.com/vovakirdan/tui-matchday/internal/match"
	"github.com/vovakirdan/tui-matchday/internal/storage"
)

// Matchday holds what a manager needs to play through a league: the
// schedule, the match rules and where results go.
type Matchday struct {
	League *league.League
	Config config.MatchConfig
	Store  *storage.Store // Optional
	Season string         // Label results are stored under; defaults to the league season
	Seed   int64
	Logger *log.Logger // Optional
}

func (d *Matchday) season() string {
	if d.Season != "" {
		return d.Season
	}
	return d.League.Season()
}

// storeOption persists outcomes of the given round. A failed save is
// logged and does not fail the match.
func (d *Matchday) storeOption(round int) []match.Option {
	if d.Store == nil {
		return nil
	}
	save := d.Store.Committer(d.season(), round)
	return []match.Option{match.AlsoCommit(match.CommitFunc(func(o match.Outcome) error {
		if err := save.Commit(o); err != nil && d.Logger != nil {
			d.Logger.Warn("could not store result", "match", o.MatchID, "error", err)
		}
		return nil
	}))}
}

func (d *Matchday) options(round int) []match.Option {
	opts := d.storeOption(round)
	if d.Logger != nil {
		opts = append(opts, match.WithLogger(d.Logger))
	}
	return opts
}

// Prepare builds a user-controlled session for the club's next fixture.
func (d *Matchday) Prepare(club *league.Club) (*match.Session, *league.Fixture, error) {
	f := d.League.NextFixture(club)
	if f == nil {
		return nil, nil, fmt.Errorf("tui: %s has no fixtures left this season", club.Name)
	}
	s, err := match.NewFixtureSession(f, club, d.Config, d.Seed+int64(f.Round), d.options(f.Round)...)
	if err != nil {
		return nil, nil, err
	}
	return s, f, nil
}

// FinishRound quick-simulates the rest of the fixture's round.
func (d *Matchday) FinishRound(ctx context.Context, f *league.Fixture) ([]match.Outcome, error) {
	return match.PlayRound(ctx, d.League, f.Round, d.Config, d.Seed, f, d.Logger, d.storeOption(f.Round)...)
}
