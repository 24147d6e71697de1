package league

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-matchday/internal/config"
)

func TestBuildFromDefaults(t *testing.T) {
	cfg := config.DefaultLeagueConfig()
	l, err := Build(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(l.Clubs) != len(cfg.Clubs) {
		t.Fatalf("clubs = %d, want %d", len(l.Clubs), len(cfg.Clubs))
	}
	for _, c := range l.Clubs {
		if len(c.Players) < MinSquadSize {
			t.Errorf("%s has %d players", c.Name, len(c.Players))
		}
		if len(c.Goalkeepers()) == 0 {
			t.Errorf("%s has no goalkeeper", c.Name)
		}
	}
	if len(l.Fixtures) == 0 {
		t.Error("fixtures not generated")
	}
}

func TestBuildKeepsConfiguredPlayers(t *testing.T) {
	cfg := config.LeagueConfig{
		Name: "Two",
		Clubs: []config.ClubConfig{
			{Name: "A", Players: []config.PlayerConfig{{Name: "Star", Position: "ST", Rating: 91, Age: 24}}},
			{Name: "B"},
		},
	}
	l, err := Build(cfg, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a, _ := l.ClubByName("A")
	if a.Players[0] != (Player{Name: "Star", Position: "ST", Rating: 91, Age: 24}) {
		t.Errorf("first player = %+v", a.Players[0])
	}

	again, _ := Build(cfg, rand.New(rand.NewSource(2)))
	b1, _ := l.ClubByName("B")
	b2, _ := again.ClubByName("B")
	for i := range b1.Players {
		if b1.Players[i] != b2.Players[i] {
			t.Fatalf("generated squads differ at %d: %+v vs %+v", i, b1.Players[i], b2.Players[i])
		}
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	_, err := Build(config.LeagueConfig{Clubs: []config.ClubConfig{{Name: "Alone"}}}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v", err)
	}
}
