package league

import (
	"fmt"

	"github.com/vovakirdan/tui-matchday/internal/config"
)

// Build creates a league from its configuration. Every squad is topped up
// to MinSquadSize with generated players drawn from rng, so the same seed
// always produces the same squads.
func Build(cfg config.LeagueConfig, rng Rand) (*League, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("league: %w", err)
	}

	clubs := make([]*Club, 0, len(cfg.Clubs))
	for _, cc := range cfg.Clubs {
		c := NewClub(cc.Name)
		for _, p := range cc.Players {
			c.Players = append(c.Players, Player{
				Name:     p.Name,
				Position: p.Position,
				Rating:   p.Rating,
				Age:      p.Age,
			})
		}
		EnsureMinimumPlayers(c, MinSquadSize, rng)
		clubs = append(clubs, c)
	}

	return New(cfg.Name, clubs, cfg.SeasonStart, cfg.SeasonEnd), nil
}
