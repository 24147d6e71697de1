package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-matchday/internal/pitch"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

//go:embed defaults/league.yaml
var defaultLeagueYAML []byte

// DefaultMatchConfig returns the hard-coded match configuration. It matches
// the embedded match.yaml and is the base every loaded document overlays.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Pitch: pitch.DefaultBounds(),
		Rules: RulesConfig{
			TackleFactor:       0.5,
			TackleRadius:       2,
			InterceptionFactor: 0.5,
			InterceptionRadius: 2,
			ShotSuccess:        0.3,
			PassBand:           10,
			ShotBand:           5,
			PassSteps:          10,
			MovementNoise:      0,
			HalfTimeMinute:     45,
			FullTimeMinute:     90,
		},
		Pace: PaceConfig{
			DefaultSpeed:  100,
			MinSpeed:      1,
			MaxSpeed:      300,
			SpeedStep:     10,
			BaseInterval:  20 * time.Second, // 200ms per minute at speed 100
			AnimationBase: 3 * time.Second,
		},
		Control: ControlConfig{
			Enabled:         true,
			UserSide:        SideHome,
			ControlledIndex: 10,
		},
		Placement: PlacementConfig{
			Mode:      PlacementFormation,
			Formation: "4-4-2",
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultLeagueConfig returns a minimal two-club league used only when the
// embedded document cannot be parsed.
func DefaultLeagueConfig() LeagueConfig {
	start := time.Date(2025, time.August, 16, 0, 0, 0, 0, time.UTC)
	return LeagueConfig{
		Name:        "Friendly Cup",
		SeasonStart: start,
		SeasonEnd:   start.AddDate(0, 9, 0),
		UserClub:    "Home XI",
		Clubs:       []ClubConfig{{Name: "Home XI"}, {Name: "Away XI"}},
	}
}

// GetDefaultYAML returns the embedded default document by name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "match":
		return defaultMatchYAML
	case "league":
		return defaultLeagueYAML
	default:
		return nil
	}
}
