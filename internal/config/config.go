// Package config provides YAML-based match and league configuration with
// embedded defaults and skill presets for generated squads.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-matchday/internal/pitch"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// MinPitchCells is the smallest pitch that seats two sides of eleven.
const MinPitchCells = 22

// MatchConfig contains everything that tunes a live match.
type MatchConfig struct {
	Pitch      pitch.Bounds     `yaml:"pitch"`
	Rules      RulesConfig      `yaml:"rules"`
	Pace       PaceConfig       `yaml:"pace"`
	Control    ControlConfig    `yaml:"control"`
	Placement  PlacementConfig  `yaml:"placement"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// RulesConfig holds the probabilities and distances of the simulation.
type RulesConfig struct {
	TackleFactor       float64 `yaml:"tackle_factor"`       // Tackle chance = skill * factor
	TackleRadius       int     `yaml:"tackle_radius"`       // Chebyshev distance
	InterceptionFactor float64 `yaml:"interception_factor"` // Interception chance = skill * factor
	InterceptionRadius float64 `yaml:"interception_radius"` // Euclidean distance from each ball position of a pass
	ShotSuccess        float64 `yaml:"shot_success"`        // Flat probability a shot scores
	PassBand           int     `yaml:"pass_band"`           // Percent of action rolls that pass
	ShotBand           int     `yaml:"shot_band"`           // Percent of action rolls that shoot
	PassSteps          int     `yaml:"pass_steps"`          // Interpolation steps of a pass
	MovementNoise      int     `yaml:"movement_noise"`      // Max vertical jitter of movement targets
	HalfTimeMinute     int     `yaml:"half_time_minute"`
	FullTimeMinute     int     `yaml:"full_time_minute"`
}

// PaceConfig maps the user-facing speed setting onto wall-clock time.
// One simulated minute takes BaseInterval / speed.
type PaceConfig struct {
	DefaultSpeed  int           `yaml:"default_speed"`
	MinSpeed      int           `yaml:"min_speed"`
	MaxSpeed      int           `yaml:"max_speed"`
	SpeedStep     int           `yaml:"speed_step"`
	BaseInterval  time.Duration `yaml:"base_interval"`
	AnimationBase time.Duration `yaml:"animation_base"` // Whole pass animation at speed 1
}

// ControlConfig selects the manually controlled entity.
type ControlConfig struct {
	Enabled         bool   `yaml:"enabled"`
	UserSide        string `yaml:"user_side"` // "home" or "away"
	ControlledIndex int    `yaml:"controlled_index"`
}

// PlacementConfig selects how entities are seated at kick-off.
type PlacementConfig struct {
	Mode      string `yaml:"mode"`      // "formation" or "random"
	Formation string `yaml:"formation"` // "4-4-2", "4-3-3" or "3-5-2"
}

// Placement modes.
const (
	PlacementFormation = "formation"
	PlacementRandom    = "random"
)

// Sides accepted by ControlConfig.UserSide.
const (
	SideHome = "home"
	SideAway = "away"
)

// Validate reports the first inconsistent setting.
func (c MatchConfig) Validate() error {
	if err := c.Pitch.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cells := c.Pitch.Width() * c.Pitch.Height(); cells < MinPitchCells {
		return fmt.Errorf("%w: pitch has %d cells, need %d", ErrInvalidConfig, cells, MinPitchCells)
	}
	r := c.Rules
	for name, p := range map[string]float64{
		"tackle_factor":       r.TackleFactor,
		"interception_factor": r.InterceptionFactor,
		"shot_success":        r.ShotSuccess,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: rules.%s %.2f outside [0,1]", ErrInvalidConfig, name, p)
		}
	}
	if r.PassBand < 0 || r.ShotBand < 0 || r.PassBand+r.ShotBand > 100 {
		return fmt.Errorf("%w: action bands %d+%d exceed 100", ErrInvalidConfig, r.PassBand, r.ShotBand)
	}
	if r.PassSteps < 1 {
		return fmt.Errorf("%w: rules.pass_steps must be positive", ErrInvalidConfig)
	}
	if r.TackleRadius < 0 || r.InterceptionRadius < 0 || r.MovementNoise < 0 {
		return fmt.Errorf("%w: negative radius or noise", ErrInvalidConfig)
	}
	if r.HalfTimeMinute < 1 || r.FullTimeMinute <= r.HalfTimeMinute {
		return fmt.Errorf("%w: half time %d must precede full time %d", ErrInvalidConfig, r.HalfTimeMinute, r.FullTimeMinute)
	}

	p := c.Pace
	if p.MinSpeed < 1 || p.MaxSpeed < p.MinSpeed || p.DefaultSpeed < p.MinSpeed || p.DefaultSpeed > p.MaxSpeed {
		return fmt.Errorf("%w: speed %d outside [%d,%d]", ErrInvalidConfig, p.DefaultSpeed, p.MinSpeed, p.MaxSpeed)
	}
	if p.BaseInterval <= 0 {
		return fmt.Errorf("%w: pace.base_interval must be positive", ErrInvalidConfig)
	}

	if c.Control.UserSide != SideHome && c.Control.UserSide != SideAway {
		return fmt.Errorf("%w: control.user_side %q", ErrInvalidConfig, c.Control.UserSide)
	}
	if c.Control.ControlledIndex < 0 || c.Control.ControlledIndex > 10 {
		return fmt.Errorf("%w: control.controlled_index %d outside 0..10", ErrInvalidConfig, c.Control.ControlledIndex)
	}

	switch c.Placement.Mode {
	case PlacementFormation, PlacementRandom:
	default:
		return fmt.Errorf("%w: placement.mode %q", ErrInvalidConfig, c.Placement.Mode)
	}
	if _, ok := SkillRangeForPreset(c.Difficulty); !ok {
		return fmt.Errorf("%w: difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	return nil
}

// LeagueConfig describes the clubs and season window of a league.
type LeagueConfig struct {
	Name        string       `yaml:"name"`
	SeasonStart time.Time    `yaml:"season_start"`
	SeasonEnd   time.Time    `yaml:"season_end"`
	UserClub    string       `yaml:"user_club"`
	Clubs       []ClubConfig `yaml:"clubs"`
}

// ClubConfig is one club entry. Squads shorter than the minimum are topped
// up with generated players when the league is built.
type ClubConfig struct {
	Name    string         `yaml:"name"`
	Players []PlayerConfig `yaml:"players"`
}

// PlayerConfig is one named squad member.
type PlayerConfig struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Rating   int    `yaml:"rating"`
	Age      int    `yaml:"age"`
}

// Validate checks that the league can produce a schedule.
func (c LeagueConfig) Validate() error {
	if len(c.Clubs) < 2 {
		return fmt.Errorf("%w: league needs at least 2 clubs, got %d", ErrInvalidConfig, len(c.Clubs))
	}
	seen := make(map[string]bool, len(c.Clubs))
	for _, club := range c.Clubs {
		if club.Name == "" {
			return fmt.Errorf("%w: club without a name", ErrInvalidConfig)
		}
		if seen[club.Name] {
			return fmt.Errorf("%w: duplicate club %q", ErrInvalidConfig, club.Name)
		}
		seen[club.Name] = true
	}
	if !c.SeasonEnd.IsZero() && c.SeasonEnd.Before(c.SeasonStart) {
		return fmt.Errorf("%w: season ends before it starts", ErrInvalidConfig)
	}
	return nil
}
