package config

import (
	"fmt"

	"github.com/vovakirdan/tui-matchday/internal/core"
)

// DifficultyPreset represents a named difficulty level. It sets the skill
// range of generated players on the computer-controlled side.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// SkillRange is an inclusive range of entity skill values.
type SkillRange struct {
	Min float64
	Max float64
}

// UserSkillRange is the range used for generated players on the user's side
// regardless of the preset.
var UserSkillRange = SkillRange{Min: 0.6, Max: 0.8}

// SkillRangeForPreset returns the generated-player skill range for the
// computer side. An empty preset means normal.
func SkillRangeForPreset(preset DifficultyPreset) (SkillRange, bool) {
	switch preset {
	case DifficultyEasy:
		return SkillRange{Min: 0.45, Max: 0.65}, true
	case DifficultyNormal, "":
		return SkillRange{Min: 0.6, Max: 0.8}, true
	case DifficultyHard:
		return SkillRange{Min: 0.75, Max: 0.95}, true
	default:
		return SkillRange{}, false
	}
}

// Lerp maps t in [0,1] into the range.
func (r SkillRange) Lerp(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return r.Min + t*(r.Max-r.Min)
}

// ApplyPreset sets the difficulty of cfg, rejecting unknown presets.
func ApplyPreset(cfg *MatchConfig, preset DifficultyPreset) error {
	if _, ok := SkillRangeForPreset(preset); !ok {
		return fmt.Errorf("%w: difficulty %q", ErrInvalidConfig, preset)
	}
	cfg.Difficulty = preset
	return nil
}
