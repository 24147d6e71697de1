package match

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/league"
)

// ErrInvalidRoster is returned when a lineup cannot take the field.
var ErrInvalidRoster = errors.New("match: invalid roster")

// Lineup is one side's starting eleven plus the names left on the bench.
// Entities[0] is the goalkeeper.
type Lineup struct {
	Club     string
	Entities []Entity
	Bench    []string
}

// Validate checks the eleven has exactly one goalkeeper and sane skills.
func (l Lineup) Validate() error {
	if len(l.Entities) != SquadSize {
		return fmt.Errorf("%w: %s has %d entities, need %d", ErrInvalidRoster, l.Club, len(l.Entities), SquadSize)
	}
	keepers := 0
	for _, e := range l.Entities {
		if e.Keeper {
			keepers++
		}
		if e.Skill < 0 || e.Skill > 1 {
			return fmt.Errorf("%w: %s skill %.2f outside [0,1]", ErrInvalidRoster, e.Name, e.Skill)
		}
	}
	if keepers != 1 {
		return fmt.Errorf("%w: %s has %d goalkeepers", ErrInvalidRoster, l.Club, keepers)
	}
	return nil
}

// NewLineup picks the best-rated goalkeeper and ten best outfielders from
// the club. Missing slots are filled with generated entities drawn from
// the skill range; a nil club yields a fully generated side.
func NewLineup(club *league.Club, side Side, skill config.SkillRange, rng Rand) Lineup {
	if club == nil {
		return SyntheticLineup(fmt.Sprintf("Team %s", sidePrefix(side)), side, skill, rng)
	}

	l := Lineup{Club: club.Name}
	keepers := club.Goalkeepers()
	outfield := club.Outfielders()

	if len(keepers) > 0 {
		l.Entities = append(l.Entities, entityFromPlayer(keepers[0], side, true))
		for _, p := range keepers[1:] {
			l.Bench = append(l.Bench, benchLabel(p))
		}
	} else {
		l.Entities = append(l.Entities, syntheticEntity(side, 0, skill, rng))
	}

	for i, p := range outfield {
		if i < SquadSize-1 {
			l.Entities = append(l.Entities, entityFromPlayer(p, side, false))
			continue
		}
		l.Bench = append(l.Bench, benchLabel(p))
	}
	for len(l.Entities) < SquadSize {
		l.Entities = append(l.Entities, syntheticEntity(side, len(l.Entities), skill, rng))
	}
	return l
}

// SyntheticLineup generates eleven entities named A1..A11 (home) or
// B1..B11 (away) with skills drawn uniformly from the range.
func SyntheticLineup(name string, side Side, skill config.SkillRange, rng Rand) Lineup {
	l := Lineup{Club: name}
	for i := 0; i < SquadSize; i++ {
		l.Entities = append(l.Entities, syntheticEntity(side, i, skill, rng))
	}
	return l
}

func sidePrefix(side Side) string {
	if side == Home {
		return "A"
	}
	return "B"
}

func syntheticEntity(side Side, i int, skill config.SkillRange, rng Rand) Entity {
	pos := "OUT"
	if i == 0 {
		pos = league.PosGK
	}
	return Entity{
		Name:     fmt.Sprintf("%s%d", sidePrefix(side), i+1),
		Position: pos,
		Side:     side,
		Skill:    skill.Lerp(rng.Float64()),
		Keeper:   i == 0,
	}
}

func entityFromPlayer(p league.Player, side Side, keeper bool) Entity {
	return Entity{
		Name:     p.Name,
		Position: p.Position,
		Side:     side,
		Skill:    p.Skill(),
		Keeper:   keeper,
	}
}

func benchLabel(p league.Player) string {
	return fmt.Sprintf("%s - %s %d%%", p.Position, p.Name, p.Rating)
}
