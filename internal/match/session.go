package match

import (
	"time"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/core"
)

// Section is the top-level menu focus.
type Section int

const (
	SectionLive Section = iota
	SectionSettings
)

// SubMenu is a settings screen. While one is open the clock does not run.
type SubMenu int

const (
	SubMenuNone SubMenu = iota
	SubMenuSpeed
	SubMenuFormation
	SubMenuTactics
	SubMenuRoles
)

// SettingsOptions are the entries of the settings section in order.
var SettingsOptions = []string{
	"Game Speed",
	"Formation Change",
	"Modify Tactics",
	"Player Roles",
}

// HUD is the session state a renderer shows next to the pitch.
type HUD struct {
	Speed      int
	Section    Section
	MenuIndex  int
	SubMenu    SubMenu
	SubIndex   int
	Formation  string
	Tactic     Tactic
	Controlled int
}

// Session wraps an engine with pacing and the in-match menus, and turns
// control actions into engine calls.
type Session struct {
	Engine *Engine
	Pace   *Pace

	section   Section
	menuIndex int
	subMenu   SubMenu
	subIndex  int
	formation int

	// PauseAtHalfTime holds the clock after the half-time step until the
	// user resumes. Headless runs leave it off.
	PauseAtHalfTime bool
}

// NewSession creates a session in the live section.
func NewSession(e *Engine, cfg config.MatchConfig) *Session {
	s := &Session{Engine: e, Pace: NewPace(cfg.Pace)}
	for i, f := range Formations {
		if f.Name == cfg.Placement.Formation {
			s.formation = i
		}
	}
	return s
}

// Live reports whether the next Advance will run a step.
func (s *Session) Live() bool {
	return !s.Engine.Paused() && !s.Engine.Ended() &&
		s.section == SectionLive && s.subMenu == SubMenuNone
}

// Done reports whether the match is over.
func (s *Session) Done() bool {
	return s.Engine.Ended()
}

// Advance runs one step when live and reports whether it did.
func (s *Session) Advance() bool {
	if !s.Live() {
		return false
	}
	s.Engine.Step()
	if s.PauseAtHalfTime {
		for _, ev := range s.Engine.events {
			if ev.Kind == EventHalfTime {
				s.Engine.SetPaused(true)
			}
		}
	}
	return true
}

// Interval returns how long the loop should wait after this iteration.
func (s *Session) Interval() time.Duration {
	if !s.Live() {
		return pausedInterval
	}
	return s.Pace.Interval()
}

// HUD returns the menu state for rendering.
func (s *Session) HUD() HUD {
	return HUD{
		Speed:      s.Pace.Speed(),
		Section:    s.section,
		MenuIndex:  s.menuIndex,
		SubMenu:    s.subMenu,
		SubIndex:   s.subIndex,
		Formation:  Formations[s.formation].Name,
		Tactic:     s.Engine.Tactic(s.Engine.UserSide()),
		Controlled: s.Engine.Controlled(),
	}
}

// Apply handles one frame of input. Unknown or out-of-context actions are
// ignored.
func (s *Session) Apply(frame core.InputFrame) {
	for _, a := range frame.Ordered() {
		s.apply(a)
	}
}

func (s *Session) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		s.Engine.TogglePause()
		return
	case core.ActionQuit:
		s.Engine.Quit()
		return
	case core.ActionSpeedUp:
		s.Pace.Adjust(s.Pace.Step())
		return
	case core.ActionSpeedDown:
		s.Pace.Adjust(-s.Pace.Step())
		return
	}

	if s.subMenu != SubMenuNone {
		s.applySubMenu(a)
		return
	}

	switch s.section {
	case SectionLive:
		switch a {
		case core.ActionRight:
			s.section = SectionSettings
		case core.ActionMoveUp:
			s.Engine.MoveControlled(DirUp)
		case core.ActionMoveDown:
			s.Engine.MoveControlled(DirDown)
		case core.ActionMoveLeft:
			s.Engine.MoveControlled(DirLeft)
		case core.ActionMoveRight:
			s.Engine.MoveControlled(DirRight)
		}
	case SectionSettings:
		switch a {
		case core.ActionLeft, core.ActionBack:
			s.section = SectionLive
		case core.ActionUp:
			s.menuIndex = wrap(s.menuIndex-1, len(SettingsOptions))
		case core.ActionDown:
			s.menuIndex = wrap(s.menuIndex+1, len(SettingsOptions))
		case core.ActionConfirm:
			s.open(SubMenu(s.menuIndex + 1))
		}
	}
}

func (s *Session) open(m SubMenu) {
	s.subMenu = m
	switch m {
	case SubMenuFormation:
		s.subIndex = s.formation
	case SubMenuTactics:
		s.subIndex = int(s.Engine.Tactic(s.Engine.UserSide()))
	case SubMenuRoles:
		s.subIndex = max(0, s.Engine.Controlled())
	default:
		s.subIndex = 0
	}
}

func (s *Session) applySubMenu(a core.Action) {
	if a == core.ActionBack {
		s.subMenu = SubMenuNone
		return
	}
	switch s.subMenu {
	case SubMenuSpeed:
		switch a {
		case core.ActionUp, core.ActionRight, core.ActionConfirm:
			s.Pace.Adjust(s.Pace.Step())
		case core.ActionDown, core.ActionLeft:
			s.Pace.Adjust(-s.Pace.Step())
		}
	case SubMenuFormation:
		s.cycle(a, len(Formations), func(i int) {
			s.formation = i
			s.Engine.Reform(s.Engine.UserSide(), Formations[i])
		})
	case SubMenuTactics:
		s.cycle(a, len(Tactics), func(i int) {
			s.Engine.SetTactic(s.Engine.UserSide(), Tactics[i])
		})
	case SubMenuRoles:
		s.cycle(a, SquadSize, func(i int) {
			_ = s.Engine.SetControlled(i) // i is always within the squad
		})
	}
}

// cycle moves the sub-menu cursor and applies the highlighted entry on
// confirm, closing the sub-menu.
func (s *Session) cycle(a core.Action, n int, apply func(int)) {
	switch a {
	case core.ActionUp:
		s.subIndex = wrap(s.subIndex-1, n)
	case core.ActionDown:
		s.subIndex = wrap(s.subIndex+1, n)
	case core.ActionConfirm:
		apply(s.subIndex)
		s.subMenu = SubMenuNone
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
