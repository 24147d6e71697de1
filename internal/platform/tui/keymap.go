package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-matchday/internal/core"
)

// MatchKeyMap defines the key bindings of the live match view.
type MatchKeyMap struct {
	Pause     key.Binding
	Quit      key.Binding
	Back      key.Binding
	Confirm   key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Help      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.SpeedUp, k.SpeedDown, k.MoveUp, k.Right, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k MatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.SpeedUp, k.SpeedDown},
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Back, k.Quit, k.Help},
	}
}

// DefaultMatchKeyMap returns default key bindings.
func DefaultMatchKeyMap() MatchKeyMap {
	return MatchKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "end match"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/apply"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("wasd", "move player"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "move down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "move right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "menu up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "menu down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left", "live match"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// Action translates a key message into a match action.
// Returns core.ActionNone for keys the match does not use.
func (k MatchKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Pause, core.ActionPause},
		{k.Quit, core.ActionQuit},
		{k.Back, core.ActionBack},
		{k.Confirm, core.ActionConfirm},
		{k.SpeedUp, core.ActionSpeedUp},
		{k.SpeedDown, core.ActionSpeedDown},
		{k.MoveUp, core.ActionMoveUp},
		{k.MoveDown, core.ActionMoveDown},
		{k.MoveLeft, core.ActionMoveLeft},
		{k.MoveRight, core.ActionMoveRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MapKeyToFrame adds the action for a key to an input frame.
// Returns true if the key was a quit request.
func (k MatchKeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.Action(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionTable
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "t":
		return MenuActionTable
	}
	return MenuActionNone
}
