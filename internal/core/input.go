package core

// Action is a semantic control intent, decoupled from the physical key that
// produced it. Bindings live in the platform layer.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Menu cursor up
	ActionDown             // Menu cursor down
	ActionLeft             // Switch to the live match section
	ActionRight            // Switch to the settings section
	ActionConfirm          // Open the highlighted settings entry
	ActionBack             // Close the open sub-screen
	ActionPause            // Toggle pause
	ActionQuit             // End the match now
	ActionSpeedUp          // Faster wall-clock pacing
	ActionSpeedDown        // Slower wall-clock pacing
	ActionMoveUp           // Move the controlled entity up
	ActionMoveDown         // Move the controlled entity down
	ActionMoveLeft         // Move the controlled entity left
	ActionMoveRight        // Move the controlled entity right
)

// ActionOrder is the fixed order in which a frame's actions are applied.
// Quit is last so every other intent of the same frame still lands.
var ActionOrder = []Action{
	ActionPause,
	ActionLeft,
	ActionRight,
	ActionUp,
	ActionDown,
	ActionConfirm,
	ActionBack,
	ActionSpeedUp,
	ActionSpeedDown,
	ActionMoveUp,
	ActionMoveDown,
	ActionMoveLeft,
	ActionMoveRight,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two loop iterations.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Ordered returns the frame's actions in ActionOrder.
func (f InputFrame) Ordered() []Action {
	out := make([]Action, 0, len(f.Actions))
	for _, a := range ActionOrder {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
