package core

// Color is a semantic foreground colour for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPitch
	ColorLine
	ColorHome
	ColorAway
	ColorKeeper
	ColorHolder
	ColorBall
	ColorGoal
	ColorHighlight
	ColorMuted
	ColorAlert
)

// String returns the colour name, used in screenshots and debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPitch:
		return "pitch"
	case ColorLine:
		return "line"
	case ColorHome:
		return "home"
	case ColorAway:
		return "away"
	case ColorKeeper:
		return "keeper"
	case ColorHolder:
		return "holder"
	case ColorBall:
		return "ball"
	case ColorGoal:
		return "goal"
	case ColorHighlight:
		return "highlight"
	case ColorMuted:
		return "muted"
	case ColorAlert:
		return "alert"
	default:
		return "unknown"
	}
}
