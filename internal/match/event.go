package match

import "fmt"

// EventKind classifies something notable that happened during a step.
type EventKind int

const (
	EventKickOff EventKind = iota
	EventPass
	EventInterception
	EventTackle
	EventGoal
	EventMiss
	EventHalfTime
	EventFullTime
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventKickOff:
		return "kick-off"
	case EventPass:
		return "pass"
	case EventInterception:
		return "interception"
	case EventTackle:
		return "tackle"
	case EventGoal:
		return "goal"
	case EventMiss:
		return "miss"
	case EventHalfTime:
		return "half-time"
	case EventFullTime:
		return "full-time"
	case EventQuit:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Event is one line of the match feed.
type Event struct {
	Minute int
	Kind   EventKind
	Side   Side
	Actor  string
	Target string
}

// String renders the event for the feed, e.g. "23' GOAL A9 (home)".
func (e Event) String() string {
	switch e.Kind {
	case EventGoal:
		return fmt.Sprintf("%d' GOAL %s (%s)", e.Minute, e.Actor, e.Side)
	case EventMiss:
		return fmt.Sprintf("%d' %s shoots wide", e.Minute, e.Actor)
	case EventTackle:
		return fmt.Sprintf("%d' %s tackles %s", e.Minute, e.Actor, e.Target)
	case EventInterception:
		return fmt.Sprintf("%d' %s intercepts", e.Minute, e.Actor)
	case EventPass:
		return fmt.Sprintf("%d' %s to %s", e.Minute, e.Actor, e.Target)
	case EventKickOff:
		return fmt.Sprintf("%d' %s restarts", e.Minute, e.Actor)
	case EventHalfTime:
		return fmt.Sprintf("%d' Half-time", e.Minute)
	case EventFullTime:
		return fmt.Sprintf("%d' Full-time", e.Minute)
	case EventQuit:
		return fmt.Sprintf("%d' Match abandoned", e.Minute)
	default:
		return fmt.Sprintf("%d' %s", e.Minute, e.Kind)
	}
}
