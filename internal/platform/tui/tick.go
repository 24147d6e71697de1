// Package tui provides the Bubble Tea integration for matchday.
// It handles the terminal UI loop, input mapping and screen flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one iteration of the match loop. Gen ties it to the
// schedule that produced it, so superseded ticks are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// FrameMsg advances a pass animation by one frame.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// minFrameInterval keeps animation frames visible at high speeds.
const minFrameInterval = 15 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends a tick after d.
func tickCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// frameCmd returns a Bubble Tea command that sends an animation frame after d.
func frameCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(max(d, minFrameInterval), func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}
