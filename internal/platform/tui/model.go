package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matchday/internal/core"
	"github.com/vovakirdan/tui-matchday/internal/match"
)

// MatchModel is the Bubble Tea model for a live match. It runs the same
// iteration as match.Loop: input is applied as it arrives, each tick steps
// the session, and passes are animated frame by frame once the step has
// settled.
type MatchModel struct {
	session  *match.Session
	screen   *core.Screen
	keys     MatchKeyMap
	help     help.Model
	snap     match.Snapshot
	frames   int // Trail frames shown; len(snap.Trail) when settled
	gen      int
	width    int
	height   int
	leaving  bool // User acknowledged the final score
	quitting bool // Program should exit without showing anything more
}

// NewMatchModel creates a match model for a prepared session.
func NewMatchModel(s *match.Session, width, height int) MatchModel {
	snap := s.Engine.Snapshot()
	return MatchModel{
		session: s,
		screen:  core.NewScreen(match.ScreenWidth, match.ScreenHeight),
		keys:    DefaultMatchKeyMap(),
		help:    help.New(),
		snap:    snap,
		frames:  len(snap.Trail),
		width:   width,
		height:  height,
	}
}

// Init starts the tick loop.
func (m MatchModel) Init() tea.Cmd {
	return tickCmd(m.gen, m.session.Interval())
}

// Update handles messages and updates the model state.
func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case FrameMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleFrame()
	}

	return m, nil
}

// schedule is what decides how long the next wait is.
type schedule struct {
	live  bool
	speed int
}

func (m MatchModel) schedule() schedule {
	return schedule{live: m.session.Live(), speed: m.session.Pace.Speed()}
}

func (m MatchModel) animating() bool {
	return m.frames < len(m.snap.Trail)
}

// handleKey processes keyboard input.
func (m MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Done() {
		switch msg.String() {
		case "enter", "esc", "q", " ", "b":
			m.leaving = true
			return m, tea.Quit
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	m.keys.MapKeyToFrame(msg, &frame)
	if frame.Empty() {
		return m, nil
	}

	before := m.schedule()
	m.session.Apply(frame)
	m.snap = m.session.Engine.Snapshot()
	if !m.animating() {
		m.frames = len(m.snap.Trail)
	}

	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.session.Done() {
		m.frames = len(m.snap.Trail)
		m.gen++
		return m, nil
	}

	// Resume, pause and speed changes take effect now rather than after
	// the wait already scheduled.
	if m.schedule() != before && !m.animating() {
		m.gen++
		return m, tickCmd(m.gen, m.session.Interval())
	}
	return m, nil
}

// handleTick runs one loop iteration.
func (m MatchModel) handleTick() (tea.Model, tea.Cmd) {
	stepped := m.session.Advance()
	m.snap = m.session.Engine.Snapshot()
	m.frames = len(m.snap.Trail)

	if m.session.Done() {
		return m, nil
	}
	if stepped && len(m.snap.Trail) > 0 {
		m.frames = 0
		return m, frameCmd(m.gen, m.session.Pace.FrameInterval(len(m.snap.Trail)))
	}
	return m, tickCmd(m.gen, m.session.Interval())
}

// handleFrame advances the pass animation.
func (m MatchModel) handleFrame() (tea.Model, tea.Cmd) {
	m.frames++
	if m.animating() {
		return m, frameCmd(m.gen, m.session.Pace.FrameInterval(len(m.snap.Trail)))
	}
	return m, tickCmd(m.gen, m.session.Interval())
}

// saveScreenshot saves the current screen to a file.
func (m *MatchModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".matchday", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("match_%d_%s.txt", m.snap.Minute, timestamp))

	//nolint:errcheck // Best-effort save, match continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m MatchModel) draw() {
	match.Render(m.screen, m.snap, m.session.HUD())
	if m.animating() {
		match.RenderPitch(m.screen, m.snap, m.frames)
	}
}

// View renders the current state to a string for display.
func (m MatchModel) View() string {
	if m.quitting || m.leaving {
		return ""
	}
	if m.width > 0 && (m.width < match.ScreenWidth || m.height < match.ScreenHeight+2) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			match.ScreenWidth, match.ScreenHeight+2, m.width, m.height)
	}

	m.draw()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.session.Done() {
		b.WriteString(finalScoreLine(m.snap))
	} else {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

func finalScoreLine(snap match.Snapshot) string {
	label := "FULL TIME"
	if snap.Reason == match.EndQuit {
		label = fmt.Sprintf("MATCH ENDED %d'", snap.Minute)
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	return style.Render(fmt.Sprintf("%s  %s %s %s", label, snap.HomeClub, snap.Score(), snap.AwayClub)) +
		"  press enter to continue"
}

// Outcome returns the match outcome and whether the match has ended.
func (m MatchModel) Outcome() (match.Outcome, bool) {
	return m.session.Engine.Outcome(), m.session.Done()
}

// IsQuitting returns true if the user asked to leave the program.
func (m MatchModel) IsQuitting() bool {
	return m.quitting
}

// Finished returns true once the user has left the final score screen.
func (m MatchModel) Finished() bool {
	return m.leaving
}

// RunMatch runs a match in the terminal until the user leaves the final
// score screen. The outcome is committed by the engine as soon as the
// match ends; ended reports whether that happened.
func RunMatch(s *match.Session, cfg core.RuntimeConfig) (o match.Outcome, ended bool, err error) {
	p := tea.NewProgram(
		NewMatchModel(s, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return s.Engine.Outcome(), s.Done(), err
	}
	return s.Engine.Outcome(), s.Done(), nil
}
