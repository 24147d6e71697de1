package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matchday/internal/core"
	"github.com/vovakirdan/tui-matchday/internal/league"
)

// ClubPickerModel is the Bubble Tea model for choosing the club to manage.
type ClubPickerModel struct {
	league    *league.League
	cursor    int
	width     int
	height    int
	quitting  bool
	selected  *league.Club // Set when user picks a club
	openTable bool         // True if user asked for the league table
}

// NewClubPickerModel creates a picker with the cursor on the given club,
// or on the first club when it is not found.
func NewClubPickerModel(l *league.League, current string, width, height int) ClubPickerModel {
	m := ClubPickerModel{league: l, width: width, height: height}
	for i, c := range l.Clubs {
		if strings.EqualFold(c.Name, current) {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the picker model.
func (m ClubPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m ClubPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m ClubPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.league.Clubs)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.league.Clubs) > 0 {
			m.selected = m.league.Clubs[m.cursor]
			return m, tea.Quit
		}

	case MenuActionTable:
		m.openTable = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker.
func (m ClubPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  M A T C H D A Y  "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(fmt.Sprintf("%s %s", m.league.Name, m.league.Season())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your club", m.width))
	b.WriteString("\n\n")

	for i, c := range m.league.Clubs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		next := "season over"
		if f := m.league.NextFixture(c); f != nil {
			next = fmt.Sprintf("next: %s", opponentLabel(f, c))
		}
		line := fmt.Sprintf("%s%-22s avg %2.0f  %-3s  %s", cursor, c.Name, c.AverageRating(), fmt.Sprintf("%dp", c.Stats.Points), next)
		if i == m.cursor {
			line = titleStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play next fixture  |  Tab: Table  |  Q: Quit"
	b.WriteString(centerText(mutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// opponentLabel describes a fixture from one club's point of view.
func opponentLabel(f *league.Fixture, c *league.Club) string {
	if f.Home == c {
		return fmt.Sprintf("%s (H) R%d", f.Away.Name, f.Round)
	}
	return fmt.Sprintf("%s (A) R%d", f.Home.Name, f.Round)
}

// Selected returns the picked club, or nil if none was picked.
func (m ClubPickerModel) Selected() *league.Club {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m ClubPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsTable returns true if user requested the league table.
func (m ClubPickerModel) WantsTable() bool {
	return m.openTable
}

// ClubPickerResult holds the result of running the picker.
type ClubPickerResult struct {
	Club       *league.Club
	WantsTable bool
	Quit       bool
}

// RunClubPicker runs the picker and returns the selection result.
func RunClubPicker(l *league.League, current string, cfg core.RuntimeConfig) (ClubPickerResult, error) {
	p := tea.NewProgram(
		NewClubPickerModel(l, current, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ClubPickerResult{}, err
	}

	m, ok := finalModel.(ClubPickerModel)
	if !ok {
		return ClubPickerResult{Quit: true}, nil
	}

	switch {
	case m.WantsTable():
		return ClubPickerResult{WantsTable: true}, nil
	case m.Selected() != nil:
		return ClubPickerResult{Club: m.Selected()}, nil
	default:
		return ClubPickerResult{Quit: true}, nil
	}
}
