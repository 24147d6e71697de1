package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matchday/internal/core"
	"github.com/vovakirdan/tui-matchday/internal/league"
)

// TableView selects what the league screen shows.
type TableView int

const (
	ViewStandings TableView = iota
	ViewFixtures
)

// TableKeyMap defines the key bindings for the league screen.
type TableKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevRound  key.Binding
	NextRound  key.Binding
	SwitchView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.PrevRound, k.NextRound, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k TableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevRound, k.NextRound},
		{k.SwitchView, k.Back, k.Quit},
	}
}

// DefaultTableKeyMap returns default key bindings.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevRound: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev round"),
		),
		NextRound: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next round"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "table/fixtures"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeagueTableModel is the Bubble Tea model for the standings and fixtures
// screen.
type LeagueTableModel struct {
	league    *league.League
	highlight string // Club name shown in bold
	view      TableView
	round     int
	table     table.Model
	help      help.Model
	keys      TableKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewLeagueTableModel creates a league screen opened on the standings.
func NewLeagueTableModel(l *league.League, highlight string, width, height int) LeagueTableModel {
	h := help.New()
	h.ShowAll = false

	round := l.CurrentRound()
	if round == 0 {
		round = max(1, l.Rounds())
	}

	m := LeagueTableModel{
		league:    l,
		highlight: highlight,
		round:     round,
		keys:      DefaultTableKeyMap(),
		help:      h,
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// columns returns the columns of the current view.
func (m *LeagueTableModel) columns() []table.Column {
	if m.view == ViewFixtures {
		return []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Home", Width: 22},
			{Title: "Score", Width: 7},
			{Title: "Away", Width: 22},
		}
	}
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Club", Width: 22},
		{Title: "P", Width: 3},
		{Title: "W", Width: 3},
		{Title: "D", Width: 3},
		{Title: "L", Width: 3},
		{Title: "GF", Width: 4},
		{Title: "GA", Width: 4},
		{Title: "GD", Width: 4},
		{Title: "Pts", Width: 4},
	}
}

// createTable creates a new table with the columns of the current view.
func (m *LeagueTableModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(5, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the league.
func (m *LeagueTableModel) updateTableRows() {
	var rows []table.Row
	cursor := 0

	if m.view == ViewFixtures {
		for _, f := range m.league.Round(m.round) {
			score := "v"
			if f.Played {
				score = f.Score
			}
			if f.Home.Name == m.highlight || f.Away.Name == m.highlight {
				cursor = len(rows)
			}
			rows = append(rows, table.Row{
				f.Date.Format("Mon Jan 02"),
				f.Home.Name,
				score,
				f.Away.Name,
			})
		}
	} else {
		for i, c := range m.league.Standings() {
			if c.Name == m.highlight {
				cursor = i
			}
			s := c.Stats
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				c.Name,
				fmt.Sprintf("%d", s.Played()),
				fmt.Sprintf("%d", s.Wins),
				fmt.Sprintf("%d", s.Draws),
				fmt.Sprintf("%d", s.Losses),
				fmt.Sprintf("%d", s.GoalsFor),
				fmt.Sprintf("%d", s.GoalsAgainst),
				fmt.Sprintf("%+d", s.GoalDifference()),
				fmt.Sprintf("%d", s.Points),
			})
		}
	}

	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
}

// Init initializes the league screen.
func (m LeagueTableModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the league screen.
func (m LeagueTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			if m.view == ViewStandings {
				m.view = ViewFixtures
			} else {
				m.view = ViewStandings
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.NextRound), key.Matches(msg, m.keys.PrevRound):
			if m.view != ViewFixtures || m.league.Rounds() == 0 {
				return m, nil
			}
			if key.Matches(msg, m.keys.NextRound) {
				m.round = m.round%m.league.Rounds() + 1
			} else {
				m.round--
				if m.round < 1 {
					m.round = m.league.Rounds()
				}
			}
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the league screen.
func (m LeagueTableModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("%s %s - TABLE", strings.ToUpper(m.league.Name), m.league.Season())
	if m.view == ViewFixtures {
		title = fmt.Sprintf("%s %s - ROUND %d OF %d", strings.ToUpper(m.league.Name), m.league.Season(), m.round, m.league.Rounds())
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No fixtures scheduled.")
	} else {
		content = m.table.View()
	}
	b.WriteString(centerText(tableStyle.Render(content), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to the picker.
func (m LeagueTableModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LeagueTableModel) IsQuitting() bool {
	return m.quitting
}

// RunLeagueTable runs the league screen.
// Returns true if user wants to go back, false if quitting.
func RunLeagueTable(l *league.League, highlight string, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewLeagueTableModel(l, highlight, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LeagueTableModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
