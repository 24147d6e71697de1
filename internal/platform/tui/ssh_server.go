package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/core"
	"github.com/vovakirdan/tui-matchday/internal/league"
	"github.com/vovakirdan/tui-matchday/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.matchday/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Match and League configure every session's game.
	Match  config.MatchConfig
	League config.LeagueConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.matchday/results.db",
		IdleTimeout: 30 * time.Minute,
		Match:       config.DefaultMatchConfig(),
		League:      config.DefaultLeagueConfig(),
	}
}

// SSHServer wraps a Wish SSH server. Every connection manages its own
// copy of the league; nothing is shared between sessions except the
// results database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "matchday-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".matchday", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}

	l, err := league.Build(s.config.League, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		s.logger.Error("could not build league", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	day := &Matchday{
		League: l,
		Config: s.config.Match,
		Store:  s.store,
		Season: fmt.Sprintf("%s ssh:%s", l.Season(), sshSession.User()),
		Seed:   cfg.Seed,
		Logger: s.logger.With("user", sshSession.User()),
	}
	model := NewSessionModel(day, s.config.League.UserClub, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// screen is the part of the session flow currently shown.
type screen int

const (
	screenPicker screen = iota
	screenMatch
	screenTable
)

// SessionModel manages the full flow of one manager: club picker, match,
// league table and back. It is the top-level model of SSH sessions. The
// sub-models quit their own programs when done; here those commands are
// dropped and the flow moves to the next screen instead.
type SessionModel struct {
	day      *Matchday
	club     string
	width    int
	height   int
	current  screen
	picker   ClubPickerModel
	match    MatchModel
	fixture  *league.Fixture
	table    LeagueTableModel
	status   string
	quitting bool
}

// NewSessionModel creates a session opened on the club picker.
func NewSessionModel(day *Matchday, club string, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		day:    day,
		club:   club,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		picker: NewClubPickerModel(day.League, club, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.current {
	case screenMatch:
		return m.updateMatch(msg)
	case screenTable:
		return m.updateTable(msg)
	default:
		return m.updatePicker(msg)
	}
}

// updatePicker handles updates while choosing a club.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if pm, ok := next.(ClubPickerModel); ok {
		m.picker = pm
	}

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.picker.WantsTable():
		return m.openTable(), nil

	case m.picker.Selected() != nil:
		club := m.picker.Selected()
		m.club = club.Name
		session, fixture, err := m.day.Prepare(club)
		if err != nil {
			m.status = err.Error()
			m.picker = NewClubPickerModel(m.day.League, m.club, m.width, m.height)
			return m, nil
		}
		m.status = ""
		m.fixture = fixture
		m.match = NewMatchModel(session, m.width, m.height)
		m.current = screenMatch
		return m, m.match.Init()
	}

	return m, cmd
}

// updateMatch handles updates during a match.
func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.match.Update(msg)
	if mm, ok := next.(MatchModel); ok {
		m.match = mm
	}

	if m.match.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.match.Finished() {
		if _, err := m.day.FinishRound(context.Background(), m.fixture); err != nil {
			m.status = err.Error()
		}
		return m.openTable(), nil
	}

	return m, cmd
}

// updateTable handles updates on the league screen.
func (m SessionModel) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.table.Update(msg)
	if tm, ok := next.(LeagueTableModel); ok {
		m.table = tm
	}

	if m.table.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.table.IsGoingBack() {
		m.picker = NewClubPickerModel(m.day.League, m.club, m.width, m.height)
		m.current = screenPicker
		return m, m.picker.Init()
	}
	return m, cmd
}

func (m SessionModel) openTable() SessionModel {
	m.table = NewLeagueTableModel(m.day.League, m.club, m.width, m.height)
	m.current = screenTable
	return m
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	var v string
	switch m.current {
	case screenMatch:
		v = m.match.View()
	case screenTable:
		v = m.table.View()
	default:
		v = m.picker.View()
	}
	if m.status != "" {
		v += "\n" + m.status
	}
	return v
}
