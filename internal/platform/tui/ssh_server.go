package tui

import (
	"context"
	"errors"
	"fmt"
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

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/replay"
	"github.com/vovakirdan/termpong/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.termpong/host_key.
	HostKeyPath string

	// DBPath is the path to the replay database. Sessions are recorded
	// only when Record is set and the database opens.
	DBPath string
	Record bool

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the configuration every session starts from; the menu
	// applies the chosen difficulty on top.
	Game     config.PongConfig
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.termpong/replays.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultPongConfig(),
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server serving local two-player games, one
// per session: both players share the connecting keyboard.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong-ssh",
	})

	var store *storage.Store
	if cfg.Record {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open replay database, recording disabled", "error", err)
			store = nil
		}
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
		hostKeyPath = filepath.Join(home, ".termpong", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
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
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.config.Game, rt, s.store, logger)

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
	s.logger.Info("starting SSH server", "address", s.config.Address, "record", s.store != nil)

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

// SessionModel manages one session's flow: menu -> game -> menu.
type SessionModel struct {
	base     config.PongConfig
	runtime  core.RuntimeConfig
	store    *storage.Store
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	recorder *replay.Recorder
	size     tea.WindowSizeMsg
	quitting bool
}

// NewSessionModel creates a session starting at the title menu. A nil
// store disables recording.
func NewSessionModel(base config.PongConfig, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) SessionModel {
	return SessionModel{
		base:    base,
		runtime: rt,
		store:   store,
		logger:  logger,
		menu:    NewMenuModel(config.DifficultyNormal, false),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.size = wsm
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, tick := msg.(TickMsg); tick {
		// Late frame from a finished game.
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceNone:
		return m, cmd
	case ChoicePlay, ChoicePlayExpanded:
		return m.startGame(m.menu.Choice() == ChoicePlayExpanded, m.menu.Difficulty())
	default:
		m.quitting = true
		return m, tea.Quit
	}
}

// startGame builds the game for the chosen options and hands it the
// current window size.
func (m SessionModel) startGame(expanded bool, preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	cfg := m.base
	config.ApplyPongPreset(&cfg, preset)

	rt := m.runtime
	rt.Expanded = expanded
	rt.Seed++

	logger := m.logger
	hooks := pong.Hooks{
		OnScore: func(s pong.Scoreboard) {
			logger.Debug("score", "left", s.Left, "right", s.Right)
		},
	}

	var driver pong.Driver
	m.recorder = nil
	if m.store != nil {
		m.recorder = replay.NewRecorder(cfg, rt.Seed, nil, hooks)
		driver = m.recorder
	} else {
		driver = pong.Direct(pong.New(cfg, pong.Options{Seed: rt.Seed, Hooks: hooks}))
	}
	m.runtime = rt

	game := NewModel(driver, rt, WithLogger(logger))
	m.logger.Info("game started", "difficulty", preset, "expanded", expanded, "seed", rt.Seed)

	var cmd tea.Cmd
	if m.size.Width > 0 {
		var next tea.Model
		next, cmd = game.Update(m.size)
		game = next.(Model)
	}
	m.game = &game
	return m, tea.Batch(game.Init(), cmd)
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.Quitting() {
		m.finishGame()
		m.game = nil
		m.menu = NewMenuModel(m.menu.Difficulty(), false)
		if m.size.Width > 0 {
			next, _ := m.menu.Update(m.size)
			m.menu = next.(MenuModel)
		}
		return m, m.menu.Init()
	}

	return m, cmd
}

// finishGame stores the recording of the game that just ended.
func (m SessionModel) finishGame() {
	score := m.game.Game().Score()
	m.logger.Info("game ended", "left", score.Left, "right", score.Right)

	if m.recorder == nil || m.recorder.Len() == 0 {
		return
	}
	id, err := m.recorder.Save(m.store)
	if err != nil {
		m.logger.Error("could not save replay", "error", err)
		return
	}
	m.logger.Info("replay saved", "id", id, "events", m.recorder.Len())
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}
