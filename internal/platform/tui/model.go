package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/pong"
)

// Model is the Bubble Tea model for a local two-player game.
type Model struct {
	driver  pong.Driver
	canvas  *core.Canvas
	hold    *HoldTracker
	keys    KeyMap
	help    help.Model
	runtime core.RuntimeConfig
	logger  *log.Logger
	now     func() time.Time

	width      int
	height     int
	autoExpand bool // Expand on the first window size
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger. The default discards everything, since the
// terminal belongs to the game.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock sets the clock used to stamp key presses.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// NewModel creates a model driving d.
func NewModel(d pong.Driver, rt core.RuntimeConfig, opts ...ModelOption) Model {
	cfg := d.Game().Config()
	canvas := core.NewCanvas(core.NewScreen(0, 0), cfg.Viewport.CellWidth, cfg.Viewport.CellHeight)

	m := Model{
		driver:     d,
		canvas:     canvas,
		hold:       NewHoldTracker(cfg.Input.HoldInitial, cfg.Input.HoldRepeat),
		keys:       NewKeyMap(cfg.Input.Keys),
		help:       help.New(),
		runtime:    rt,
		logger:     log.New(io.Discard),
		now:        time.Now,
		autoExpand: rt.Expanded,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Game returns the driven game.
func (m Model) Game() *pong.Game {
	return m.driver.Game()
}

// Quitting reports whether the player asked to leave the game.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes game keys to the game and everything else to the host
// bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if c, ok := m.Game().Keys().Lookup(k); ok {
		if c == pong.ControlServe {
			// The serve key acts on press; there is nothing to hold.
			m.driver.Apply(pong.KeyDownEvent{Key: k})
			m.driver.Apply(pong.KeyUpEvent{Key: k})
			return m, nil
		}
		for _, released := range m.hold.Press(c, k, m.now()) {
			m.driver.Apply(pong.KeyUpEvent{Key: released})
		}
		m.driver.Apply(pong.KeyDownEvent{Key: k})
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Start):
		m.driver.Apply(pong.StartEvent{})
	case key.Matches(msg, m.keys.Pause):
		m.releaseAll()
		m.driver.Apply(pong.PauseEvent{})
	case key.Matches(msg, m.keys.Reset):
		m.driver.Apply(pong.ResetEvent{})
	case key.Matches(msg, m.keys.Expand):
		m.toggleExpanded()
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
	}
	return m, nil
}

// handleResize forwards the new available area to the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	avail := m.available()
	if m.autoExpand {
		m.autoExpand = false
		m.driver.Apply(pong.ExpandEvent{Avail: avail})
		m.logger.Debug("viewport expanded", "field", m.Game().Field())
		return m, nil
	}
	m.driver.Apply(pong.ViewportEvent{Avail: avail})
	return m, nil
}

// handleTick releases lapsed keys and advances the game one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, released := range m.hold.Expired(now) {
		m.driver.Apply(pong.KeyUpEvent{Key: released})
	}
	m.driver.Apply(pong.TickEvent{At: now})
	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) toggleExpanded() {
	if m.Game().Expanded() {
		m.driver.Apply(pong.RestoreEvent{})
		m.logger.Debug("viewport restored", "field", m.Game().Field())
		return
	}
	m.driver.Apply(pong.ExpandEvent{Avail: m.available()})
	m.logger.Debug("viewport expanded", "field", m.Game().Field())
}

func (m Model) releaseAll() {
	for _, released := range m.hold.ReleaseAll() {
		m.driver.Apply(pong.KeyUpEvent{Key: released})
	}
}

// available returns the field area the terminal can show.
func (m Model) available() pong.Size {
	return availableField(m.width, m.height, m.canvas)
}

// saveScreenshot saves the current field as plain text.
func (m Model) saveScreenshot() error {
	drawField(m.Game(), m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".termpong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	score := m.Game().Score()
	filename := fmt.Sprintf("pong_%d-%d_%s.txt", score.Left, score.Right, m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return err
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	g := m.Game()
	drawField(g, m.canvas)
	hud := renderHUD(g.Score(), status(g), m.width)
	return composeFrame(hud, RenderScreen(m.canvas.Screen()), m.help.View(m.keys), m.width)
}

// Run starts the Bubble Tea program for d and blocks until the player quits.
func Run(d pong.Driver, rt core.RuntimeConfig, opts ...ModelOption) error {
	p := tea.NewProgram(
		NewModel(d, rt, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
