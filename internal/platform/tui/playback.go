package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/replay"
)

// PlaybackKeyMap defines the key bindings while watching a replay.
type PlaybackKeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlaybackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlaybackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Quit}}
}

// DefaultPlaybackKeyMap returns default key bindings.
func DefaultPlaybackKeyMap() PlaybackKeyMap {
	return PlaybackKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "back"),
		),
	}
}

// PlaybackModel plays a replay back in real time.
type PlaybackModel struct {
	player  *replay.Player
	canvas  *core.Canvas
	keys    PlaybackKeyMap
	help    help.Model
	fps     int
	width   int
	offset  time.Duration // Replay time shown
	last    time.Time     // Previous tick, zero before the first
	paused  bool
	done    bool
	leaving bool
}

// NewPlaybackModel creates a model for p.
func NewPlaybackModel(p *replay.Player, fps int) PlaybackModel {
	vp := p.Game().Config().Viewport
	return PlaybackModel{
		player: p,
		canvas: core.NewCanvas(core.NewScreen(0, 0), vp.CellWidth, vp.CellHeight),
		keys:   DefaultPlaybackKeyMap(),
		help:   help.New(),
		fps:    fps,
	}
}

// Init starts the frame loop.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.leaving = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() && !m.paused && !m.done {
			m.offset += now.Sub(m.last)
		}
		m.last = now
		if !m.done {
			m.done = m.player.Advance(m.offset)
		}
		return m, tickCmd(m.fps)
	}
	return m, nil
}

// View renders the replayed game.
func (m PlaybackModel) View() string {
	if m.leaving {
		return ""
	}

	g := m.player.Game()
	drawField(g, m.canvas)
	switch {
	case m.done:
		drawBanner(m.canvas, "END OF REPLAY")
	case m.paused:
		drawBanner(m.canvas, "PAUSED")
	}

	state := fmt.Sprintf("replay %s / %s",
		m.offset.Truncate(time.Second), m.player.Length().Truncate(time.Second))
	switch {
	case m.done:
		state = "replay finished"
	case m.paused:
		state += " · paused"
	}
	hud := renderHUD(g.Score(), state, m.width)
	return composeFrame(hud, RenderScreen(m.canvas.Screen()), m.help.View(m.keys), m.width)
}

// Done reports whether every recorded event has been applied.
func (m PlaybackModel) Done() bool {
	return m.done
}

// Leaving reports whether the viewer asked to stop.
func (m PlaybackModel) Leaving() bool {
	return m.leaving
}

// RunPlayback watches p in the terminal until the viewer leaves.
func RunPlayback(p *replay.Player, fps int) error {
	prog := tea.NewProgram(
		NewPlaybackModel(p, fps),
		tea.WithAltScreen(),
	)
	_, err := prog.Run()
	return err
}
