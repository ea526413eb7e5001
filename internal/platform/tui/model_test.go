package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/replay"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, cfg config.PongConfig, rt core.RuntimeConfig) (Model, *stepClock) {
	t.Helper()
	clk := &stepClock{now: t0}
	g := pong.New(cfg, pong.Options{Seed: 7})
	return NewModel(pong.Direct(g), rt, WithClock(clk.Now)), clk
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelPaddleKeys(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig(), core.DefaultConfig())
	g := m.Game()

	m, _ = update(t, m, runes("w"))
	if !g.Held(pong.ControlLeftUp) {
		t.Fatal("w did not press left up")
	}

	m, _ = update(t, m, runes("s"))
	if g.Held(pong.ControlLeftUp) {
		t.Error("left up still held after pressing down")
	}
	if !g.Held(pong.ControlLeftDown) {
		t.Error("s did not press left down")
	}

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !g.Held(pong.ControlRightUp) || !g.Held(pong.ControlLeftDown) {
		t.Error("right paddle key interfered with left paddle")
	}
}

func TestModelHoldExpiresOnTick(t *testing.T) {
	cfg := config.DefaultPongConfig()
	m, _ := newTestModel(t, cfg, core.DefaultConfig())
	g := m.Game()

	m, _ = update(t, m, runes("w"))
	m, _ = update(t, m, TickMsg(t0.Add(cfg.Input.HoldInitial/2)))
	if !g.Held(pong.ControlLeftUp) {
		t.Fatal("released before the hold timeout")
	}

	_, cmd := update(t, m, TickMsg(t0.Add(cfg.Input.HoldInitial+time.Millisecond)))
	if g.Held(pong.ControlLeftUp) {
		t.Error("hold did not expire")
	}
	if cmd == nil {
		t.Error("tick did not schedule the next frame")
	}
}

func TestModelServeKey(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Input.Keys.Serve = []string{"x"}
	m, _ := newTestModel(t, cfg, core.DefaultConfig())
	g := m.Game()

	if g.Running() {
		t.Fatal("new game should be paused")
	}
	_, _ = update(t, m, runes("x"))
	if !g.Running() {
		t.Error("serve key did not start the game")
	}
	if g.Held(pong.ControlServe) {
		t.Error("serve flag left set")
	}
}

func TestModelPauseReleasesKeys(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig(), core.DefaultConfig())
	g := m.Game()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, runes("w"))
	if !g.Running() || !g.Held(pong.ControlLeftUp) {
		t.Fatal("setup: want running with w held")
	}

	_, _ = update(t, m, runes("p"))
	if g.Running() {
		t.Error("p did not pause")
	}
	if g.Held(pong.ControlLeftUp) {
		t.Error("pause did not release held keys")
	}
}

func TestModelExpandToggle(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig(), core.DefaultConfig())
	g := m.Game()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})
	if g.Expanded() {
		t.Fatal("window size alone should not expand")
	}

	m, _ = update(t, m, runes("f"))
	if !g.Expanded() {
		t.Fatal("f did not expand")
	}
	if g.Field() == g.BaseField() {
		t.Errorf("expanded field %v equals base field", g.Field())
	}

	_, _ = update(t, m, runes("f"))
	if g.Expanded() {
		t.Error("second f did not restore")
	}
	if g.Field() != g.BaseField() {
		t.Errorf("restored field %v, want %v", g.Field(), g.BaseField())
	}
}

func TestModelAutoExpand(t *testing.T) {
	rt := core.DefaultConfig()
	rt.Expanded = true
	m, _ := newTestModel(t, config.DefaultPongConfig(), rt)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})
	if !m.Game().Expanded() {
		t.Error("first window size did not expand")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig(), core.DefaultConfig())

	m, cmd := update(t, m, runes("q"))
	if !m.Quitting() {
		t.Error("q did not quit")
	}
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if m.View() != "" {
		t.Error("view not empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultPongConfig(), core.DefaultConfig())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	if !strings.Contains(view, string(core.BlockChar)) {
		t.Error("view has no paddle cells")
	}
	if !strings.Contains(view, "space to serve") {
		t.Error("view has no paused status")
	}

	// Field is 80x25 cells; the border adds two of each.
	cols, rows := m.canvas.Cells(m.Game().Field().W, m.Game().Field().H)
	if cols != 80 || rows != 25 {
		t.Errorf("field cells = %dx%d, want 80x25", cols, rows)
	}
}

func TestModelRecordsThroughDriver(t *testing.T) {
	clk := &stepClock{now: t0}
	rec := replay.NewRecorder(config.DefaultPongConfig(), 3, clk.Now, pong.Hooks{})
	m := NewModel(rec, core.DefaultConfig(), WithClock(clk.Now))

	m, _ = update(t, m, runes("w"))
	_, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	if rec.Len() != 2 {
		t.Errorf("recorded %d events, want 2", rec.Len())
	}
}

func TestAvailableField(t *testing.T) {
	c := core.NewCanvas(core.NewScreen(0, 0), 10, 20)

	tests := []struct {
		name       string
		cols, rows int
		want       pong.Size
	}{
		{"normal", 102, 54, pong.Size{W: 1000, H: 1000}},
		{"tiny", 1, 2, pong.Size{W: 0, H: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := availableField(tt.cols, tt.rows, c); got != tt.want {
				t.Errorf("availableField(%d, %d) = %v, want %v", tt.cols, tt.rows, got, tt.want)
			}
		})
	}
}
