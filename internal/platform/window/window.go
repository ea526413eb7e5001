//go:build raylib

package window

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/pong"
)

// Options configures the window.
type Options struct {
	Title    string
	FPS      int
	Expanded bool // Start in expanded mode
	Logger   *log.Logger
}

var (
	background = rl.NewColor(0x0b, 0x12, 0x20, 0xff)
	fieldColor = rl.NewColor(0x02, 0x06, 0x17, 0xff)
	hudColor   = rl.NewColor(0x94, 0xa3, 0xb8, 0xff)
)

// binding is a configured key and its raylib key code.
type binding struct {
	name string
	code int32
}

// Run opens the window and drives d until it is closed. Desktop keyboards
// report releases, so key events map one to one onto the game.
func Run(d pong.Driver, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Title == "" {
		opts.Title = "Pong"
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	g := d.Game()
	base := g.BaseField()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(base.W), int32(base.H)+ToolbarHeight, opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	keys := bindings(g.Keys())
	win := windowSize()
	if opts.Expanded {
		d.Apply(pong.ExpandEvent{Avail: Available(win)})
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			win = windowSize()
			d.Apply(pong.ViewportEvent{Avail: Available(win)})
		}
		if rl.IsKeyPressed(rl.KeyF11) {
			rl.ToggleFullscreen()
			win = windowSize()
			d.Apply(FullscreenEvent(rl.IsWindowFullscreen(), win))
		}
		for _, k := range keys {
			if rl.IsKeyPressed(k.code) {
				d.Apply(pong.KeyDownEvent{Key: k.name})
			}
			if rl.IsKeyReleased(k.code) {
				d.Apply(pong.KeyUpEvent{Key: k.name})
			}
		}

		d.Apply(pong.TickEvent{At: time.Now()})

		rl.BeginDrawing()
		rl.ClearBackground(background)
		ox, oy := Origin(win, g.Field())
		g.Render(&surface{x: ox, y: oy, size: g.Field()})
		drawScore(g, win)
		actions := toolbar(g)
		rl.EndDrawing()

		for _, ev := range actions {
			if _, ok := ev.(pong.ExpandEvent); ok {
				ev = pong.ExpandEvent{Avail: Available(win)}
			}
			d.Apply(ev)
			logger.Debug("toolbar", "event", fmt.Sprintf("%T", ev), "field", g.Field())
		}
	}
}

func windowSize() pong.Size {
	return pong.Size{W: float64(rl.GetScreenWidth()), H: float64(rl.GetScreenHeight())}
}

// toolbar draws the buttons and returns the events they produced.
func toolbar(g *pong.Game) []pong.Event {
	var events []pong.Event
	button := func(i int, label string) bool {
		return gui.Button(rl.Rectangle{X: float32(8 + i*98), Y: 7, Width: 90, Height: 30}, label)
	}

	if button(0, "Start") {
		events = append(events, pong.StartEvent{})
	}
	if button(1, "Pause") {
		events = append(events, pong.PauseEvent{})
	}
	if button(2, "Reset") {
		events = append(events, pong.ResetEvent{})
	}
	if g.Expanded() {
		if button(3, "Restore") {
			events = append(events, pong.RestoreEvent{})
		}
	} else if button(3, "Expand") {
		events = append(events, pong.ExpandEvent{})
	}
	return events
}

func drawScore(g *pong.Game, win pong.Size) {
	score := g.Score()
	text := fmt.Sprintf("%d : %d", score.Left, score.Right)
	width := rl.MeasureText(text, 24)
	rl.DrawText(text, int32(win.W)-width-16, 10, 24, hudColor)
}

// bindings lists the configured keys raylib can report, in a stable order.
func bindings(km pong.KeyMap) []binding {
	var out []binding
	for name := range km {
		if code, ok := keyCode(name); ok {
			out = append(out, binding{name: name, code: code})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// keyCode translates a key identifier as used in the configuration.
func keyCode(name string) (int32, bool) {
	switch name {
	case " ", "space":
		return rl.KeySpace, true
	case "enter":
		return rl.KeyEnter, true
	case "up":
		return rl.KeyUp, true
	case "down":
		return rl.KeyDown, true
	case "left":
		return rl.KeyLeft, true
	case "right":
		return rl.KeyRight, true
	}
	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), true
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), true
		}
	}
	return 0, false
}

// surface draws field coordinates at a pixel offset.
type surface struct {
	x, y float64
	size pong.Size
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 0xff)
}

func (s *surface) rect(x, y, w, h float64) rl.Rectangle {
	return rl.Rectangle{X: float32(s.x + x), Y: float32(s.y + y), Width: float32(w), Height: float32(h)}
}

func (s *surface) Clear() {
	rl.DrawRectangleRec(s.rect(0, 0, s.size.W, s.size.H), fieldColor)
}

func (s *surface) DashedVLine(x, y0, y1, dash, gap float64, c core.Color) {
	col := rgba(c)
	for y := y0; y < y1; y += dash + gap {
		rl.DrawRectangleRec(s.rect(x-1, y, 2, min(dash, y1-y)), col)
	}
}

func (s *surface) FillRect(x, y, w, h float64, c core.Color) {
	rl.DrawRectangleRec(s.rect(x, y, w, h), rgba(c))
}

func (s *surface) FillCircle(cx, cy, r float64, c core.Color) {
	rl.DrawCircleV(rl.Vector2{X: float32(s.x + cx), Y: float32(s.y + cy)}, float32(r), rgba(c))
}
