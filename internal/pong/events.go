package pong

import (
	"context"
	"time"
)

// Event is a message for the simulation-owning loop. Hosts translate their
// platform callbacks into Events and the loop applies them in order.
type Event interface {
	gameEvent()
}

// KeyDownEvent is a physical key press.
type KeyDownEvent struct {
	Key string
}

func (KeyDownEvent) gameEvent() {}

// KeyUpEvent is a physical key release.
type KeyUpEvent struct {
	Key string
}

func (KeyUpEvent) gameEvent() {}

// TickEvent is an animation frame at time At.
type TickEvent struct {
	At time.Time
}

func (TickEvent) gameEvent() {}

// StartEvent is the Start control.
type StartEvent struct{}

func (StartEvent) gameEvent() {}

// PauseEvent is the Pause control.
type PauseEvent struct{}

func (PauseEvent) gameEvent() {}

// ResetEvent is the Reset control.
type ResetEvent struct{}

func (ResetEvent) gameEvent() {}

// ResizeEvent sets the field to an explicit size.
type ResizeEvent struct {
	W, H float64
}

func (ResizeEvent) gameEvent() {}

// ExpandEvent enters the expanded viewport with the given available space.
type ExpandEvent struct {
	Avail Size
}

func (ExpandEvent) gameEvent() {}

// RestoreEvent leaves the expanded viewport.
type RestoreEvent struct{}

func (RestoreEvent) gameEvent() {}

// ViewportEvent reports new available space, e.g. a window resize.
type ViewportEvent struct {
	Avail Size
}

func (ViewportEvent) gameEvent() {}

// Apply performs ev on the game. Unknown events are ignored.
func (g *Game) Apply(ev Event) {
	switch e := ev.(type) {
	case KeyDownEvent:
		g.KeyDown(e.Key)
	case KeyUpEvent:
		g.KeyUp(e.Key)
	case TickEvent:
		g.Frame(e.At)
	case StartEvent:
		g.Start()
	case PauseEvent:
		g.Pause()
	case ResetEvent:
		g.Reset()
	case ResizeEvent:
		g.Resize(e.W, e.H)
	case ExpandEvent:
		g.EnterExpanded(e.Avail)
	case RestoreEvent:
		g.ExitExpanded()
	case ViewportEvent:
		g.ViewportChanged(e.Avail)
	}
}

// Driver owns a game and is the path its events take. replay.Recorder is a
// Driver; Direct wraps a plain game. Frontends accept either.
type Driver interface {
	Apply(ev Event)
	Game() *Game
}

type directDriver struct {
	game *Game
}

func (d directDriver) Apply(ev Event) { d.game.Apply(ev) }
func (d directDriver) Game() *Game    { return d.game }

// Direct returns a Driver that applies events straight to g.
func Direct(g *Game) Driver {
	return directDriver{game: g}
}

// Run applies events from the channel until it is closed or ctx is done.
// After each TickEvent, onFrame (if set) is called with the game so the
// host can render. Run is the only goroutine touching g while it runs.
func Run(ctx context.Context, g *Game, events <-chan Event, onFrame func(*Game)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.Apply(ev)
			if _, tick := ev.(TickEvent); tick && onFrame != nil {
				onFrame(g)
			}
		}
	}
}
