package pong

import "github.com/vovakirdan/termpong/internal/config"

// Control is a semantic game control, abstracted from physical keys.
type Control int

const (
	ControlLeftUp Control = iota
	ControlLeftDown
	ControlRightUp
	ControlRightDown
	ControlServe
	controlCount
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlLeftUp:
		return "LeftUp"
	case ControlLeftDown:
		return "LeftDown"
	case ControlRightUp:
		return "RightUp"
	case ControlRightDown:
		return "RightDown"
	case ControlServe:
		return "Serve"
	default:
		return "Unknown"
	}
}

// Opposite returns the other direction for the same paddle, or false for
// controls without one.
func (c Control) Opposite() (Control, bool) {
	switch c {
	case ControlLeftUp:
		return ControlLeftDown, true
	case ControlLeftDown:
		return ControlLeftUp, true
	case ControlRightUp:
		return ControlRightDown, true
	case ControlRightDown:
		return ControlRightUp, true
	default:
		return 0, false
	}
}

// KeyMap maps platform key identifiers to controls.
type KeyMap map[string]Control

// KeyMapFromConfig builds a key map from configured bindings.
func KeyMapFromConfig(b config.KeyBindings) KeyMap {
	km := make(KeyMap)
	bind := func(keys []string, c Control) {
		for _, k := range keys {
			km[k] = c
		}
	}
	bind(b.LeftUp, ControlLeftUp)
	bind(b.LeftDown, ControlLeftDown)
	bind(b.RightUp, ControlRightUp)
	bind(b.RightDown, ControlRightDown)
	bind(b.Serve, ControlServe)
	return km
}

// Lookup returns the control bound to key.
func (km KeyMap) Lookup(key string) (Control, bool) {
	c, ok := km[key]
	return c, ok
}

// KeyDown sets the flag of the control bound to key. The serve key also
// starts the game. Repeated presses are idempotent. It reports whether key
// is a game key; hosts suppress their default handling for those.
func (g *Game) KeyDown(key string) bool {
	c, ok := g.keys.Lookup(key)
	if !ok {
		return false
	}
	g.input[c] = true
	if c == ControlServe {
		g.Start()
	}
	return true
}

// KeyUp clears the flag of the control bound to key.
func (g *Game) KeyUp(key string) bool {
	c, ok := g.keys.Lookup(key)
	if !ok {
		return false
	}
	g.input[c] = false
	return true
}

// Held reports whether a control's flag is set.
func (g *Game) Held(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return g.input[c]
}

// Keys returns the key map in use.
func (g *Game) Keys() KeyMap {
	return g.keys
}
