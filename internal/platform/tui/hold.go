package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/termpong/internal/pong"
)

// HoldTracker synthesizes key releases. Terminals only report presses, and
// a held key shows up as a first press followed by auto-repeats. A key is
// considered released when no repeat arrives in time or when the opposite
// direction of the same paddle is pressed.
type HoldTracker struct {
	initial time.Duration // Wait for the first auto-repeat
	repeat  time.Duration // Wait between auto-repeats
	held    map[pong.Control]holdState
}

type holdState struct {
	key      string
	last     time.Time
	repeated bool
}

// NewHoldTracker creates a tracker with the given release timeouts.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[pong.Control]holdState),
	}
}

// Press records a press of key for control c at now. It returns the keys
// that must be released first.
func (h *HoldTracker) Press(c pong.Control, key string, now time.Time) []string {
	var release []string

	if opp, ok := c.Opposite(); ok {
		if st, held := h.held[opp]; held {
			release = append(release, st.key)
			delete(h.held, opp)
		}
	}

	st, held := h.held[c]
	switch {
	case held && st.key == key:
		st.repeated = true
		st.last = now
	case held:
		// Another key bound to the same control takes over.
		release = append(release, st.key)
		st = holdState{key: key, last: now}
	default:
		st = holdState{key: key, last: now}
	}
	h.held[c] = st

	return release
}

// Expired removes and returns the keys whose hold lapsed at now, in
// control order.
func (h *HoldTracker) Expired(now time.Time) []string {
	var controls []pong.Control
	for c, st := range h.held {
		timeout := h.initial
		if st.repeated {
			timeout = h.repeat
		}
		if now.Sub(st.last) > timeout {
			controls = append(controls, c)
		}
	}
	sort.Slice(controls, func(i, j int) bool { return controls[i] < controls[j] })

	keys := make([]string, 0, len(controls))
	for _, c := range controls {
		keys = append(keys, h.held[c].key)
		delete(h.held, c)
	}
	return keys
}

// Held reports whether a control is currently considered held.
func (h *HoldTracker) Held(c pong.Control) bool {
	_, ok := h.held[c]
	return ok
}

// ReleaseAll forgets every hold and returns the released keys.
func (h *HoldTracker) ReleaseAll() []string {
	keys := make([]string, 0, len(h.held))
	for c := range h.held {
		keys = append(keys, h.held[c].key)
	}
	sort.Strings(keys)
	clear(h.held)
	return keys
}
