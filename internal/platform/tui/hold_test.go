package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/termpong/internal/pong"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

func TestHoldTrackerInitialTimeout(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(pong.ControlLeftUp, "w", ms(0))

	if got := h.Expired(ms(400)); len(got) != 0 {
		t.Errorf("released before the initial timeout: %v", got)
	}
	if !h.Held(pong.ControlLeftUp) {
		t.Error("control should still be held")
	}
	if got := h.Expired(ms(501)); !reflect.DeepEqual(got, []string{"w"}) {
		t.Errorf("Expired() = %v, want [w]", got)
	}
	if h.Held(pong.ControlLeftUp) {
		t.Error("control still held after expiry")
	}
}

func TestHoldTrackerRepeatTimeout(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(pong.ControlRightDown, "down", ms(0))
	h.Press(pong.ControlRightDown, "down", ms(450))
	h.Press(pong.ControlRightDown, "down", ms(500))

	if got := h.Expired(ms(590)); len(got) != 0 {
		t.Errorf("released during repeats: %v", got)
	}
	if got := h.Expired(ms(601)); !reflect.DeepEqual(got, []string{"down"}) {
		t.Errorf("Expired() = %v, want [down]", got)
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(pong.ControlLeftUp, "w", ms(0))

	release := h.Press(pong.ControlLeftDown, "s", ms(50))

	if !reflect.DeepEqual(release, []string{"w"}) {
		t.Errorf("Press() released %v, want [w]", release)
	}
	if h.Held(pong.ControlLeftUp) {
		t.Error("opposite direction still held")
	}
	if !h.Held(pong.ControlLeftDown) {
		t.Error("new direction not held")
	}
}

func TestHoldTrackerPaddlesIndependent(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(pong.ControlLeftUp, "w", ms(0))

	if release := h.Press(pong.ControlRightDown, "down", ms(10)); len(release) != 0 {
		t.Errorf("other paddle released %v", release)
	}
	if !h.Held(pong.ControlLeftUp) || !h.Held(pong.ControlRightDown) {
		t.Error("both paddles should be held")
	}
}

func TestHoldTrackerAlternateKeyTakesOver(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(pong.ControlLeftUp, "w", ms(0))

	release := h.Press(pong.ControlLeftUp, "k", ms(10))

	if !reflect.DeepEqual(release, []string{"w"}) {
		t.Errorf("Press() released %v, want [w]", release)
	}
	if got := h.Expired(ms(600)); !reflect.DeepEqual(got, []string{"k"}) {
		t.Errorf("Expired() = %v, want [k]", got)
	}
}

func TestHoldTrackerExpiredOrder(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 50*time.Millisecond)
	h.Press(pong.ControlRightUp, "up", ms(0))
	h.Press(pong.ControlLeftDown, "s", ms(0))

	got := h.Expired(ms(200))
	if !reflect.DeepEqual(got, []string{"s", "up"}) {
		t.Errorf("Expired() = %v, want [s up]", got)
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(100*time.Millisecond, 50*time.Millisecond)
	h.Press(pong.ControlRightUp, "up", ms(0))
	h.Press(pong.ControlLeftDown, "s", ms(0))

	got := h.ReleaseAll()
	if !reflect.DeepEqual(got, []string{"s", "up"}) {
		t.Errorf("ReleaseAll() = %v, want [s up]", got)
	}
	if h.Held(pong.ControlRightUp) || h.Held(pong.ControlLeftDown) {
		t.Error("holds remain after ReleaseAll")
	}
}
