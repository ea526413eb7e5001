package pong

import "time"

// ServeTimer is the one-shot re-serve scheduled after a goal. A Game holds
// at most one; scheduling again replaces the pending one.
type ServeTimer struct {
	pending   bool
	due       time.Time
	direction float64
	autoStart bool
}

// Schedule arms the timer to serve toward direction at due. The serve
// resumes the game when it fires unless Hold is called first.
func (t *ServeTimer) Schedule(due time.Time, direction float64) {
	t.pending = true
	t.due = due
	t.direction = direction
	t.autoStart = true
}

// Cancel disarms the timer.
func (t *ServeTimer) Cancel() {
	*t = ServeTimer{}
}

// Hold keeps the serve pending but stops it from resuming the game.
func (t *ServeTimer) Hold() {
	t.autoStart = false
}

// Pending reports whether a re-serve is scheduled.
func (t ServeTimer) Pending() bool {
	return t.pending
}

// Due returns when the pending serve fires.
func (t ServeTimer) Due() time.Time {
	return t.due
}

// Direction returns the horizontal sign of the pending serve.
func (t ServeTimer) Direction() float64 {
	return t.direction
}

// AutoStart reports whether the serve will resume the game.
func (t ServeTimer) AutoStart() bool {
	return t.autoStart
}

// Ready reports whether the pending serve is due at now.
func (t ServeTimer) Ready(now time.Time) bool {
	return t.pending && !now.Before(t.due)
}
