package pong

import "time"

// Start sets the run flag. The frame clock is resynchronized on the next
// frame, so time spent paused is never simulated. A pending re-serve is
// served immediately.
func (g *Game) Start() {
	if g.serve.Pending() {
		dir := g.serve.Direction()
		g.serve.Cancel()
		g.ResetBall(dir)
	}
	if !g.running {
		g.running = true
		g.resync = true
	}
}

// Pause clears the run flag. A pending re-serve still re-centers the ball
// when due, but leaves the game paused.
func (g *Game) Pause() {
	g.running = false
	g.serve.Hold()
}

// Frame is the animation callback body: it fires a due re-serve, derives the
// delta time from the frame timestamp and steps the simulation when running.
// Rendering is the host's next call.
func (g *Game) Frame(ts time.Time) {
	if g.serve.Ready(ts) {
		g.fireServe()
	}
	if g.resync {
		g.lastFrame = ts
		g.resync = false
	}

	dt := ts.Sub(g.lastFrame).Seconds()
	g.lastFrame = ts
	if g.running {
		g.Step(dt)
	}
}

// fireServe performs the scheduled serve as if its timer callback ran at
// the due time.
func (g *Game) fireServe() {
	t := g.serve
	g.serve.Cancel()
	g.ResetBall(t.Direction())
	if t.AutoStart() && !g.running {
		g.running = true
		g.lastFrame = t.Due()
	}
}
