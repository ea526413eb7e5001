package pong

import "math"

// Snapshot is a read-only copy of the simulation state.
type Snapshot struct {
	Field    Size
	Left     Paddle
	Right    Paddle
	Ball     Ball
	Score    Scoreboard
	Running  bool
	Expanded bool
	Serve    ServeTimer
	Held     [controlCount]bool // Input flags by Control
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Field:    g.field,
		Left:     g.left,
		Right:    g.right,
		Ball:     g.ball,
		Score:    g.score,
		Running:  g.running,
		Expanded: g.expanded,
		Serve:    g.serve,
	}
	for c := Control(0); c < controlCount; c++ {
		snap.Held[c] = g.Held(c)
	}
	return snap
}

// Hash returns a hash of the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := math.Float64bits(s.Field.W)
	h = h*31 + math.Float64bits(s.Field.H)
	for _, p := range []Paddle{s.Left, s.Right} {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + math.Float64bits(p.W)
		h = h*31 + math.Float64bits(p.H)
		h = h*31 + math.Float64bits(p.Speed)
	}
	h = h*31 + math.Float64bits(s.Ball.Pos.X)
	h = h*31 + math.Float64bits(s.Ball.Pos.Y)
	h = h*31 + math.Float64bits(s.Ball.Vel.X)
	h = h*31 + math.Float64bits(s.Ball.Vel.Y)
	h = h*31 + math.Float64bits(s.Ball.R)
	h = h*31 + uint64(s.Score.Left)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score.Right) //#nosec G115 -- hash computation
	if s.Running {
		h = h*31 + 1
	}
	for _, held := range s.Held {
		h *= 31
		if held {
			h++
		}
	}
	if s.Serve.Pending() {
		h = h*31 + uint64(s.Serve.Due().UnixNano()) //#nosec G115 -- hash computation
	}
	return h
}
