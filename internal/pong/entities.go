package pong

import "gonum.org/v1/gonum/spatial/r2"

// Side identifies one of the two players.
type Side int

const (
	SideLeft Side = iota + 1
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Direction returns the horizontal sign pointing toward this side.
func (s Side) Direction() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Size is a width/height pair in field units.
type Size struct {
	W, H float64
}

// Paddle is a player-controlled rectangle. X, Y is the top-left corner.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units per second
}

// Right returns the x-coordinate of the paddle's right edge.
func (p Paddle) Right() float64 {
	return p.X + p.W
}

// Bottom returns the y-coordinate of the paddle's bottom edge.
func (p Paddle) Bottom() float64 {
	return p.Y + p.H
}

// CenterY returns the paddle's vertical center.
func (p Paddle) CenterY() float64 {
	return p.Y + p.H/2
}

// Spans reports whether y lies within the paddle's vertical extent.
func (p Paddle) Spans(y float64) bool {
	return y >= p.Y && y <= p.Bottom()
}

// Ball is the moving circle. Pos is the center.
type Ball struct {
	Pos   r2.Vec
	Vel   r2.Vec
	R     float64
	Speed float64 // Nominal serve speed
}

// Scoreboard holds the per-side point counters.
type Scoreboard struct {
	Left  int
	Right int
}

// Of returns the score for one side.
func (s Scoreboard) Of(side Side) int {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

func (s *Scoreboard) add(side Side) {
	if side == SideLeft {
		s.Left++
	} else {
		s.Right++
	}
}
