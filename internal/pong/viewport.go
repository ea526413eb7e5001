package pong

import (
	"math"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/core"
)

// Resize changes the field to w×h and rescales every entity in the same
// call: x and widths by w/oldW, y and heights by h/oldH, radius and scalar
// speeds by the average of the two, velocity per component. Non-positive
// sizes are ignored.
func (g *Game) Resize(w, h float64) {
	if w <= 0 || h <= 0 || g.field.W <= 0 || g.field.H <= 0 {
		return
	}
	sx := w / g.field.W
	sy := h / g.field.H
	avg := (sx + sy) / 2

	for _, p := range []*Paddle{&g.left, &g.right} {
		p.X *= sx
		p.W *= sx
		p.Y *= sy
		p.H *= sy
		p.Speed *= avg
	}

	g.ball.Pos = core.Scale2(g.ball.Pos, sx, sy)
	g.ball.Vel = core.Scale2(g.ball.Vel, sx, sy)
	g.ball.R *= avg
	g.ball.Speed *= avg

	g.field = Size{W: w, H: h}
}

// FitExpanded computes the expanded field size for the available space:
// the base aspect ratio is kept, padding is subtracted, and the result never
// drops below the base size.
func FitExpanded(base, avail Size, vp config.ViewportConfig) Size {
	ratio := base.H / base.W
	availW := math.Max(vp.MinAvailW, math.Floor(avail.W))
	availH := math.Max(vp.MinAvailH, math.Floor(avail.H))

	w := availW - vp.Padding
	h := math.Floor(w * ratio)
	if h > availH-vp.Padding {
		h = availH - vp.Padding
		w = math.Floor(h / ratio)
	}

	return Size{
		W: math.Max(base.W, w),
		H: math.Max(base.H, h),
	}
}

// EnterExpanded switches to the expanded viewport, fitting the field to avail.
func (g *Game) EnterExpanded(avail Size) {
	g.expanded = true
	g.fit(avail)
}

// ExitExpanded restores exactly the base field size. Radius and scalar
// speeds are reset to their configured values, since the averaged factor
// does not cancel out when the two axes were scaled differently.
func (g *Game) ExitExpanded() {
	g.expanded = false
	g.Resize(g.base.W, g.base.H)

	g.left.Speed = g.cfg.Paddle.Speed
	g.right.Speed = g.cfg.Paddle.Speed
	g.ball.R = g.cfg.Ball.Radius
	g.ball.Speed = g.cfg.Ball.Speed
}

// ViewportChanged re-fits the field to the new available space. Outside the
// expanded mode the field keeps its size.
func (g *Game) ViewportChanged(avail Size) {
	if !g.expanded {
		return
	}
	g.fit(avail)
}

// Expanded reports whether the expanded viewport is active.
func (g *Game) Expanded() bool {
	return g.expanded
}

func (g *Game) fit(avail Size) {
	s := FitExpanded(g.base, avail, g.cfg.Viewport)
	if s == g.field {
		return
	}
	g.Resize(s.W, s.H)
}
