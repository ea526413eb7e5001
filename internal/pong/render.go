package pong

import "github.com/vovakirdan/termpong/internal/core"

// Midline dash pattern in field units.
const (
	midlineDash = 8
	midlineGap  = 8
)

// Surface is the drawing target of a render pass. Coordinates are field
// units; implementations project them onto their own pixels or cells.
type Surface interface {
	Clear()
	DashedVLine(x, y0, y1, dash, gap float64, c core.Color)
	FillRect(x, y, w, h float64, c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)
}

// Render draws the current state onto dst: dashed centerline, both paddles
// and the ball. It never mutates the game and is safe while paused.
func (g *Game) Render(dst Surface) {
	dst.Clear()
	dst.DashedVLine(g.field.W/2, 0, g.field.H, midlineDash, midlineGap, core.ColorDarkGray)

	for _, p := range []Paddle{g.left, g.right} {
		dst.FillRect(p.X, p.Y, p.W, p.H, core.ColorGreen)
	}

	dst.FillCircle(g.ball.Pos.X, g.ball.Pos.Y, g.ball.R, core.ColorBrightWhite)
}
