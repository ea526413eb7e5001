package pong

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/core"
)

// Step advances paddles and ball by dt seconds, resolves wall and paddle
// collisions and scoring. dt is clamped to [0, max_dt]; zero is a no-op.
// Hosts call it only while the game is running (see Frame).
func (g *Game) Step(dt float64) {
	dt = core.ClampF(dt, 0, g.cfg.Physics.MaxDT)
	if dt == 0 {
		return
	}

	g.movePaddle(&g.left, ControlLeftUp, ControlLeftDown, dt)
	g.movePaddle(&g.right, ControlRightUp, ControlRightDown, dt)

	g.ball.Pos = r2.Add(g.ball.Pos, r2.Scale(dt, g.ball.Vel))

	g.collideWalls()
	g.collideLeftPaddle()
	g.collideRightPaddle()

	g.rally.advance(dt, core.Speed(g.ball.Vel))

	g.checkScore()
}

// movePaddle applies both direction flags, then clamps once.
func (g *Game) movePaddle(p *Paddle, up, down Control, dt float64) {
	if g.input[up] {
		p.Y -= p.Speed * dt
	}
	if g.input[down] {
		p.Y += p.Speed * dt
	}
	p.Y = core.ClampF(p.Y, 0, g.field.H-p.H)
}

// collideWalls reflects the ball off the top and bottom. The direction
// guard keeps a ball that was already pushed back from bouncing again.
func (g *Game) collideWalls() {
	b := &g.ball
	if b.Pos.Y-b.R <= 0 && b.Vel.Y < 0 {
		b.Pos.Y = b.R
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Y+b.R >= g.field.H && b.Vel.Y > 0 {
		b.Pos.Y = g.field.H - b.R
		b.Vel.Y = -b.Vel.Y
	}
}

func (g *Game) collideLeftPaddle() {
	b := &g.ball
	p := g.left
	if b.Pos.X-b.R > p.Right() || b.Vel.X >= 0 || !p.Spans(b.Pos.Y) {
		return
	}
	b.Pos.X = p.Right() + b.R
	g.bounce(p, 1)
}

func (g *Game) collideRightPaddle() {
	b := &g.ball
	p := g.right
	if b.Pos.X+b.R < p.X || b.Vel.X <= 0 || !p.Spans(b.Pos.Y) {
		return
	}
	b.Pos.X = p.X - b.R
	g.bounce(p, -1)
}

// bounce sends the ball away from p. The return angle grows with the
// distance of the hit from the paddle center and the speed is multiplied
// by the acceleration factor.
func (g *Game) bounce(p Paddle, away float64) {
	b := &g.ball
	rel := (b.Pos.Y - p.CenterY()) / (p.H / 2)
	speed := core.Speed(b.Vel) * g.cfg.Physics.Acceleration
	angle := rel * g.cfg.Physics.MaxDeflection

	b.Vel = r2.Vec{
		X: away * math.Cos(angle) * speed,
		Y: math.Sin(angle) * speed,
	}
	g.rally.hit(speed)
}

// checkScore awards a point once the ball has fully left the field.
func (g *Game) checkScore() {
	b := g.ball
	switch {
	case b.Pos.X+b.R < 0:
		g.goal(SideRight)
	case b.Pos.X-b.R > g.field.W:
		g.goal(SideLeft)
	}
}

// goal records the point, freezes the simulation and schedules the re-serve.
func (g *Game) goal(scorer Side) {
	g.score.add(scorer)
	g.running = false

	if g.hooks.OnRally != nil {
		g.hooks.OnRally(g.rally.end(scorer, g.score))
	}
	g.notifyScore()

	g.serve.Schedule(g.lastFrame.Add(g.cfg.Serve.Delay), g.serveDirection(scorer))
}

// serveDirection returns the re-serve direction after scorer's point.
func (g *Game) serveDirection(scorer Side) float64 {
	if g.cfg.Serve.Toward == config.ServeTowardConceder {
		return scorer.Opponent().Direction()
	}
	return scorer.Direction()
}
