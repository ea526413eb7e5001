// Package pong implements the two-player paddle-and-ball simulation:
// state, input flags, the physics step, scoring with a deferred re-serve,
// and the proportional viewport rescale.
//
// A Game is owned by exactly one loop. Every mutation (keys, frames,
// controls, viewport changes) goes through that loop, either by calling the
// methods directly or by passing Event values to Apply.
package pong

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/core"
)

// Hooks are optional callbacks invoked synchronously by the owning loop.
type Hooks struct {
	// OnScore receives the scoreboard after every goal and every Reset.
	OnScore func(Scoreboard)

	// OnRally receives the statistics of a rally when it ends with a goal.
	OnRally func(Rally)
}

// Options controls the non-gameplay collaborators of a Game.
type Options struct {
	// Rand is the randomness source for serves. When nil a source is
	// seeded from Seed.
	Rand *rand.Rand
	Seed int64

	Hooks Hooks
}

// Game is the authoritative simulation context.
type Game struct {
	cfg  config.PongConfig
	keys KeyMap

	base  Size
	field Size

	left  Paddle
	right Paddle
	ball  Ball
	score Scoreboard

	running   bool
	expanded  bool
	input     [controlCount]bool
	serve     ServeTimer
	lastFrame time.Time
	resync    bool // Next frame only re-bases lastFrame

	rally     rallyTracker
	rallyNext int

	rng   *rand.Rand
	hooks Hooks
}

// New creates a game laid out on the configured base field: paddles centered
// vertically, ball served from the center in a random direction, scores zero.
func New(cfg config.PongConfig, opts Options) *Game {
	g := &Game{
		cfg:    cfg,
		keys:   KeyMapFromConfig(cfg.Input.Keys),
		base:   Size{W: cfg.Field.Width, H: cfg.Field.Height},
		rng:    opts.Rand,
		hooks:  opts.Hooks,
		resync: true,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(opts.Seed)) //nolint:gosec // gameplay randomness
	}
	g.field = g.base

	g.left = Paddle{
		X:     cfg.Paddle.Inset,
		W:     cfg.Paddle.Width,
		H:     cfg.Paddle.Height,
		Speed: cfg.Paddle.Speed,
	}
	g.right = g.left
	g.right.X = g.field.W - cfg.Paddle.Inset - cfg.Paddle.Width
	g.ball = Ball{
		R:     cfg.Ball.Radius,
		Speed: cfg.Ball.Speed,
	}

	g.Reset()
	return g
}

// Reset zeroes both scores, re-centers both paddles and re-serves the ball
// in a random direction. The run flag is left as it is.
func (g *Game) Reset() {
	g.score = Scoreboard{}
	g.left.Y = g.field.H/2 - g.left.H/2
	g.right.Y = g.field.H/2 - g.right.H/2
	g.serve.Cancel()
	g.ResetBall(g.randomDirection())
	g.notifyScore()
}

// ResetBall places the ball at the field center with the nominal speed,
// tilted by a random angle within the configured serve tilt. The horizontal
// sign follows direction; zero picks a random side.
func (g *Game) ResetBall(direction float64) {
	if direction == 0 {
		direction = g.randomDirection()
	}
	tilt := g.cfg.Ball.ServeTilt
	angle := g.rng.Float64()*2*tilt - tilt

	g.ball.Pos = r2.Vec{X: g.field.W / 2, Y: g.field.H / 2}
	v := core.FromAngle(angle, g.ball.Speed)
	v.X *= core.Sign(direction)
	g.ball.Vel = v

	g.rallyNext++
	g.rally.begin(g.rallyNext, direction)
}

func (g *Game) randomDirection() float64 {
	if g.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

func (g *Game) notifyScore() {
	if g.hooks.OnScore != nil {
		g.hooks.OnScore(g.score)
	}
}

// Running reports whether the physics step executes on each frame.
func (g *Game) Running() bool {
	return g.running
}

// Score returns the current scoreboard.
func (g *Game) Score() Scoreboard {
	return g.score
}

// Field returns the current field size.
func (g *Game) Field() Size {
	return g.field
}

// BaseField returns the configured base field size.
func (g *Game) BaseField() Size {
	return g.base
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of one side's paddle.
func (g *Game) Paddle(side Side) Paddle {
	if side == SideLeft {
		return g.left
	}
	return g.right
}

// ServeTimer returns the pending re-serve, if any.
func (g *Game) ServeTimer() ServeTimer {
	return g.serve
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}
