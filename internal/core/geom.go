// Package core provides fundamental types and utilities shared by the game
// engine and the platform layers. It has no dependency on Bubble Tea or
// raylib so the simulation stays pure and testable.
package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the lower bound wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Speed returns the magnitude of velocity v.
func Speed(v r2.Vec) float64 {
	return r2.Norm(v)
}

// FromAngle builds a vector of the given magnitude pointing at angle
// radians from the positive x axis.
func FromAngle(angle, magnitude float64) r2.Vec {
	return r2.Scale(magnitude, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)})
}

// Scale2 multiplies the components of v independently.
func Scale2(v r2.Vec, sx, sy float64) r2.Vec {
	return r2.Vec{X: v.X * sx, Y: v.Y * sy}
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
