package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3, 0, -1, 0}, // inverted range: lower bound wins
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(0, 309)
	if !scalar.EqualWithinAbs(v.X, 309, 1e-9) || !scalar.EqualWithinAbs(v.Y, 0, 1e-9) {
		t.Errorf("FromAngle(0, 309) = %v, expected (309, 0)", v)
	}

	v = FromAngle(math.Pi/2, 2)
	if !scalar.EqualWithinAbs(v.X, 0, 1e-9) || !scalar.EqualWithinAbs(v.Y, 2, 1e-9) {
		t.Errorf("FromAngle(pi/2, 2) = %v, expected (0, 2)", v)
	}

	if got := Speed(FromAngle(0.45, 17)); !scalar.EqualWithinAbs(got, 17, 1e-9) {
		t.Errorf("Speed(FromAngle(0.45, 17)) = %f, expected 17", got)
	}
}

func TestScale2(t *testing.T) {
	v := Scale2(r2.Vec{X: 3, Y: -4}, 2, 0.5)
	if v.X != 6 || v.Y != -2 {
		t.Errorf("Scale2() = %v, expected (6, -2)", v)
	}
}

func TestSign(t *testing.T) {
	if Sign(-0.1) != -1 {
		t.Error("Sign(-0.1) should be -1")
	}
	if Sign(0) != 1 {
		t.Error("Sign(0) should be 1")
	}
	if Sign(4) != 1 {
		t.Error("Sign(4) should be 1")
	}
}
