// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no physics engine) to keep
// game-facing types pure and testable.
package core

// Vec is a 2D point or displacement in world units.
// Y grows downward, matching screen coordinates.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned box, used for the drawn extent of a body.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// RectAround creates a rectangle of size w×h centred on c.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// InRangeF reports whether min <= val <= max.
func InRangeF(val, min, max float64) bool {
	return val >= min && val <= max
}
