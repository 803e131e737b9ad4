// Package physics holds the simulated bodies of a tilt-dodge round and
// advances them with a Chipmunk2D space.
package physics

import (
	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Kind identifies the role of a body in the game.
type Kind int

const (
	KindUnknown Kind = iota
	KindBall
	KindFloor
	KindObstacle
)

// String returns the body label.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindFloor:
		return "floor"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// BodyID is a stable handle to a body inside a World. Zero is never issued.
type BodyID int

// ShapeKind selects the collision shape of a body.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape describes a body's collision geometry.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle
	W, H   float64 // ShapeRect
}

// Size returns the bounding box size of the shape.
func (s Shape) Size() (w, h float64) {
	if s.Kind == ShapeCircle {
		return s.Radius * 2, s.Radius * 2
	}
	return s.W, s.H
}

// Body is a read-only view of a simulated body.
type Body struct {
	ID          BodyID
	Kind        Kind
	Position    core.Vec // Centre of the body
	Velocity    core.Vec
	Angle       float64
	Shape       Shape
	Static      bool // Never affected by gravity (ball, floor)
	Frozen      bool // Temporarily held in place (obstacles after game over)
	AirFriction float64
}

// IsStatic reports whether the body currently ignores gravity and forces.
func (b Body) IsStatic() bool {
	return b.Static || b.Frozen
}

// Bounds returns the axis-aligned box around the body, ignoring rotation.
func (b Body) Bounds() core.Rect {
	w, h := b.Shape.Size()
	return core.RectAround(b.Position, w, h)
}

// BodyRef names one side of a collision.
type BodyRef struct {
	ID   BodyID
	Kind Kind
}

// CollisionEvent reports that two bodies started overlapping during a step.
// Bodies that stay in contact do not produce further events.
type CollisionEvent struct {
	A, B BodyRef
}

// Match reports whether the event's kinds equal {a, b} as a set and returns
// the refs ordered as (a, b).
func (e CollisionEvent) Match(a, b Kind) (BodyRef, BodyRef, bool) {
	switch {
	case e.A.Kind == a && e.B.Kind == b:
		return e.A, e.B, true
	case e.A.Kind == b && e.B.Kind == a:
		return e.B, e.A, true
	default:
		return BodyRef{}, BodyRef{}, false
	}
}
