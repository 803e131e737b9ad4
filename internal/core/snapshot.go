package core

import (
	"hash/fnv"
	"math"
)

// BodySnapshot is what the renderer needs to draw one body.
// X and Y are the body centre.
type BodySnapshot struct {
	ID     int
	Kind   string
	X, Y   float64
	W, H   float64
	Radius float64 // Non-zero for circles only
	Static bool
	Color  Color
}

// Snapshot is a read-only copy of a game for one frame.
// Uses plain values only so it can be handed to another goroutine.
type Snapshot struct {
	Tick     uint64
	Score    int
	GameOver bool
	Paused   bool
	Bodies   []BodySnapshot
}

// Body returns the first body of the given kind.
func (s Snapshot) Body(kind string) (BodySnapshot, bool) {
	for _, b := range s.Bodies {
		if b.Kind == kind {
			return b, true
		}
	}
	return BodySnapshot{}, false
}

// Hash returns a hash of positions and score for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeU64 := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeF := func(f float64) { writeU64(math.Float64bits(f)) }

	writeU64(s.Tick)
	writeU64(uint64(s.Score))
	if s.GameOver {
		writeU64(1)
	}
	for _, b := range s.Bodies {
		writeU64(uint64(b.ID))
		writeF(b.X)
		writeF(b.Y)
		if b.Static {
			writeU64(1)
		}
	}
	return h.Sum64()
}
