package tiltdodge

import (
	"math/rand"

	"github.com/vovakirdan/tilt-arcade/internal/physics"
)

// Respawner places obstacles at random points in the spawn band.
type Respawner struct {
	world *physics.World
	rng   *rand.Rand

	maxX       int // Upper bound of the x range; lower bound is 1
	minY, maxY int
}

// NewRespawner creates a respawner for a play area of the given width.
// margin is subtracted from the width so obstacles spawn fully on screen.
func NewRespawner(world *physics.World, seed int64, playW float64, margin, minY, maxY int) *Respawner {
	maxX := int(playW) - margin
	if maxX < 1 {
		maxX = 1
	}
	if maxY < minY {
		maxY = minY
	}
	return &Respawner{
		world: world,
		rng:   rand.New(rand.NewSource(seed)),
		maxX:  maxX,
		minY:  minY,
		maxY:  maxY,
	}
}

// Next draws a spawn point: x in [1, playW-margin], y in [minY, maxY].
func (r *Respawner) Next() (x, y int) {
	x = 1 + r.rng.Intn(r.maxX)
	y = r.minY + r.rng.Intn(r.maxY-r.minY+1)
	return x, y
}

// Respawn moves one obstacle to a fresh spawn point. Velocity is kept.
// Ids that are not obstacles are ignored.
func (r *Respawner) Respawn(id physics.BodyID) bool {
	if r.world.Kind(id) != physics.KindObstacle {
		return false
	}
	x, y := r.Next()
	return r.world.SetPosition(id, float64(x), float64(y))
}

// RespawnAll moves every obstacle in creation order.
func (r *Respawner) RespawnAll() {
	for _, id := range r.world.Obstacles() {
		r.Respawn(id)
	}
}

// Float returns a uniform value in [lo, hi) from the respawner's source.
func (r *Respawner) Float(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}
