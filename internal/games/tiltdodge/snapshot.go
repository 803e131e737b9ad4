package tiltdodge

import "github.com/vovakirdan/tilt-arcade/internal/core"

// Snapshot returns the state of the current frame.
func (g *Game) Snapshot() core.Snapshot {
	snap := core.Snapshot{
		Tick:     g.tick,
		Score:    g.session.Score(),
		GameOver: g.session.IsOver(),
		Paused:   g.paused,
	}
	if g.world == nil {
		return snap
	}

	bodies := g.world.Bodies()
	snap.Bodies = make([]core.BodySnapshot, 0, len(bodies))
	for _, b := range bodies {
		box := b.Bounds()
		snap.Bodies = append(snap.Bodies, core.BodySnapshot{
			ID:     int(b.ID),
			Kind:   b.Kind.String(),
			X:      b.Position.X,
			Y:      b.Position.Y,
			W:      box.W,
			H:      box.H,
			Radius: b.Shape.Radius,
			Static: b.IsStatic(),
			Color:  g.colors[b.ID],
		})
	}
	return snap
}
