package tiltdodge

import "github.com/vovakirdan/tilt-arcade/internal/core"

// midPoint is where the ball is recentred after leaving the play area.
func (g *Game) midPoint() float64 {
	return g.runtime.PlayW/2 - g.cfg.Ball.Radius/2
}

func (g *Game) ballY() float64 {
	return g.runtime.PlayH - g.cfg.Ball.YOffset
}

// ApplyTilt moves the ball horizontally by dx. A ball pushed outside
// [0, PlayW] jumps back to the middle. The ball row never changes.
// Tilt is ignored once the round is over.
func (g *Game) ApplyTilt(dx float64) {
	if g.session.IsOver() || dx == 0 {
		return
	}
	x := g.ballX + dx
	if !core.InRangeF(x, 0, g.runtime.PlayW) {
		x = g.midPoint()
	}
	g.ballX = x
	g.world.SetPosition(g.world.Ball(), g.ballX, g.ballY())
}
