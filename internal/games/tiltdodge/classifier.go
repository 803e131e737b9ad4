package tiltdodge

import (
	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/physics"
)

// OutcomeKind is the policy a collision triggers.
type OutcomeKind int

const (
	OutcomeNone      OutcomeKind = iota
	OutcomeFloorPass             // An obstacle reached the floor
	OutcomeBallHit               // An obstacle struck the ball
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFloorPass:
		return "floor_pass"
	case OutcomeBallHit:
		return "ball_hit"
	default:
		return "none"
	}
}

// Outcome is a classified collision.
type Outcome struct {
	Kind     OutcomeKind
	Obstacle physics.BodyID
}

// Classify maps a collision to its policy by the pair of body kinds,
// regardless of which side each body is on.
func Classify(ev physics.CollisionEvent) Outcome {
	if _, obstacle, ok := ev.Match(physics.KindFloor, physics.KindObstacle); ok {
		return Outcome{Kind: OutcomeFloorPass, Obstacle: obstacle.ID}
	}
	if _, obstacle, ok := ev.Match(physics.KindBall, physics.KindObstacle); ok {
		return Outcome{Kind: OutcomeBallHit, Obstacle: obstacle.ID}
	}
	return Outcome{}
}

// Dispatch applies the outcomes of one step's collisions. In batch mode
// every event is handled in order; in first mode only events[0] is.
// It returns the number of events that changed the game.
func (g *Game) Dispatch(events []physics.CollisionEvent) int {
	if len(events) == 0 {
		return 0
	}
	if g.dispatch == config.DispatchFirst {
		events = events[:1]
	}

	applied := 0
	for _, ev := range events {
		if g.apply(Classify(ev)) {
			applied++
		}
	}
	return applied
}

func (g *Game) apply(out Outcome) bool {
	if out.Kind == OutcomeNone || g.world.Kind(out.Obstacle) != physics.KindObstacle {
		return false
	}

	switch out.Kind {
	case OutcomeFloorPass:
		g.respawner.Respawn(out.Obstacle)
		g.session.RecordFloorPass()
		return true

	case OutcomeBallHit:
		if !g.session.RecordCollisionWithBall() {
			return false
		}
		g.freezeObstacles(true)
		g.notifyGameOver()
		return true
	}
	return false
}

func (g *Game) freezeObstacles(frozen bool) {
	for _, id := range g.world.Obstacles() {
		g.world.SetFrozen(id, frozen)
	}
}
