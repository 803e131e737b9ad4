// Package tiltdodge implements a tilt-steered dodge game: the player moves a
// ball sideways while obstacles fall from the top of the play area.
// Obstacles that reach the floor score a point and respawn; an obstacle
// that hits the ball ends the round.
package tiltdodge

import (
	"time"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/notify"
	"github.com/vovakirdan/tilt-arcade/internal/physics"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
)

// Game-over message shown to the player.
const (
	GameOverTitle   = "Game Over"
	GameOverMessage = "You lose..."
)

// Mode selects how a step's collisions are dispatched.
type Mode int

const (
	ModeStandard Mode = iota // Dispatch mode from config (batch by default)
	ModeClassic              // Only the first collision of a step counts
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game coordinates the world, the session, and the collision policies.
type Game struct {
	mode     Mode
	cfg      config.TiltDodgeConfig
	cfgSet   bool
	cfgErr   error
	runtime  core.RuntimeConfig
	dispatch string

	world     *physics.World
	session   Session
	respawner *Respawner
	notifier  notify.Notifier
	colors    map[physics.BodyID]core.Color

	ballX  float64
	paused bool
	tick   uint64
}

// New creates a tilt-dodge game that loads its config on Reset.
func New() *Game {
	return &Game{mode: ModeStandard, notifier: notify.Discard}
}

// NewClassic creates the variant that only handles the first collision
// of each step.
func NewClassic() *Game {
	return &Game{mode: ModeClassic, notifier: notify.Discard}
}

// NewWithConfig creates a game with a fixed config instead of loading one.
func NewWithConfig(mode Mode, cfg config.TiltDodgeConfig) *Game {
	g := &Game{mode: mode, notifier: notify.Discard}
	g.SetConfig(cfg)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "tiltdodge_classic"
	}
	return "tiltdodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tilt Dodge (Classic)"
	}
	return "Tilt Dodge"
}

// Summary describes how the variant dispatches collisions.
func (g *Game) Summary() string {
	if g.mode == ModeClassic {
		return "only the first collision of a step counts"
	}
	return "every collision of a step counts"
}

// SetConfig replaces the config used by the next Reset.
func (g *Game) SetConfig(cfg config.TiltDodgeConfig) {
	g.cfg = cfg
	g.cfgSet = true
}

// Config returns the config of the current round.
func (g *Game) Config() config.TiltDodgeConfig {
	return g.cfg
}

// ConfigErr returns the error that made the last Reset fall back to the
// default config, or nil.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// SetNotifier sets where game-over notifications go. Nil discards them.
func (g *Game) SetNotifier(n notify.Notifier) {
	if n == nil {
		n = notify.Discard
	}
	g.notifier = n
}

// Reset builds a fresh world for the given play area. Bodies from a
// previous round are destroyed. A config that fails validation is replaced
// by the defaults; ConfigErr reports why.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfgErr = nil

	if !g.cfgSet {
		cfg, err := config.LoadTiltDodge(configPath)
		if err != nil {
			g.cfgErr = err
			cfg = config.DefaultTiltDodgeConfig()
		}
		g.cfg = cfg
	}
	if err := g.cfg.Validate(); err != nil {
		g.cfgErr = err
		g.cfg = config.DefaultTiltDodgeConfig()
	}
	g.dispatch = g.cfg.Dispatch
	if g.mode == ModeClassic {
		g.dispatch = config.DispatchFirst
	}

	if g.world != nil {
		g.world.Destroy()
	}
	g.world = physics.NewWorld(physics.Options{
		Width:       runtime.PlayW,
		Height:      runtime.PlayH,
		Gravity:     g.cfg.Physics.Gravity,
		Iterations:  g.cfg.Physics.Iterations,
		BallRadius:  g.cfg.Ball.Radius,
		FloorHeight: g.cfg.Floor.Height,
		ObstacleW:   g.cfg.Obstacles.Width,
		ObstacleH:   g.cfg.Obstacles.Height,
	})
	g.respawner = NewRespawner(g.world, runtime.Seed, runtime.PlayW,
		g.cfg.Obstacles.SpawnMargin, g.cfg.Obstacles.SpawnMinY, g.cfg.Obstacles.SpawnMaxY)

	g.ballX = g.midPoint()
	ball := g.world.CreateBall(g.ballX, g.ballY())
	floor := g.world.CreateFloor(runtime.PlayW)

	g.colors = make(map[physics.BodyID]core.Color)
	g.colors[ball] = parseColor(g.cfg.Ball.Color, defaultBallColor)
	g.colors[floor] = parseColor(g.cfg.Floor.Color, defaultFloorColor)
	for i, id := range g.world.CreateObstacles(g.cfg.Obstacles.Count) {
		g.world.SetAirFriction(id, g.respawner.Float(g.cfg.Obstacles.MinAirFriction, g.cfg.Obstacles.MaxAirFriction))
		g.colors[id] = colorFor(i, runtime.Seed)
	}
	g.respawner.RespawnAll()

	g.session.reset()
	g.paused = false
	g.tick = 0
}

// Restart starts a new round in the existing world: obstacles are released
// with zero velocity and respawned, and the score returns to zero.
func (g *Game) Restart() {
	if g.world == nil {
		g.Reset(g.runtime)
		return
	}
	for _, id := range g.world.Obstacles() {
		g.world.SetFrozen(id, false)
		g.world.SetVelocity(id, 0, 0)
	}
	g.respawner.RespawnAll()
	g.session.reset()
	g.paused = false

	g.notifier.Notify(notify.Notification{
		Kind:   notify.KindReset,
		GameID: g.ID(),
		Title:  "Reset",
		Tick:   g.tick,
		Time:   time.Now(),
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionReset) {
		g.Restart()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.session.IsOver() {
		g.paused = !g.paused
	}

	// Don't update if paused or game over
	if g.paused || g.session.IsOver() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.ApplyTilt(in.TiltX)
	events := g.world.Step(in.StepDelta())
	g.Dispatch(events)

	return core.StepResult{State: g.State(), Collisions: len(events)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.IsOver(),
		Paused:   g.paused,
	}
}

// Session returns the score keeper of the current round.
func (g *Game) Session() *Session {
	return &g.session
}

// World returns the simulated bodies.
func (g *Game) World() *physics.World {
	return g.world
}

func (g *Game) notifyGameOver() {
	g.notifier.Notify(notify.Notification{
		Kind:    notify.KindGameOver,
		GameID:  g.ID(),
		Title:   GameOverTitle,
		Message: GameOverMessage,
		Score:   g.session.Score(),
		Tick:    g.tick,
		Time:    time.Now(),
	})
}

// Register the games with the registry
func init() {
	registry.Register("tiltdodge", func() registry.Game {
		return New()
	})
	registry.Register("tiltdodge_classic", func() registry.Game {
		return NewClassic()
	})
}
