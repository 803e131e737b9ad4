// Package headless drives a registered game without a screen: it drains
// tilt input, steps the game at a fixed rate, and reports the outcome.
package headless

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/input"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
)

// Configurable is implemented by games that accept a config at runtime.
type Configurable interface {
	SetConfig(cfg config.TiltDodgeConfig)
}

// configChecker is implemented by games that fall back to defaults when
// their config is invalid.
type configChecker interface {
	ConfigErr() error
}

// Options controls a run.
type Options struct {
	Runtime        core.RuntimeConfig
	MaxTicks       uint64 // Zero means no limit
	StopOnGameOver bool
	Logger         *log.Logger

	// OnTick is called after every tick with the frame snapshot.
	OnTick func(core.Snapshot)
}

// Result summarises a run.
type Result struct {
	RunID      string
	GameID     string
	Ticks      uint64
	Score      int
	GameOver   bool
	Collisions int
	Elapsed    time.Duration
}

// Runner owns a game and steps it from a tilt buffer.
type Runner struct {
	id     string
	game   registry.Game
	buf    *input.TiltBuffer
	opts   Options
	logger *log.Logger

	reloadChan chan config.TiltDodgeConfig

	tick       uint64
	collisions int
	lastState  core.GameState
	quit       bool
}

// New creates a runner and resets the game for opts.Runtime.
func New(game registry.Game, buf *input.TiltBuffer, opts Options) *Runner {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if buf == nil {
		buf = input.NewTiltBuffer(1)
	}

	id := uuid.NewString()
	r := &Runner{
		id:         id,
		game:       game,
		buf:        buf,
		opts:       opts,
		logger:     logger.With("game", game.ID(), "run", id[:8]),
		reloadChan: make(chan config.TiltDodgeConfig, 1),
	}
	r.reset()
	return r
}

// reset restarts the game for the configured play area and logs a config
// the game rejected.
func (r *Runner) reset() {
	r.game.Reset(r.opts.Runtime)
	r.lastState = r.game.State()
	if c, ok := r.game.(configChecker); ok {
		if err := c.ConfigErr(); err != nil {
			r.logger.Error("invalid config, using defaults", "err", err)
		}
	}
}

// ID returns the unique id of this run.
func (r *Runner) ID() string {
	return r.id
}

// Buffer returns the tilt buffer the runner drains each tick.
func (r *Runner) Buffer() *input.TiltBuffer {
	return r.buf
}

// Reload queues a new config. It is applied at the next tick boundary
// and restarts the round. Only the newest pending config is kept.
func (r *Runner) Reload(cfg config.TiltDodgeConfig) {
	select {
	case r.reloadChan <- cfg:
	default:
		select {
		case <-r.reloadChan:
		default:
		}
		select {
		case r.reloadChan <- cfg:
		default:
		}
	}
}

// Tick drains pending input and advances the game by one step.
// A queued ActionQuit stops the runner without stepping.
func (r *Runner) Tick() core.StepResult {
	r.applyReload()

	in := r.buf.Drain()
	if in.Has(core.ActionQuit) {
		r.quit = true
		r.logger.Info("quit requested", "tick", r.tick)
		return core.StepResult{State: r.game.State()}
	}
	result := r.game.Step(in)
	r.tick++
	r.collisions += result.Collisions

	if result.Collisions > 0 {
		r.logger.Debug("collisions", "tick", r.tick, "count", result.Collisions, "score", result.State.Score)
	}
	if result.State.GameOver && !r.lastState.GameOver {
		r.logger.Info("round over", "tick", r.tick, "score", result.State.Score)
	}
	if !result.State.GameOver && r.lastState.GameOver {
		r.logger.Info("round restarted", "tick", r.tick)
	}
	r.lastState = result.State

	if r.opts.OnTick != nil {
		r.opts.OnTick(r.game.Snapshot())
	}
	return result
}

// Quit reports whether an ActionQuit stopped the runner.
func (r *Runner) Quit() bool {
	return r.quit
}

// Simulate runs up to ticks steps as fast as possible, pulling one
// sample per tick from src. A nil src means no tilt.
func (r *Runner) Simulate(ticks uint64, src input.Source) Result {
	start := time.Now()
	for i := uint64(0); i < ticks && !r.quit; i++ {
		if src != nil {
			r.buf.Push(src.Next())
		}
		res := r.Tick()
		if r.opts.StopOnGameOver && res.State.GameOver {
			break
		}
	}
	return r.result(time.Since(start))
}

// Run steps the game at the runtime tick rate until ctx is cancelled,
// MaxTicks is reached, a quit is requested, or the round ends with
// StopOnGameOver set.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	tickDuration := time.Second / time.Duration(r.opts.Runtime.TickRate)
	ticker := time.NewTicker(tickDuration)
	defer ticker.Stop()

	r.logger.Info("running", "tick_rate", r.opts.Runtime.TickRate, "max_ticks", r.opts.MaxTicks)
	for {
		select {
		case <-ticker.C:
			res := r.Tick()
			if r.quit {
				return r.result(time.Since(start)), nil
			}
			if r.opts.MaxTicks > 0 && r.tick >= r.opts.MaxTicks {
				return r.result(time.Since(start)), nil
			}
			if r.opts.StopOnGameOver && res.State.GameOver {
				return r.result(time.Since(start)), nil
			}

		case <-ctx.Done():
			return r.result(time.Since(start)), ctx.Err()
		}
	}
}

// WatchConfig reloads the config at path whenever w reports a change.
// Invalid configs are logged and skipped. It returns when ctx is done or
// the watcher is closed.
func (r *Runner) WatchConfig(ctx context.Context, w *config.Watcher, path string) {
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := config.LoadTiltDodge(path)
			if err != nil {
				r.logger.Error("config reload rejected", "path", path, "err", err)
				continue
			}
			r.logger.Info("config reloaded", "path", path)
			r.Reload(cfg)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			r.logger.Warn("config watcher", "err", err)

		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) applyReload() {
	select {
	case cfg := <-r.reloadChan:
		c, ok := r.game.(Configurable)
		if !ok {
			r.logger.Warn("game does not accept config reloads")
			return
		}
		c.SetConfig(cfg)
		r.reset()
	default:
	}
}

func (r *Runner) result(elapsed time.Duration) Result {
	state := r.game.State()
	return Result{
		RunID:      r.id,
		GameID:     r.game.ID(),
		Ticks:      r.tick,
		Score:      state.Score,
		GameOver:   state.GameOver,
		Collisions: r.collisions,
		Elapsed:    elapsed,
	}
}
