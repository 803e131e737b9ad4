package headless

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/games/tiltdodge"
	"github.com/vovakirdan/tilt-arcade/internal/input"
)

// scriptedGame ends the round after a fixed number of steps.
type scriptedGame struct {
	endAt int
	steps int
	tilt  float64
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *scriptedGame) Snapshot() core.Snapshot  { return core.Snapshot{Tick: uint64(g.steps)} }
func (g *scriptedGame) State() core.GameState    { return core.GameState{Score: g.steps, GameOver: g.steps >= g.endAt} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.tilt += in.TiltX
	return core.StepResult{State: g.State(), Collisions: 1}
}

func quietOptions() Options {
	rt := core.DefaultConfig()
	rt.Seed = 9
	return Options{Runtime: rt, Logger: log.New(io.Discard)}
}

func newTiltDodge(count int) *tiltdodge.Game {
	cfg := config.DefaultTiltDodgeConfig()
	cfg.Obstacles.Count = count
	return tiltdodge.NewWithConfig(tiltdodge.ModeStandard, cfg)
}

func TestSimulateRunsAllTicks(t *testing.T) {
	g := &scriptedGame{endAt: 1000}
	r := New(g, nil, quietOptions())

	res := r.Simulate(50, input.NewWave(2, 10))
	if res.Ticks != 50 || res.Score != 50 || res.GameID != "scripted" {
		t.Errorf("result = %+v", res)
	}
	if res.Collisions != 50 {
		t.Errorf("Collisions = %d, expected 50", res.Collisions)
	}
	if res.RunID == "" || res.RunID != r.ID() {
		t.Errorf("RunID = %q, runner ID %q", res.RunID, r.ID())
	}
	if other := New(g, nil, quietOptions()); other.ID() == r.ID() {
		t.Error("run ids should be unique")
	}
}

func TestSimulateStopsOnGameOver(t *testing.T) {
	opts := quietOptions()
	opts.StopOnGameOver = true
	r := New(&scriptedGame{endAt: 7}, nil, opts)

	res := r.Simulate(100, nil)
	if res.Ticks != 7 || !res.GameOver {
		t.Errorf("result = %+v, expected stop at tick 7", res)
	}
}

func TestTickDrainsBuffer(t *testing.T) {
	g := &scriptedGame{endAt: 1000}
	buf := input.NewTiltBuffer(2)
	r := New(g, buf, quietOptions())

	buf.Push(input.Sample{X: 1})
	buf.Push(input.Sample{X: 2})
	r.Tick()
	r.Tick()

	if g.tilt != 6 {
		t.Errorf("game received tilt %v, expected 6", g.tilt)
	}
	if buf.Pending() != 0 {
		t.Error("buffer should be drained")
	}
}

func TestQuitStopsRunner(t *testing.T) {
	g := &scriptedGame{endAt: 1000}
	buf := input.NewTiltBuffer(1)
	r := New(g, buf, quietOptions())

	r.Tick()
	buf.Press(core.ActionQuit)
	res := r.Simulate(100, nil)

	if !r.Quit() {
		t.Fatal("runner should report quit")
	}
	if g.steps != 1 || res.Ticks != 1 {
		t.Errorf("game stepped %d times (ticks %d), expected 1", g.steps, res.Ticks)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() (Result, uint64) {
		var last core.Snapshot
		opts := quietOptions()
		opts.OnTick = func(s core.Snapshot) { last = s }
		r := New(newTiltDodge(6), nil, opts)
		res := r.Simulate(400, input.NewRandomWalk(3, 1.5, 6))
		return res, last.Hash()
	}

	resA, hashA := run()
	resB, hashB := run()
	if resA.Score != resB.Score || resA.GameOver != resB.GameOver || resA.Collisions != resB.Collisions {
		t.Errorf("results differ: %+v vs %+v", resA, resB)
	}
	if hashA != hashB {
		t.Errorf("final snapshots differ: %d vs %d", hashA, hashB)
	}
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	opts := quietOptions()
	opts.Runtime.TickRate = 1000
	opts.MaxTicks = 5
	r := New(&scriptedGame{endAt: 1000}, nil, opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Ticks != 5 {
		t.Errorf("Ticks = %d, expected 5", res.Ticks)
	}
}

func TestRunHonoursCancel(t *testing.T) {
	r := New(&scriptedGame{endAt: 1000}, nil, quietOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestReloadAppliesAtTickBoundary(t *testing.T) {
	g := newTiltDodge(6)
	r := New(g, nil, quietOptions())

	cfg := config.DefaultTiltDodgeConfig()
	cfg.Obstacles.Count = 4
	r.Reload(cfg)
	cfg.Obstacles.Count = 2
	r.Reload(cfg)

	if n := len(g.World().Obstacles()); n != 6 {
		t.Fatalf("reload applied early: %d obstacles", n)
	}
	r.Tick()
	if n := len(g.World().Obstacles()); n != 2 {
		t.Errorf("got %d obstacles after reload, expected the newest config (2)", n)
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	var logs bytes.Buffer
	opts := quietOptions()
	opts.Logger = log.New(&logs)

	g := newTiltDodge(6)
	r := New(g, nil, opts)
	if logs.Len() != 0 {
		t.Fatalf("unexpected log output for a valid config: %s", logs.String())
	}

	bad := config.DefaultTiltDodgeConfig()
	bad.Obstacles.Count = 2
	bad.Physics.Gravity = -3
	r.Reload(bad)
	r.Tick()

	def := config.DefaultTiltDodgeConfig()
	if n := len(g.World().Obstacles()); n != def.Obstacles.Count {
		t.Errorf("got %d obstacles, expected the default %d", n, def.Obstacles.Count)
	}
	if !strings.Contains(logs.String(), "invalid config") {
		t.Errorf("expected the rejected config to be logged, got %q", logs.String())
	}
}

func TestWatchConfigReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.TiltDodgeFile)
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := config.WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile() failed: %v", err)
	}
	defer w.Close()

	g := newTiltDodge(6)
	r := New(g, nil, quietOptions())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.WatchConfig(ctx, w, path)

	// Replace the file in one step so the reload never sees a partial write
	tmp := filepath.Join(dir, "next.tmp")
	if err := os.WriteFile(tmp, []byte("obstacles:\n  count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		r.Tick()
		if len(g.World().Obstacles()) == 3 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("config change not applied, %d obstacles", len(g.World().Obstacles()))
}
