package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/config"
	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/input"
	"github.com/vovakirdan/tilt-arcade/internal/notify"
	"github.com/vovakirdan/tilt-arcade/internal/platform/headless"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
)

var (
	flagDuration time.Duration
	flagWatch    bool
	flagInterval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <game>",
	Short: "Run a round in real time",
	Long: `Runs the game at the tick rate set by --fps. A synthetic sensor pushes
tilt samples from its own goroutine; they are applied at the next tick.
Game-over notifications are written to the log.

With --watch the config file given by --config (or the user config in
~/.arcade/configs) is watched and reloaded on change, restarting the round.

Press Ctrl+C to stop.

Examples:
  tiltdodge run tiltdodge --duration 30s
  tiltdodge run tiltdodge --sensor random --config ./tiltdodge.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this long (0 = until interrupted)")
	runCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	runCmd.Flags().StringVar(&flagSensor, "sensor", input.SourceWave, "Synthetic sensor: wave, random, none")
	runCmd.Flags().DurationVar(&flagInterval, "sample-interval", 0, "Sensor sampling interval (default from config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	game, err := registry.Create(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadTiltDodge(flagConfig)
	if err != nil {
		logger.Error("invalid config, using defaults", "err", err)
		cfg = config.DefaultTiltDodgeConfig()
	}
	if c, ok := game.(headless.Configurable); ok {
		c.SetConfig(cfg)
	}

	events := notify.NewChannelNotifier(16)
	defer events.Close()
	attachNotifier(game, notify.Multi(notify.NewLogNotifier(logger), events))

	rt := runtimeConfig()
	buf := input.NewTiltBuffer(cfg.Input.Sensitivity)
	runner := headless.New(game, buf, headless.Options{
		Runtime: rt,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	src, err := input.NewSource(flagSensor, rt.Seed)
	if err != nil {
		return err
	}
	if src != nil {
		interval := flagInterval
		if interval <= 0 {
			interval = time.Duration(cfg.Input.SampleIntervalMS) * time.Millisecond
		}
		sensor := input.Poller{Source: src, Interval: interval}
		go func() {
			_ = sensor.Run(ctx, buf.Push)
		}()
	}

	if flagWatch {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		if path == "" {
			return errors.New("--watch needs --config or a home directory")
		}
		w, err := config.WatchFile(path)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer w.Close()
		logger.Info("watching config", "path", path)
		go runner.WatchConfig(ctx, w, path)
	}

	// Restart a round a second after it ends, as a player pressing reset
	// would. Stops once the notifier is closed on return.
	go func() {
		for {
			select {
			case n := <-events.Events():
				if n.Kind != notify.KindGameOver {
					continue
				}
				select {
				case <-time.After(time.Second):
					buf.Press(core.ActionReset)
				case <-events.Done():
					return
				}
			case <-events.Done():
				return
			}
		}
	}()

	res, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	printResult(res, rt.Seed)
	return nil
}
