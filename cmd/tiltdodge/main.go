// tiltdodge runs the tilt-dodge game core without a screen.
//
// Usage:
//
//	tiltdodge list           - List available games
//	tiltdodge sim <game>     - Simulate a round as fast as possible
//	tiltdodge run <game>     - Run a round in real time with a synthetic sensor
//	tiltdodge config         - Print the effective config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to a custom tiltdodge.yaml
//	--log-level <level>  - debug, info, warn, error
//
// Flags left unset fall back to TILTDODGE_SEED, TILTDODGE_CONFIG and
// TILTDODGE_LOG_LEVEL, which may also come from a .env file in the
// working directory.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/games/tiltdodge"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltdodge",
	Short: "Tilt Dodge - steer a ball away from falling obstacles",
	Long: `Tilt Dodge simulates a motion-controlled dodge game: a ball steered by
device tilt must avoid falling obstacles. Obstacles that reach the floor
score a point and respawn; an obstacle that hits the ball ends the round.

Available commands:
  list     - Show all available games
  sim      - Simulate a round as fast as possible
  run      - Run a round in real time
  config   - Print the effective config

Examples:
  tiltdodge list
  tiltdodge sim tiltdodge --ticks 3600 --sensor random --seed 7
  tiltdodge run tiltdodge_classic --duration 30s --watch
  tiltdodge config --config ./my-tiltdodge.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnv(cmd); err != nil {
			return err
		}
		tiltdodge.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tiltdodge config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv loads .env if present and fills unset flags from the environment.
func applyEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv("TILTDODGE_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv("TILTDODGE_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv("TILTDODGE_SEED"); v != "" && !flags.Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TILTDODGE_SEED %q: %w", v, err)
		}
		flagSeed = seed
	}
	return nil
}

// newLogger builds the stderr logger used by every command.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tiltdodge",
		Level:           level,
	}), nil
}

// runtimeConfig builds the play area settings from the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
