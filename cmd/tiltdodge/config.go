package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Long: `Loads the tiltdodge config using the normal search order and prints it
as YAML. Search order:
  1. --config path
  2. ~/.arcade/configs/tiltdodge.yaml
  3. ./configs/tiltdodge.yaml
  4. built-in defaults
A --config file that fails validation is reported as an error.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadTiltDodge(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.MarshalTiltDodge(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
