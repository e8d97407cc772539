// invaders is a terminal rendition of a single-stage space shooter: move the
// ship, shoot the descending formation, clear the stage before it lands.
//
// Usage:
//
//	invaders play            - Play in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--config <path>    - Load a custom YAML configuration
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - Shoot down the descending formation in your terminal",
	Long: `Invaders is a single-stage shooter played in the terminal.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print or validate the configuration

Examples:
  invaders play
  invaders play --config ./my-invaders.yaml
  invaders serve --ssh :2222
  invaders config --validate`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom invaders config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads and validates the configuration named by --config.
func loadConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// openLogger returns a file logger for --log-file, or nil when logging is off.
// The returned close function is never nil.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
