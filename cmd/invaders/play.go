package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H    - Move left (hold)
  Right/D/L   - Move right (hold)
  Space/W/Up  - Fire
  R/Enter     - Restart (after the game ends)
  ?           - Toggle key help
  Q/Esc       - Quit

Examples:
  invaders play
  invaders play --fps 30
  invaders play --config ./my-invaders.yaml --log-file ./invaders.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("invaders")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
