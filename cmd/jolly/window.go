package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jollyjumper/internal/core"
	"github.com/vovakirdan/jollyjumper/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the playing field.

Controls:
  1-8, A/D         - Pick the ball color
  Enter/Space      - Start
  Left/Right, A/D  - Move the ball (while held)
  P                - Pause
  R                - Restart (after game over)
  E                - End the game, back to the picker
  Esc/Q            - Quit

Examples:
  jolly window
  jolly window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the field")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := runtimeConfig(0, 0)
	sim, cfg, err := newSimulation(logger, rc)
	if err != nil {
		return err
	}

	return window.Run(sim, window.Options{
		Runtime: rc,
		Colors:  core.Palette,
		Initial: initialColor(cfg),
		Scale:   flagScale,
		Logger:  logger,
	})
}
