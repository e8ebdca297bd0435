package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jollyjumper/internal/core"
	"github.com/vovakirdan/jollyjumper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Pick a ball color, then play in the terminal.

Terminals report key presses but not releases, so a direction stays held for
a short while after each press (controls.hold_ticks); key repeat keeps it held.
After a game ends you return to the color picker.

Controls:
  Left/Right, A/D  - Move the ball
  P                - Pause
  R                - Restart (after game over)
  E/Esc            - End the game, back to the picker
  Ctrl+S           - Save a text screenshot to ~/.jolly/screenshots
  Q/Ctrl+C         - Quit
  Tab              - Session scores (in the picker)

Examples:
  jolly play
  jolly play --difficulty easy
  jolly play --config ./jolly.toml --log-file ~/.jolly/jolly.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := runtimeConfig(width, height)

	sim, cfg, err := newSimulation(logger, rc)
	if err != nil {
		return err
	}

	session := tui.NewSession()
	color := initialColor(cfg)

	for {
		picked, err := tui.RunPicker(core.Palette, color, session, rc)
		if err != nil {
			return err
		}
		rc = picked.Config

		if picked.Quit {
			break
		}
		if picked.WantsScores {
			quit, err := tui.RunScores(session, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if quit {
				break
			}
			continue
		}

		color = picked.Color
		if err := sim.Start(color); err != nil {
			return err
		}
		logger.Info("game started", "color", color)

		outcome, err := tui.Run(sim, tui.GameOptions{
			Runtime:   rc,
			HoldTicks: cfg.Controls.HoldTicks,
			Session:   session,
			Logger:    logger,
		})
		if err != nil {
			return err
		}
		sim.End()

		if outcome == tui.OutcomeQuit {
			break
		}
	}

	if best, ok := session.Best(); ok {
		logger.Info("session finished", "games", session.Len(), "best", best.Score)
	}
	return nil
}
