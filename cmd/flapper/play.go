package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  space/up/w  Flap
  enter       Start / play again
  click       Start / play again
  ctrl+s      Save a screenshot to ~/.flapper/screenshots
  q/esc       Quit

Examples:
  flapper play
  flapper play --seed 42
  flapper play --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := playTerminal(); err != nil {
		fail("running game: %v", err)
	}
}

func playTerminal() error {
	logger, closeLog := fileLogger()
	defer closeLog()

	cfg := loadConfig(logger)

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = core.FallbackCols, core.FallbackRows
	}

	return withCollaborators(cfg, logger, func(deps game.Collaborators) error {
		logger.Info("starting game", "player", flagPlayer, "size", [2]int{width, height}, "seed", flagSeed)
		return tui.Run(tui.Options{
			Game: cfg,
			Runtime: core.Runtime{
				Cols: width,
				Rows: height,
				TPS:  cfg.Screen.FPS,
				Seed: flagSeed,
			},
			Deps:          deps,
			Logger:        logger,
			ScreenshotDir: filepath.Join(dataDir(), "screenshots"),
		})
	})
}
