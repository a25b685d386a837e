package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with sprites and sound.

Sprites (background.png, player.png, enemy.png) and sounds (flap.mp3,
gameover.mp3, enemy.mp3, bg.mp3) are read from the assets directory set
in the config. Missing files are replaced by placeholders.

Examples:
  flapper window
  flapper window --config ./configs/flapper.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	cfg := loadConfig(logger)

	err := withCollaborators(cfg, logger, func(deps game.Collaborators) error {
		return desktop.Run(desktop.Options{
			Game:   cfg,
			Seed:   flagSeed,
			TPS:    flagFPS,
			Deps:   deps,
			Logger: logger,
		})
	})
	if err != nil {
		fail("running window: %v", err)
	}
}
