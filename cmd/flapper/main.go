// flapper is a one-button arcade game: flap through the gaps, dodge the
// enemies, beat your high score.
//
// Usage:
//
//	flapper                  - Play in the terminal
//	flapper play             - Play in the terminal
//	flapper window           - Play in an 800x600 window
//	flapper serve            - Start SSH server for remote play
//	flapper scores           - Show the score history
//	flapper config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flapper/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--player <name>      - Name scores are recorded under
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "Flapper - a one-button arcade game for the terminal",
	Long: `Flapper is a side-scrolling arcade game. Flap to stay in the air,
fly through the gaps between the walls and avoid the enemies.
One point per wall passed.

Running flapper without a command starts a game in the terminal.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the score history
  config   - Print the effective configuration

Examples:
  flapper
  flapper window
  flapper serve --ssh :2222
  flapper scores -i
  flapper config > ~/.flapper/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Name scores are recorded under")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
