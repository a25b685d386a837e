package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapper/internal/platform/tui"
	"github.com/vovakirdan/flapper/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagMine        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the top 10 scores and the all-time high score.

Examples:
  flapper scores
  flapper scores --mine --player alice
  flapper scores -i
  flapper scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history and the high score")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "Only list games of --player, newest first")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Println("Score history cleared.")
		return
	}

	if flagInteractive {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, flagPlayer, width, height); err != nil {
			fail("running scoreboard: %v", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagMine {
		scores, err = store.PlayerScores(flagPlayer, 10)
	} else {
		scores, err = store.TopScores(10)
	}
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	// Display scores
	if flagMine {
		fmt.Printf("Recent games - %s\n", flagPlayer)
	} else {
		fmt.Println("High Scores - Flapper")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'flapper' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, entry.Player, dateStr)
	}

	// Show high score
	if high, err := store.HighScore(); err == nil {
		fmt.Println()
		fmt.Printf("High score: %d\n", high)
	}
}
