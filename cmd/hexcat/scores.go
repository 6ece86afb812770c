package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexcat/internal/registry"
	"github.com/vovakirdan/hexcat/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and strategy statistics",
	Long: `Display the top 10 high scores for the specified board (default: hexcat)
and statistics of the searches recorded for it.

Runs saved with 'hexcat compare --save' are listed under "compare".

Examples:
  hexcat scores
  hexcat scores hexcat_mini
  hexcat scores compare`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "hexcat"
	if len(args) > 0 {
		gameID = args[0]
	}

	title := "Strategy comparison"
	if gameID != compareGameID {
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'hexcat list' to see available boards.")
			os.Exit(1)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		title = game.Title()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if gameID != compareGameID {
		if err := printScores(store, gameID, title); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			return
		}
	}

	if err := printStrategyStats(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving search runs: %v\n", err)
	}
}

// printScores prints the top 10 scores of a game.
func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexcat play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %s\n", "Rank", "Score", "Moves", "Cat", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "-----", "---", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-8s  %s\n", i+1, entry.Score, entry.Moves, entry.Strategy, dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("Best: %d  Wins: %d  Average: %.1f  Fewest moves: %d\n",
			stats.HighScore, stats.Wins, stats.AvgScore, stats.FewestMoves)
	}
	return nil
}

// printStrategyStats prints aggregated search runs per strategy.
func printStrategyStats(store *storage.Store, gameID string) error {
	stats, err := store.StrategyStats(gameID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Cat searches")
	fmt.Println()
	fmt.Printf("  %-8s  %6s  %7s  %9s  %9s  %9s\n", "Strategy", "Runs", "Trapped", "Avg nodes", "Max nodes", "Avg path")
	fmt.Printf("  %-8s  %6s  %7s  %9s  %9s  %9s\n", "--------", "----", "-------", "---------", "---------", "--------")
	for _, st := range stats {
		fmt.Printf("  %-8s  %6d  %7d  %9.1f  %9d  %9.1f\n",
			st.Strategy, st.Runs, st.TrappedCount, st.AvgNodes, st.MaxNodes, st.AvgPathLength)
	}
	return nil
}
