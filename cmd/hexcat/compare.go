package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexcat/internal/pathfind"
	"github.com/vovakirdan/hexcat/internal/storage"
	"github.com/vovakirdan/hexcat/internal/telemetry"
)

var (
	flagTrials      int
	flagCSVPath     string
	flagSaveRuns    bool
	flagCompareOnly []string
)

// compareGameID tags persisted comparison runs apart from played games.
const compareGameID = "compare"

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare strategies over many seeded boards",
	Long: `Generate seeded boards from the config and run every strategy from the
cat's start tile. Prints mean and standard deviation of explored nodes and
path length per strategy.

Trial i uses seed --seed + i, so runs are reproducible.

Examples:
  hexcat compare --trials 500
  hexcat compare --seed 1 --csv runs.csv
  hexcat compare --strategies bfs,astar --difficulty hard
  hexcat compare --save`,
	Args: cobra.NoArgs,
	Run:  runCompare,
}

func init() {
	compareCmd.Flags().IntVar(&flagTrials, "trials", 100, "Number of boards to generate")
	compareCmd.Flags().StringVar(&flagCSVPath, "csv", "", "Write per-run records to this CSV file")
	compareCmd.Flags().BoolVar(&flagSaveRuns, "save", false, "Persist runs to the scores database")
	compareCmd.Flags().StringSliceVar(&flagCompareOnly, "strategies", nil, "Strategies to compare (default: all)")
}

func runCompare(_ *cobra.Command, _ []string) {
	boardCfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kinds := make([]pathfind.Kind, 0, len(flagCompareOnly))
	for _, name := range flagCompareOnly {
		kind, err := pathfind.ParseKind(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kinds = append(kinds, kind)
	}

	s := seed()
	logger.Info("comparing strategies", "trials", flagTrials, "seed", s)

	records, err := telemetry.Compare(boardCfg, telemetry.Options{
		Trials: flagTrials,
		Seed:   s,
		Kinds:  kinds,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Board %dx%d, %d obstacles, %d trials from seed %d\n\n",
		boardCfg.Board.Rows, boardCfg.Board.Cols, boardCfg.Obstacles.Count, flagTrials, s)

	fmt.Printf("  %-8s  %6s  %7s  %16s  %16s\n", "Strategy", "Runs", "Trapped", "Nodes (mean±sd)", "Path (mean±sd)")
	fmt.Printf("  %-8s  %6s  %7s  %16s  %16s\n", "--------", "----", "-------", "---------------", "--------------")
	for _, sum := range telemetry.Summarize(records) {
		fmt.Printf("  %-8s  %6d  %7d  %16s  %16s\n",
			sum.Strategy, sum.Runs, sum.Trapped,
			fmt.Sprintf("%.1f±%.1f", sum.MeanNodes, sum.StdNodes),
			fmt.Sprintf("%.1f±%.1f", sum.MeanPath, sum.StdPath),
		)
	}

	if flagCSVPath != "" {
		if err := telemetry.WriteCSVFile(flagCSVPath, records); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %d records to %s\n", len(records), flagCSVPath)
	}

	if flagSaveRuns {
		saveRuns(records)
	}
}

// saveRuns persists comparison records as search runs.
func saveRuns(records []telemetry.Record) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs := make([]storage.SearchRun, len(records))
	for i, r := range records {
		runs[i] = r.SearchRun(compareGameID)
	}

	if err := store.SaveSearchRuns(runs); err != nil {
		logger.Error("could not save runs", "error", err)
		return
	}
	fmt.Printf("Saved %d runs to %s (game %q)\n", len(runs), flagDBPath, compareGameID)
}
