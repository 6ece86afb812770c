// hexcat is a terminal hex-grid game where the player traps a cat that
// escapes with a selectable search strategy.
//
// Usage:
//
//	hexcat list              - List available boards
//	hexcat play [game]       - Play a board
//	hexcat menu              - Start menu to pick board and strategy interactively
//	hexcat solve             - Print a seeded board with the cat's escape route
//	hexcat compare           - Compare strategies over many seeded boards
//	hexcat serve             - Start SSH server for remote play
//	hexcat scores [game]     - Show high scores and strategy statistics
//	hexcat config            - Print or save the effective board config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.hexcat/scores.db)
//	--config <path>      - Custom board config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexcat/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/hexcat/internal/games/hexcat"
	"github.com/vovakirdan/hexcat/internal/pathfind"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexcat",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexcat",
	Short: "Hex Cat - Trap the cat on a hex grid in your terminal",
	Long: `Hex Cat is a terminal puzzle on an offset hex grid. Each turn you block
one tile, then the cat takes one step along the escape route its search
strategy (BFS, DFS or A*) finds. Wall it in before it reaches the edge.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board and strategy picker
  solve    - Print a seeded board with the cat's escape route
  compare  - Compare strategies over many seeded boards
  serve    - Start SSH server for remote play
  scores   - View high scores and strategy statistics
  config   - Print or save the effective board config

Examples:
  hexcat list
  hexcat play --strategy astar
  hexcat menu
  hexcat solve --all --seed 7
  hexcat compare --trials 500 --csv runs.csv
  hexcat serve --ssh :2222
  hexcat scores hexcat`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexcat/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the board config from --config and --difficulty.
// A non-empty strategy overrides the configured one.
func loadConfig(strategy string) (config.HexcatConfig, error) {
	cfg, err := config.LoadHexcat(flagConfig)
	if err != nil {
		return config.HexcatConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.HexcatConfig{}, err
	}
	config.ApplyHexcatPreset(&cfg, preset)

	if strategy != "" {
		kind, err := pathfind.ParseKind(strategy)
		if err != nil {
			return config.HexcatConfig{}, err
		}
		cfg.Search.Strategy = kind.String()
	}

	if err := cfg.Validate(); err != nil {
		return config.HexcatConfig{}, err
	}

	logger.Debug("config loaded",
		"rows", cfg.Board.Rows,
		"cols", cfg.Board.Cols,
		"obstacles", cfg.Obstacles.Count,
		"strategy", cfg.Search.Strategy,
		"invalidation", cfg.Search.Invalidation,
	)
	return cfg, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
