package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexcat/internal/core"
	"github.com/vovakirdan/hexcat/internal/games/hexcat"
	"github.com/vovakirdan/hexcat/internal/pathfind"
	"github.com/vovakirdan/hexcat/internal/platform/tui"
	"github.com/vovakirdan/hexcat/internal/registry"
	"github.com/vovakirdan/hexcat/internal/storage"
)

var flagPlayStrategy string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: hexcat).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter       - Block tile
  Tab               - Cycle cat strategy
  V                 - Visualize the cat's search
  T                 - Toggle auto visualization
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 22 starting obstacles
  normal - 15 starting obstacles
  hard   - 8 starting obstacles, wider safe zone, A* cat

Examples:
  hexcat play
  hexcat play hexcat_mini
  hexcat play --strategy dfs
  hexcat play --difficulty hard
  hexcat play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayStrategy, "strategy", "", "Cat strategy: bfs, dfs, astar")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "hexcat"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hexcat list' to see available boards.")
		os.Exit(1)
	}

	boardCfg, err := loadConfig(flagPlayStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	hexcat.SetConfig(boardCfg)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var strategy *pathfind.Kind
	if flagPlayStrategy != "" {
		kind, _ := boardCfg.Strategy()
		strategy = &kind
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), strategy)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
