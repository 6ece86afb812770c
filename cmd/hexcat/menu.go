package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexcat/internal/games/hexcat"
	"github.com/vovakirdan/hexcat/internal/platform/tui"
	"github.com/vovakirdan/hexcat/internal/registry"
	"github.com/vovakirdan/hexcat/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Hex Cat with a board and strategy picker",
	Long: `Start Hex Cat in interactive menu mode.

Use arrow keys or j/k to pick a board, left/right to pick the cat's
strategy and Enter to play. After a round, press B to return to the menu.

Controls:
  Up/Down/j/k     - Navigate boards
  Left/Right/h/l  - Change cat strategy
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  hexcat menu
  hexcat menu --fps 60
  hexcat menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	boardCfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	hexcat.SetConfig(boardCfg)
	strategy, _ := boardCfg.Strategy()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, strategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the strategy shown in the menu
		cfg = menuResult.Config
		strategy = menuResult.Strategy

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh board for each round unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Debug("starting game", "game", menuResult.GameID, "strategy", strategy)
		backToMenu, err := tui.Run(game, store, cfg, &strategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
