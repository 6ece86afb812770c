package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexcat/internal/games/hexcat"
	"github.com/vovakirdan/hexcat/internal/hexgrid"
	"github.com/vovakirdan/hexcat/internal/pathfind"
)

var (
	flagSolveStrategy string
	flagSolveAll      bool
)

var (
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	exploredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	catStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	blockedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print a seeded board with the cat's escape route",
	Long: `Generate a board from the config and seed, run the cat's search from
its start tile and print the board with the route.

Legend:
  C  cat        *  escape route
  #  blocked    o  explored tile
  .  free

Examples:
  hexcat solve --seed 7
  hexcat solve --strategy dfs --difficulty easy
  hexcat solve --all --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveStrategy, "strategy", "", "Cat strategy: bfs, dfs, astar (default from config)")
	solveCmd.Flags().BoolVar(&flagSolveAll, "all", false, "Run every strategy on the same board")
}

func runSolve(_ *cobra.Command, _ []string) {
	boardCfg, err := loadConfig(flagSolveStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kinds := pathfind.Kinds()
	if !flagSolveAll {
		kind, _ := boardCfg.Strategy()
		kinds = []pathfind.Kind{kind}
	}

	s := seed()
	grid, cat := hexcat.NewBoard(boardCfg, rand.New(rand.NewSource(s)))

	fmt.Printf("Board %dx%d, seed %d, %d blocked, cat at %s\n\n",
		grid.Rows(), grid.Cols(), s, grid.BlockedCount(), cat)

	for _, kind := range kinds {
		res := pathfind.FindPath(kind, grid, cat)
		logger.Debug("search finished",
			"strategy", kind,
			"nodes", res.NodesExplored(),
			"path", res.PathLength(),
		)

		outcome := fmt.Sprintf("escapes in %d steps", res.Steps())
		if !res.Found() {
			outcome = "trapped"
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s: %d nodes explored, path length %d, %s",
			kind.Title(), res.NodesExplored(), res.PathLength(), outcome)))
		fmt.Println(renderSolution(grid, res))
		fmt.Println()
	}
}

// renderSolution draws the grid like hexgrid.Grid.String, marking the
// explored tiles and the route.
func renderSolution(grid *hexgrid.Grid, res pathfind.Result) string {
	marks := make([]byte, grid.Size())
	for _, c := range res.Visited {
		marks[grid.Index(c)] = 'o'
	}
	for _, c := range res.Path {
		marks[grid.Index(c)] = '*'
	}

	var sb strings.Builder
	for r := range grid.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		if r%2 == 1 {
			sb.WriteByte(' ')
		}
		for c := range grid.Cols() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			coord := hexgrid.C(r, c)
			switch {
			case grid.IsOccupied(coord):
				sb.WriteString(catStyle.Render("C"))
			case grid.IsBlocked(coord):
				sb.WriteString(blockedStyle.Render("#"))
			case marks[grid.Index(coord)] == '*':
				sb.WriteString(pathStyle.Render("*"))
			case marks[grid.Index(coord)] == 'o':
				sb.WriteString(exploredStyle.Render("o"))
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
