package hexcat

import (
	"math/rand"

	"github.com/vovakirdan/hexcat/internal/config"
	"github.com/vovakirdan/hexcat/internal/hexgrid"
)

// NewBoard builds a board from cfg: the cat sits in the center and
// cfg.Obstacles.Count tiles are blocked at random outside the safe zone.
// The same rng state always yields the same board.
func NewBoard(cfg config.HexcatConfig, rng *rand.Rand) (*hexgrid.Grid, hexgrid.Coord) {
	grid, err := hexgrid.NewGrid(cfg.Board.Rows, cfg.Board.Cols)
	if err != nil {
		def := config.DefaultHexcatConfig()
		grid, _ = hexgrid.NewGrid(def.Board.Rows, def.Board.Cols)
	}

	cat := hexgrid.C(grid.Rows()/2, grid.Cols()/2)
	grid.SetOccupied(cat, true)
	placeObstacles(grid, cat, cfg.Obstacles.Count, cfg.Obstacles.SafeRadius, rng)
	grid.ClearChanged()
	return grid, cat
}

// placeObstacles blocks up to count random tiles, skipping the cat and
// every tile within radius rows and columns of it.
// Returns the number of tiles blocked.
func placeObstacles(grid *hexgrid.Grid, cat hexgrid.Coord, count, radius int, rng *rand.Rand) int {
	candidates := make([]hexgrid.Coord, 0, grid.Size())
	for i := range grid.Size() {
		c := grid.CoordOf(i)
		if inSafeZone(c, cat, radius) || grid.IsBlocked(c) {
			continue
		}
		candidates = append(candidates, c)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	n := min(max(count, 0), len(candidates))
	for _, c := range candidates[:n] {
		grid.SetBlocked(c, true)
	}
	return n
}

// inSafeZone reports whether c lies in the square of the given radius around cat.
func inSafeZone(c, cat hexgrid.Coord, radius int) bool {
	return abs(c.Row-cat.Row) <= radius && abs(c.Col-cat.Col) <= radius
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
