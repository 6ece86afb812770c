// Package telemetry runs search strategies over seeded random boards and
// summarizes how much work each one does.
package telemetry

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/hexcat/internal/config"
	"github.com/vovakirdan/hexcat/internal/games/hexcat"
	"github.com/vovakirdan/hexcat/internal/pathfind"
	"github.com/vovakirdan/hexcat/internal/storage"
)

// Record is one strategy run from the cat's start tile on one board.
type Record struct {
	Trial         int    `csv:"trial"`
	Seed          int64  `csv:"seed"`
	Strategy      string `csv:"strategy"`
	Blocked       int    `csv:"blocked"`
	NodesExplored int    `csv:"nodes_explored"`
	PathLength    int    `csv:"path_length"`
	Steps         int    `csv:"steps"`
	Trapped       bool   `csv:"trapped"`
}

// SearchRun converts the record for persistence.
func (r Record) SearchRun(gameID string) storage.SearchRun {
	return storage.SearchRun{
		GameID:        gameID,
		Strategy:      r.Strategy,
		NodesExplored: r.NodesExplored,
		PathLength:    r.PathLength,
		Trapped:       r.Trapped,
	}
}

// Options controls a comparison.
type Options struct {
	Trials int             // Boards to generate
	Seed   int64           // Seed of the first board; trial i uses Seed+i
	Kinds  []pathfind.Kind // Strategies to run; all when empty
}

// Compare generates opts.Trials boards from cfg and runs every strategy on each.
// Records are ordered by trial, then by strategy in opts.Kinds order.
func Compare(cfg config.HexcatConfig, opts Options) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Trials <= 0 {
		return nil, fmt.Errorf("telemetry: trials must be positive, got %d", opts.Trials)
	}
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = pathfind.Kinds()
	}

	records := make([]Record, 0, opts.Trials*len(kinds))
	for trial := range opts.Trials {
		seed := opts.Seed + int64(trial)
		grid, cat := hexcat.NewBoard(cfg, rand.New(rand.NewSource(seed)))
		blocked := grid.BlockedCount()

		for _, k := range kinds {
			res := pathfind.FindPath(k, grid, cat)
			records = append(records, Record{
				Trial:         trial,
				Seed:          seed,
				Strategy:      k.String(),
				Blocked:       blocked,
				NodesExplored: res.NodesExplored(),
				PathLength:    res.PathLength(),
				Steps:         res.Steps(),
				Trapped:       !res.Found(),
			})
		}
	}
	return records, nil
}

// Summary aggregates the records of one strategy.
type Summary struct {
	Strategy  string
	Runs      int
	Trapped   int
	MeanNodes float64
	StdNodes  float64
	MeanPath  float64 // Over runs that found a path
	StdPath   float64
}

// Summarize groups records by strategy, keeping first-seen order.
func Summarize(records []Record) []Summary {
	var order []string
	nodes := make(map[string][]float64)
	paths := make(map[string][]float64)
	trapped := make(map[string]int)

	for _, r := range records {
		if _, ok := nodes[r.Strategy]; !ok {
			order = append(order, r.Strategy)
		}
		nodes[r.Strategy] = append(nodes[r.Strategy], float64(r.NodesExplored))
		if r.Trapped {
			trapped[r.Strategy]++
			continue
		}
		paths[r.Strategy] = append(paths[r.Strategy], float64(r.PathLength))
	}

	summaries := make([]Summary, 0, len(order))
	for _, name := range order {
		s := Summary{
			Strategy: name,
			Runs:     len(nodes[name]),
			Trapped:  trapped[name],
		}
		s.MeanNodes, s.StdNodes = meanStdDev(nodes[name])
		s.MeanPath, s.StdPath = meanStdDev(paths[name])
		summaries = append(summaries, s)
	}
	return summaries
}

// meanStdDev returns the sample mean and standard deviation.
// Fewer than two samples have zero deviation.
func meanStdDev(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
