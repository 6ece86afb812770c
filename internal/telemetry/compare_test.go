package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexcat/internal/config"
	"github.com/vovakirdan/hexcat/internal/pathfind"
)

func TestCompareStrategiesAgree(t *testing.T) {
	cfg := config.DefaultHexcatConfig()
	cfg.Obstacles.Count = 40
	cfg.Obstacles.SafeRadius = 1

	records, err := Compare(cfg, Options{Trials: 60, Seed: 100})
	require.NoError(t, err)
	require.Len(t, records, 60*3)

	for i := 0; i < len(records); i += 3 {
		bfs, dfs, astar := records[i], records[i+1], records[i+2]
		require.Equal(t, "bfs", bfs.Strategy)
		require.Equal(t, "dfs", dfs.Strategy)
		require.Equal(t, "astar", astar.Strategy)

		// Reachability does not depend on the strategy
		assert.Equal(t, bfs.Trapped, dfs.Trapped, "trial %d", bfs.Trial)
		assert.Equal(t, bfs.Trapped, astar.Trapped, "trial %d", bfs.Trial)

		assert.Equal(t, bfs.PathLength, astar.PathLength, "trial %d: A* must be optimal", bfs.Trial)
		assert.GreaterOrEqual(t, dfs.PathLength, bfs.PathLength, "trial %d", bfs.Trial)
		assert.Equal(t, 40, bfs.Blocked)
	}
}

func TestCompareDeterministic(t *testing.T) {
	cfg := config.DefaultHexcatConfig()
	a, err := Compare(cfg, Options{Trials: 10, Seed: 7})
	require.NoError(t, err)
	b, err := Compare(cfg, Options{Trials: 10, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompareSelectedKinds(t *testing.T) {
	records, err := Compare(config.DefaultHexcatConfig(), Options{
		Trials: 4,
		Kinds:  []pathfind.Kind{pathfind.AStar},
	})
	require.NoError(t, err)
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Equal(t, "astar", r.Strategy)
	}
}

func TestCompareRejectsBadInput(t *testing.T) {
	_, err := Compare(config.DefaultHexcatConfig(), Options{Trials: 0})
	assert.Error(t, err)

	cfg := config.DefaultHexcatConfig()
	cfg.Board.Rows = 1
	_, err = Compare(cfg, Options{Trials: 1})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{Strategy: "bfs", NodesExplored: 10, PathLength: 4},
		{Strategy: "bfs", NodesExplored: 20, PathLength: 6},
		{Strategy: "bfs", NodesExplored: 30, Trapped: true},
		{Strategy: "astar", NodesExplored: 5, PathLength: 4},
	}

	summaries := Summarize(records)
	require.Len(t, summaries, 2)

	bfs := summaries[0]
	assert.Equal(t, "bfs", bfs.Strategy)
	assert.Equal(t, 3, bfs.Runs)
	assert.Equal(t, 1, bfs.Trapped)
	assert.InDelta(t, 20.0, bfs.MeanNodes, 1e-9)
	assert.InDelta(t, 10.0, bfs.StdNodes, 1e-9)
	assert.InDelta(t, 5.0, bfs.MeanPath, 1e-9)

	astar := summaries[1]
	assert.Equal(t, "astar", astar.Strategy)
	assert.InDelta(t, 5.0, astar.MeanNodes, 1e-9)
	assert.Zero(t, astar.StdNodes)

	assert.Empty(t, Summarize(nil))
}

func TestCSVWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.Write([]Record{{Trial: 0, Strategy: "bfs", NodesExplored: 3, PathLength: 2, Steps: 1}}))
	require.NoError(t, w.Write([]Record{{Trial: 1, Strategy: "dfs", Trapped: true}}))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "nodes_explored"), "header must be written once")

	records, err := ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "dfs", records[1].Strategy)
	assert.True(t, records[1].Trapped)
}

func TestWriteCSVFile(t *testing.T) {
	records, err := Compare(config.DefaultHexcatConfig(), Options{Trials: 3, Seed: 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "compare.csv")
	require.NoError(t, WriteCSVFile(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := ReadCSV(f)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRecordSearchRun(t *testing.T) {
	r := Record{Strategy: "astar", NodesExplored: 12, PathLength: 5}
	run := r.SearchRun("hexcat")
	assert.Equal(t, "hexcat", run.GameID)
	assert.Equal(t, "astar", run.Strategy)
	assert.Equal(t, 12, run.NodesExplored)
	assert.False(t, run.Trapped)
}
