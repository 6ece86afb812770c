package pathfind

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexcat/internal/hexgrid"
)

// newBoard returns an empty rows x cols grid with the given tiles blocked.
func newBoard(t *testing.T, rows, cols int, blocked ...hexgrid.Coord) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.NewGrid(rows, cols)
	require.NoError(t, err)
	for _, c := range blocked {
		g.SetBlocked(c, true)
	}
	g.ClearChanged()
	return g
}

// reachesBorder is an independent flood-fill oracle.
func reachesBorder(g *hexgrid.Grid, start hexgrid.Coord) bool {
	seen := map[hexgrid.Coord]bool{start: true}
	stack := []hexgrid.Coord{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.IsBorder(c) {
			return true
		}
		for _, n := range g.Neighbors(c) {
			if !seen[n] && !g.IsBlocked(n) {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return false
}

// requireValidPath checks the structural guarantees every strategy gives.
func requireValidPath(t *testing.T, g *hexgrid.Grid, start hexgrid.Coord, res Result) {
	t.Helper()
	if !res.Found() {
		return
	}
	require.Equal(t, start, res.Path[0], "path must begin at the start tile")
	require.True(t, g.IsBorder(res.Path[len(res.Path)-1]), "path must end on the border")
	for i, c := range res.Path {
		if i > 0 {
			require.True(t, hexgrid.Adjacent(res.Path[i-1], c), "%v and %v are not adjacent", res.Path[i-1], c)
			require.False(t, g.IsBlocked(c), "path crosses blocked tile %v", c)
		}
	}
}

func TestBreadthFirstOpenBoard(t *testing.T) {
	g := newBoard(t, 5, 5)
	res := FindPath(BreadthFirst, g, hexgrid.C(2, 2))

	assert.Equal(t, []hexgrid.Coord{hexgrid.C(2, 2), hexgrid.C(1, 2), hexgrid.C(0, 2)}, res.Path)
	assert.Equal(t, 3, res.PathLength())
	assert.Equal(t, 2, res.Steps())
	assert.Equal(t, 8, res.NodesExplored())
	assert.LessOrEqual(t, res.NodesExplored(), 25)
}

func TestDepthFirstOpenBoard(t *testing.T) {
	g := newBoard(t, 5, 5)
	res := FindPath(DepthFirst, g, hexgrid.C(2, 2))

	// The last pushed neighbor is explored first: (3,1), then its last pushed (4,2).
	expected := []hexgrid.Coord{hexgrid.C(2, 2), hexgrid.C(3, 1), hexgrid.C(4, 2)}
	assert.Equal(t, expected, res.Path)
	assert.Equal(t, expected, res.Visited)
}

func TestAStarOpenBoard(t *testing.T) {
	g := newBoard(t, 5, 5)
	res := FindPath(AStar, g, hexgrid.C(2, 2))

	assert.Equal(t, []hexgrid.Coord{hexgrid.C(2, 2), hexgrid.C(1, 2), hexgrid.C(0, 2)}, res.Path)
	assert.Equal(t, 8, res.NodesExplored())
}

func TestEnclosedStartHasNoPath(t *testing.T) {
	start := hexgrid.C(2, 2)
	g := newBoard(t, 5, 5, hexgrid.Neighbors(start, 5, 5)...)

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			res := FindPath(k, g, start)
			assert.Empty(t, res.Path)
			assert.False(t, res.Found())
			assert.Equal(t, []hexgrid.Coord{start}, res.Visited)

			_, ok := res.NextStep()
			assert.False(t, ok)
		})
	}
}

func TestStartOnBorder(t *testing.T) {
	g := newBoard(t, 5, 5)
	start := hexgrid.C(0, 3)

	for _, k := range Kinds() {
		res := FindPath(k, g, start)
		assert.Equal(t, []hexgrid.Coord{start}, res.Path, k.String())
		_, ok := res.NextStep()
		assert.False(t, ok, "no step needed when already on the border")
	}
}

func TestOutOfBoundsStart(t *testing.T) {
	g := newBoard(t, 5, 5)
	for _, k := range Kinds() {
		res := FindPath(k, g, hexgrid.C(7, 7))
		assert.Empty(t, res.Path)
		assert.Empty(t, res.Visited)
	}
}

func TestAStarDetour(t *testing.T) {
	// Wall off the top and the left/right exits of the center row; the only
	// short way out is downwards.
	g := newBoard(t, 7, 7,
		hexgrid.C(2, 2), hexgrid.C(2, 3), hexgrid.C(2, 4),
		hexgrid.C(3, 2), hexgrid.C(3, 4),
	)
	start := hexgrid.C(3, 3)

	bfs := FindPath(BreadthFirst, g, start)
	astar := FindPath(AStar, g, start)

	requireValidPath(t, g, start, astar)
	assert.Equal(t, bfs.PathLength(), astar.PathLength())
	assert.Equal(t, 4, astar.PathLength())
	assert.LessOrEqual(t, astar.NodesExplored(), bfs.NodesExplored())
}

func TestReconstructPath(t *testing.T) {
	// A(0) -> B(1) -> C(2); D(3) is unrelated.
	parent := []int{-1, 0, 1, -1}

	assert.Equal(t, []int{0, 1, 2}, reconstructPath(2, parent))
	assert.Equal(t, []int{3}, reconstructPath(3, parent))
	assert.Empty(t, reconstructPath(-1, parent))
}

func TestReconstructPathStopsOnCycle(t *testing.T) {
	parent := []int{1, 0}
	path := reconstructPath(0, parent)
	assert.LessOrEqual(t, len(path), len(parent)+1)
}

func TestStrategiesOnRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const rows, cols = 9, 9
	start := hexgrid.C(rows/2, cols/2)

	for trial := range 300 {
		g := newBoard(t, rows, cols)
		for i := range g.Size() {
			c := g.CoordOf(i)
			if c != start && rng.Float64() < 0.4 {
				g.SetBlocked(c, true)
			}
		}

		reachable := reachesBorder(g, start)
		results := make(map[Kind]Result, 3)
		for _, k := range Kinds() {
			res := FindPath(k, g, start)
			results[k] = res

			require.Equal(t, reachable, res.Found(), "trial %d %s: path found disagrees with flood fill", trial, k)
			requireValidPath(t, g, start, res)

			seen := make(map[hexgrid.Coord]bool, len(res.Visited))
			for _, v := range res.Visited {
				require.False(t, seen[v], "trial %d %s: %v expanded twice", trial, k, v)
				seen[v] = true
			}
		}

		require.Equal(t, results[BreadthFirst].PathLength(), results[AStar].PathLength(),
			"trial %d: A* must match the BFS optimum", trial)
		if reachable {
			require.GreaterOrEqual(t, results[DepthFirst].PathLength(), results[BreadthFirst].PathLength(),
				"trial %d: nothing beats the BFS optimum", trial)
		}
	}
}

func TestDeterministicResults(t *testing.T) {
	g := newBoard(t, 11, 11, hexgrid.C(4, 5), hexgrid.C(6, 5), hexgrid.C(5, 4))
	start := hexgrid.C(5, 5)

	for _, k := range Kinds() {
		a := FindPath(k, g, start)
		b := FindPath(k, g, start)
		assert.Equal(t, a, b, k.String())
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in       string
		expected Kind
	}{
		{"bfs", BreadthFirst},
		{"DFS", DepthFirst},
		{"astar", AStar},
		{"A*", AStar},
		{" breadth-first ", BreadthFirst},
	}

	for _, tc := range tests {
		k, err := ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, k, tc.in)
	}

	_, err := ParseKind("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindCycle(t *testing.T) {
	assert.Equal(t, DepthFirst, BreadthFirst.Next())
	assert.Equal(t, AStar, DepthFirst.Next())
	assert.Equal(t, BreadthFirst, AStar.Next())
	assert.Equal(t, "A*", AStar.Title())
}
