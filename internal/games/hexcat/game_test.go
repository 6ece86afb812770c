package hexcat

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/hexcat/internal/config"
	"github.com/vovakirdan/hexcat/internal/core"
	"github.com/vovakirdan/hexcat/internal/hexgrid"
	"github.com/vovakirdan/hexcat/internal/pathfind"
	"github.com/vovakirdan/hexcat/internal/registry"
)

func testConfig(rows, cols, obstacles int) config.HexcatConfig {
	cfg := config.DefaultHexcatConfig()
	cfg.Board.Rows = rows
	cfg.Board.Cols = cols
	cfg.Obstacles.Count = obstacles
	return cfg
}

func newTestGame(t *testing.T, cfg config.HexcatConfig, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetPlacesObstacles(t *testing.T) {
	cfg := config.DefaultHexcatConfig()
	g := newTestGame(t, cfg, 42)

	if g.Cat() != hexgrid.C(5, 5) {
		t.Fatalf("cat should start in the center, got %v", g.Cat())
	}
	if got := g.Grid().BlockedCount(); got != 15 {
		t.Errorf("expected 15 obstacles, got %d", got)
	}

	for i := range g.Grid().Size() {
		c := g.Grid().CoordOf(i)
		if g.Grid().IsBlocked(c) && inSafeZone(c, g.Cat(), cfg.Obstacles.SafeRadius) {
			t.Errorf("obstacle %v inside the safe zone", c)
		}
		if g.Grid().IsChanged(c) {
			t.Errorf("tile %v should start with a clear change flag", c)
		}
	}

	snap := g.Snapshot()
	if snap.State != StatePlaying || snap.Cursor != g.Cat() || snap.Moves != 0 {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
}

func TestObstacleCountCapped(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		radius   int
		expected int
	}{
		{"safe zone covers board", 10, 2, 0},
		{"more obstacles than tiles", 100, 0, 24},
		{"negative count", -3, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(5, 5, tc.count)
			cfg.Obstacles.SafeRadius = tc.radius
			grid, _ := NewBoard(cfg, rand.New(rand.NewSource(1)))
			if got := grid.BlockedCount(); got != tc.expected {
				t.Errorf("expected %d blocked tiles, got %d", tc.expected, got)
			}
		})
	}
}

func TestDeterministicBoards(t *testing.T) {
	cfg := config.DefaultHexcatConfig()
	a := newTestGame(t, cfg, 1234)
	b := newTestGame(t, cfg, 1234)

	if a.Grid().String() != b.Grid().String() {
		t.Fatal("same seed must produce the same board")
	}

	script := []core.Action{
		core.ActionUp, core.ActionUp, core.ActionConfirm,
		core.ActionLeft, core.ActionConfirm, core.ActionCycle,
		core.ActionDown, core.ActionConfirm,
	}
	for _, act := range script {
		a.Step(press(act))
		b.Step(press(act))
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("snapshots diverged after %v:\n%+v\n%+v", act, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestCatTrappedWins(t *testing.T) {
	g := newTestGame(t, testConfig(3, 3, 0), 1)
	cat := g.Cat()
	neighbors := hexgrid.Neighbors(cat, 3, 3)

	// Wall in all but one neighbor, then let the player close the last gap.
	for _, n := range neighbors[:len(neighbors)-1] {
		g.Grid().SetBlocked(n, true)
	}
	if !g.BlockTile(neighbors[len(neighbors)-1]) {
		t.Fatal("last neighbor should be blockable")
	}

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Fatalf("cat should be trapped, state %+v", state)
	}
	if g.Cat() != cat {
		t.Errorf("trapped cat must not move, now at %v", g.Cat())
	}
	// 3x3 board, one move, penalty 1
	if state.Score != 8 {
		t.Errorf("expected score 8, got %d", state.Score)
	}
	if g.LastResult().Found() {
		t.Error("deciding search should report no path")
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("expected won state, got %s", g.Snapshot().State)
	}
}

func TestCatEscapes(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)

	if !g.BlockTile(hexgrid.C(0, 0)) {
		t.Fatal("corner should be blockable")
	}
	if g.Cat() != hexgrid.C(1, 2) {
		t.Fatalf("cat should step toward the top edge, at %v", g.Cat())
	}
	if g.State().GameOver {
		t.Fatal("cat is not on the border yet")
	}

	g.BlockTile(hexgrid.C(4, 4))
	if g.Cat() != hexgrid.C(0, 2) {
		t.Fatalf("cat should reach the border, at %v", g.Cat())
	}

	state := g.State()
	if !state.GameOver || state.Won || state.Score != 0 {
		t.Errorf("expected escape with no score, state %+v", state)
	}
	if g.Snapshot().State != StateEscaped {
		t.Errorf("expected escaped state, got %s", g.Snapshot().State)
	}
	if g.BlockTile(hexgrid.C(4, 0)) {
		t.Error("no moves after the game ended")
	}
}

func TestBlockTileRejectsInvalidTiles(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)
	g.Grid().SetBlocked(hexgrid.C(4, 4), true)

	for _, c := range []hexgrid.Coord{g.Cat(), hexgrid.C(4, 4), hexgrid.C(-1, 2), hexgrid.C(5, 5)} {
		if g.BlockTile(c) {
			t.Errorf("BlockTile(%v) should be rejected", c)
		}
	}
	if g.Snapshot().Moves != 0 {
		t.Errorf("rejected moves must not count, got %d", g.Snapshot().Moves)
	}

	// Confirm with the cursor on the cat is a no-op
	g.Step(press(core.ActionConfirm))
	if g.Snapshot().Moves != 0 {
		t.Error("confirming on the cat should not count as a move")
	}
}

func TestCursorMovementClamped(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)

	for range 10 {
		g.Step(press(core.ActionUp))
	}
	for range 10 {
		g.Step(press(core.ActionLeft))
	}
	if got := g.Snapshot().Cursor; got != hexgrid.C(0, 0) {
		t.Errorf("cursor should stop at (0,0), got %v", got)
	}

	g.Step(press(core.ActionConfirm))
	if !g.Grid().IsBlocked(hexgrid.C(0, 0)) || g.Snapshot().Moves != 1 {
		t.Error("confirm should block the tile under the cursor")
	}
}

func TestVisualizationSteps(t *testing.T) {
	cfg := testConfig(5, 5, 0)
	cfg.Visualize.StepTicks = 2
	g := newTestGame(t, cfg, 1)

	g.Step(press(core.ActionVisualize))
	if !g.Visualizing() {
		t.Fatal("visualization should be running")
	}
	if g.Snapshot().State != StateVisualizing {
		t.Errorf("expected visualizing state, got %s", g.Snapshot().State)
	}

	// BFS from (2,2) on an open 5x5 board: 8 visited + 3 path tiles, 2 ticks each
	for range 21 {
		g.Step(core.NewInputFrame())
	}
	if !g.Visualizing() {
		t.Fatal("visualization finished too early")
	}
	g.Step(core.NewInputFrame())
	if g.Visualizing() {
		t.Fatal("visualization should be done")
	}

	if h := g.highlightAt(hexgrid.C(0, 2)); h != highlightPath {
		t.Errorf("exit tile should be highlighted as path, got %d", h)
	}
	if h := g.highlightAt(hexgrid.C(3, 2)); h != highlightExplored {
		t.Errorf("(3,2) should be highlighted as explored, got %d", h)
	}
	if h := g.highlightAt(hexgrid.C(4, 4)); h != highlightNone {
		t.Errorf("(4,4) was never visited, got %d", h)
	}

	stats := g.CacheStats()
	if stats.Hits != 1 || stats.Recomputes != 1 {
		t.Errorf("visualizing an unchanged board should hit the cache, stats %+v", stats)
	}
}

func TestVisualizationIgnoresInput(t *testing.T) {
	cfg := testConfig(5, 5, 0)
	cfg.Visualize.StepTicks = 100
	g := newTestGame(t, cfg, 1)

	g.Step(press(core.ActionVisualize))
	g.Step(press(core.ActionUp))
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionCycle))

	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Cursor != g.Cat() || snap.Strategy != "bfs" {
		t.Errorf("input must be ignored while visualizing, snapshot %+v", snap)
	}
}

func TestStrategyCycle(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)

	expected := []string{"dfs", "astar", "bfs"}
	for _, want := range expected {
		g.Step(press(core.ActionCycle))
		if got := g.Snapshot().Strategy; got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}

	g.SetStrategy(pathfind.DepthFirst)
	// DFS from (2,2) walks (3,1) then (4,2)
	if got := g.LastResult().Path; len(got) != 3 || got[1] != hexgrid.C(3, 1) {
		t.Errorf("unexpected DFS path %v", got)
	}
}

func TestToggleAutoVisualize(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)

	g.Step(press(core.ActionToggle))
	snap := g.Snapshot()
	if !snap.AutoVisualize || snap.State != StateVisualizing {
		t.Errorf("toggling on should start a visualization, snapshot %+v", snap)
	}
}

func TestAutoVisualizeAfterMove(t *testing.T) {
	cfg := testConfig(5, 5, 0)
	cfg.Visualize.Auto = true
	g := newTestGame(t, cfg, 1)

	g.BlockTile(hexgrid.C(4, 4))
	if !g.Visualizing() {
		t.Error("auto visualize should replay the search after a move")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)

	g.Step(press(core.ActionPause))
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("game should be paused")
	}

	g.Step(press(core.ActionUp))
	if g.Snapshot().Cursor != g.Cat() {
		t.Error("input should be ignored while paused")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestModeConfigMini(t *testing.T) {
	cfg := ModeConfig(config.DefaultHexcatConfig(), ModeMini)
	if cfg.Board.Rows != 7 || cfg.Board.Cols != 7 {
		t.Errorf("expected 7x7, got %dx%d", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Obstacles.Count != 6 {
		t.Errorf("expected 6 obstacles, got %d", cfg.Obstacles.Count)
	}
	if cfg.Obstacles.SafeRadius != 1 {
		t.Errorf("expected safe radius 1, got %d", cfg.Obstacles.SafeRadius)
	}

	classic := ModeConfig(config.DefaultHexcatConfig(), ModeClassic)
	if classic != config.DefaultHexcatConfig() {
		t.Error("classic mode must not alter the config")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"hexcat", "hexcat_mini"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("expected ID %s, got %s", id, g.ID())
		}
	}

	g, _ := registry.Create("hexcat_mini")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	if got := g.(*Game).Grid().Rows(); got != 7 {
		t.Errorf("mini board should have 7 rows, got %d", got)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if hud := screen.Row(1); !strings.Contains(hud, "Nodes: 8 | Path: 3 | Moves: 0 | BFS") {
		t.Errorf("unexpected HUD %q", hud)
	}

	// Board is 11 columns wide, centered: boardX = 34, first row at y = 4
	if cell := screen.GetCell(39, 6); cell.Rune != glyphCat || cell.Color != core.ColorCat {
		t.Errorf("expected cat at (39,6), got %+v", cell)
	}
	if r := screen.Get(35, 4); r != glyphFree {
		t.Errorf("expected free tile at (35,4), got %q", r)
	}
	// Odd rows shift right by one column
	if r := screen.Get(36, 5); r != glyphFree {
		t.Errorf("expected indented tile at (36,5), got %q", r)
	}
	if screen.Get(38, 6) != '[' || screen.Get(40, 6) != ']' {
		t.Error("cursor brackets should surround the cat")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(testConfig(5, 5, 0))
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1})

	if !g.State().Paused {
		t.Error("small window should pause the game")
	}

	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a resize hint")
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)
	g.BlockTile(hexgrid.C(0, 0))
	before := g.Snapshot()

	g.Resize(20, 5)
	if !g.State().Paused {
		t.Error("shrinking below the board should pause")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("growing back should resume")
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("resize must not restart the round:\n%+v\n%+v", before, after)
	}
}

func TestLastSearch(t *testing.T) {
	g := newTestGame(t, testConfig(5, 5, 0), 1)

	strategy, nodes, pathLen := g.LastSearch()
	if strategy != "bfs" || nodes != 8 || pathLen != 3 {
		t.Errorf("unexpected search summary %s %d %d", strategy, nodes, pathLen)
	}

	g.SetStrategy(pathfind.AStar)
	if strategy, _, _ := g.LastSearch(); strategy != "astar" {
		t.Errorf("expected astar, got %s", strategy)
	}
}
