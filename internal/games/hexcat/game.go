// Package hexcat implements the "trap the cat" puzzle on an offset hex board.
// The player blocks one tile per turn; the cat answers by taking one step
// along the escape route found by the selected search strategy.
package hexcat

import (
	"math/rand"

	"github.com/vovakirdan/hexcat/internal/config"
	"github.com/vovakirdan/hexcat/internal/core"
	"github.com/vovakirdan/hexcat/internal/hexgrid"
	"github.com/vovakirdan/hexcat/internal/pathfind"
	"github.com/vovakirdan/hexcat/internal/registry"
)

// Mode represents the board variant.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeMini    Mode = "mini"
)

// miniSize is the side length of the mini board.
const miniSize = 7

// Game implements the Hex Cat puzzle.
type Game struct {
	mode  Mode
	cfg   config.HexcatConfig
	fixed bool // cfg was passed explicitly and ignores SetConfig
	rng   *rand.Rand
	tick  uint64

	grid   *hexgrid.Grid
	paths  *pathfind.PathState
	cat    hexgrid.Coord
	cursor hexgrid.Coord

	moves int
	score int
	last  pathfind.Result // Search that decided the latest cat move

	viz           *visualization
	highlight     []highlight // Per tile, indexed like the grid
	autoVisualize bool

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	won      bool
	escaped  bool
	paused   bool
	tooSmall bool
}

// Package-level configuration shared by registry-created games.
var activeConfig = config.DefaultHexcatConfig()

// SetConfig sets the configuration used by games created through the registry.
// Takes effect on the next Reset.
func SetConfig(cfg config.HexcatConfig) {
	activeConfig = cfg
}

// New creates a classic game using the package configuration.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMini creates a game on a 7x7 board.
func NewMini() *Game {
	return &Game{mode: ModeMini}
}

// NewWithConfig creates a classic game with a fixed configuration.
func NewWithConfig(cfg config.HexcatConfig) *Game {
	return &Game{mode: ModeClassic, cfg: cfg, fixed: true}
}

func init() {
	registry.Register("hexcat", func() registry.Game {
		return New()
	})
	registry.Register("hexcat_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMini {
		return "hexcat_mini"
	}
	return "hexcat"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMini {
		return "Hex Cat (Mini)"
	}
	return "Hex Cat"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeMini {
		return "Trap the cat on a 7x7 hex board"
	}
	return "Block tiles to trap the cat before it reaches the edge"
}

// ModeConfig adapts cfg to a board variant.
// The mini board shrinks to 7x7 and scales the obstacle count by area.
func ModeConfig(cfg config.HexcatConfig, mode Mode) config.HexcatConfig {
	if mode != ModeMini {
		return cfg
	}
	area := cfg.Board.Rows * cfg.Board.Cols
	cfg.Board.Rows = miniSize
	cfg.Board.Cols = miniSize
	if area > 0 {
		cfg.Obstacles.Count = cfg.Obstacles.Count * miniSize * miniSize / area
	}
	cfg.Obstacles.SafeRadius = min(cfg.Obstacles.SafeRadius, 1)
	return cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixed {
		g.cfg = ModeConfig(activeConfig, g.mode)
	}
	if g.cfg.Validate() != nil {
		g.cfg = ModeConfig(config.DefaultHexcatConfig(), g.mode)
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.moves = 0
	g.score = 0
	g.won = false
	g.escaped = false
	g.paused = false
	g.viz = nil
	g.autoVisualize = g.cfg.Visualize.Auto

	g.grid, g.cat = NewBoard(g.cfg, g.rng)
	g.cursor = g.cat
	g.highlight = make([]highlight, g.grid.Size())

	kind, _ := g.cfg.Strategy()
	policy, _ := g.cfg.Policy()
	g.paths = pathfind.NewPathState(g.grid,
		pathfind.WithStrategy(kind),
		pathfind.WithInvalidation(policy),
	)
	g.paths.UpdatePath(g.cat)
	g.last, _ = g.paths.Result(g.cat)

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board plus half-cell indent, HUD (3 lines) and a hint line
	minW := max(g.grid.Cols()*cellWidth+2, 40)
	minH := g.grid.Rows() + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new screen size without restarting the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.grid != nil {
		g.checkScreenSize()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A running visualization swallows all other input
	if g.viz != nil {
		g.advanceVisualization()
		return core.StepResult{State: g.State()}
	}

	if g.over() {
		if in.Has(core.ActionVisualize) {
			g.startVisualization()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.BlockTile(g.cursor)
	case in.Has(core.ActionCycle):
		g.SetStrategy(g.paths.Strategy().Next())
	case in.Has(core.ActionToggle):
		g.autoVisualize = !g.autoVisualize
		if g.autoVisualize {
			g.startVisualization()
		}
	case in.Has(core.ActionVisualize):
		g.startVisualization()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor shifts the cursor, clamped to the board.
func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, g.grid.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, g.grid.Cols()-1)
}

// BlockTile plays one turn: c becomes an obstacle and the cat answers.
// Returns false if c cannot be blocked (cat, already blocked, out of bounds)
// or the game is over.
func (g *Game) BlockTile(c hexgrid.Coord) bool {
	if g.over() || !g.grid.InBounds(c) || c == g.cat || g.grid.IsBlocked(c) {
		return false
	}

	g.grid.SetBlocked(c, true)
	g.moves++
	g.moveCat()
	g.paths.Refresh()

	if g.autoVisualize {
		g.startVisualization()
	}
	return true
}

// moveCat advances the cat one tile along its escape route.
func (g *Game) moveCat() {
	g.paths.UpdatePath(g.cat)
	g.last, _ = g.paths.Result(g.cat)

	next, ok := g.last.NextStep()
	if !ok {
		if g.last.Found() {
			// Already standing on the border
			g.escaped = true
			return
		}
		g.won = true
		g.score = g.winScore()
		return
	}

	g.grid.SetOccupied(g.cat, false)
	g.grid.SetOccupied(next, true)
	g.cat = next

	if g.grid.IsBorder(next) {
		g.escaped = true
	}
}

// winScore rewards trapping the cat in few moves.
func (g *Game) winScore() int {
	return max(1, g.grid.Size()-g.moves*g.cfg.Scoring.MovePenalty)
}

// SetStrategy switches the cat's search strategy.
// Cached routes of the previous strategy are dropped.
func (g *Game) SetStrategy(k pathfind.Kind) {
	if k == g.paths.Strategy() {
		return
	}
	g.paths.SetStrategy(k)
	g.paths.UpdatePath(g.cat)
	g.last, _ = g.paths.Result(g.cat)
}

// Strategy returns the active search strategy.
func (g *Game) Strategy() pathfind.Kind {
	return g.paths.Strategy()
}

// Cat returns the cat's tile.
func (g *Game) Cat() hexgrid.Coord {
	return g.cat
}

// Grid returns the board. Callers must not mutate it.
func (g *Game) Grid() *hexgrid.Grid {
	return g.grid
}

// CacheStats returns path cache counters.
func (g *Game) CacheStats() pathfind.Stats {
	return g.paths.Stats()
}

// LastResult returns the search that decided the latest cat move.
func (g *Game) LastResult() pathfind.Result {
	return g.last
}

// LastSearch summarizes the search behind the latest cat decision.
// A zero path length means the cat found no way out.
func (g *Game) LastSearch() (strategy string, nodes, pathLen int) {
	return g.paths.Strategy().String(), g.last.NodesExplored(), g.last.PathLength()
}

// over reports whether the game has ended.
func (g *Game) over() bool {
	return g.won || g.escaped
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.over(),
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}
