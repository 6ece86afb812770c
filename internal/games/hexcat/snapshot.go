package hexcat

import "github.com/vovakirdan/hexcat/internal/hexgrid"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateVisualizing GameStateType = "visualizing"
	StateWon         GameStateType = "won"
	StateEscaped     GameStateType = "escaped"
	StatePaused      GameStateType = "paused"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Mode          string // "classic" or "mini"
	Moves         int
	Score         int
	Cat           hexgrid.Coord
	Cursor        hexgrid.Coord
	Strategy      string
	Blocked       int
	AutoVisualize bool
	NodesExplored int // Of the search that decided the latest move
	PathLength    int
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.paused || g.tooSmall:
		state = StatePaused
	case g.viz != nil:
		state = StateVisualizing
	case g.won:
		state = StateWon
	case g.escaped:
		state = StateEscaped
	}

	return Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Moves:         g.moves,
		Score:         g.score,
		Cat:           g.cat,
		Cursor:        g.cursor,
		Strategy:      g.paths.Strategy().String(),
		Blocked:       g.grid.BlockedCount(),
		AutoVisualize: g.autoVisualize,
		NodesExplored: g.last.NodesExplored(),
		PathLength:    g.last.PathLength(),
		State:         state,
	}
}
