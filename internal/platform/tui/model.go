package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexcat/internal/core"
	"github.com/vovakirdan/hexcat/internal/pathfind"
	"github.com/vovakirdan/hexcat/internal/registry"
	"github.com/vovakirdan/hexcat/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// resizer is implemented by games that adapt to a new screen size without
// losing their state.
type resizer interface {
	Resize(width, height int)
}

// strategySetter is implemented by games whose search strategy can be
// chosen before play.
type strategySetter interface {
	SetStrategy(k pathfind.Kind)
}

// searchReporter is implemented by games that expose the search behind
// their latest decision.
type searchReporter interface {
	LastSearch() (strategy string, nodes, pathLen int)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for running a game.
// It is used both standalone and inside an SSH session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig // Full terminal size
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	strategy   *pathfind.Kind // Applied after every reset when set
	standalone bool           // Back ends the program instead of signalling a parent
	quitting   bool
	backToMenu bool
	resultSent bool // Whether the result has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// gameConfig returns the runtime config with the help bar carved out.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	return cfg
}

// WithStrategy returns a copy of the model that starts every game with k.
func (m GameModel) WithStrategy(k pathfind.Kind) GameModel {
	m.strategy = &k
	return m
}

// resetGame restarts the game and applies the chosen strategy.
func (m GameModel) resetGame() {
	m.game.Reset(m.gameConfig())
	if s, ok := m.game.(strategySetter); ok && m.strategy != nil {
		s.SetStrategy(*m.strategy)
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.resetGame()
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only when the game is not running
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
	} else if !m.gameState.GameOver {
		m.resetGame()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.resetGame()
		m.gameState = m.game.State()
		m.resultSent = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSent {
		m.saveResult()
		m.resultSent = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult records the score and the deciding search. Best effort.
func (m *GameModel) saveResult() {
	if m.store == nil {
		return
	}

	var run storage.SearchRun
	reporter, hasSearch := m.game.(searchReporter)
	if hasSearch {
		strategy, nodes, pathLen := reporter.LastSearch()
		run = storage.SearchRun{
			GameID:        m.game.ID(),
			Strategy:      strategy,
			NodesExplored: nodes,
			PathLength:    pathLen,
			Trapped:       pathLen == 0,
		}
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(storage.ScoreEntry{
			GameID:   m.game.ID(),
			Score:    m.gameState.Score,
			Moves:    m.gameState.Moves,
			Strategy: run.Strategy,
		})
	}

	if hasSearch {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveSearchRun(run)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".hexcat", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, strategy *pathfind.Kind) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg)
	model.strategy = strategy
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
