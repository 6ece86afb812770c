package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexcat/internal/core"
	"github.com/vovakirdan/hexcat/internal/pathfind"
	"github.com/vovakirdan/hexcat/internal/registry"
	"github.com/vovakirdan/hexcat/internal/storage"
)

// MenuItem is one board variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // High score, 0 when none is stored
}

// menuOutcome records how the menu was left.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPlay
	menuScores
	menuQuit
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuStrategyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

const menuControls = "Up/Down: Board  |  Left/Right: Strategy  |  Enter: Play  |  Tab: Scores  |  Q: Quit"

// MenuModel lets the player pick a board and the cat's search strategy.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	strategy  pathfind.Kind
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	outcome   menuOutcome
}

// NewMenuModel lists the registered boards with their high scores from
// store, which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, strategy pathfind.Kind) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			items[i].Best, _ = store.HighScore(g.ID)
		}
	}

	return MenuModel{
		items:     items,
		strategy:  strategy,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.outcome = menuQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))

	case MenuActionLeft:
		// Two steps forward is one step back in a cycle of three
		m.strategy = m.strategy.Next().Next()

	case MenuActionRight:
		m.strategy = m.strategy.Next()

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.outcome = menuPlay
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.outcome = menuScores
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}
	width := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render("  H E X   C A T  "),
		"",
		"Trap the cat before it reaches the edge",
		"",
	}

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		if item.Best > 0 {
			line += menuDimStyle.Render(fmt.Sprintf("  best %d", item.Best))
		}
		lines = append(lines, line)
	}

	if item, ok := m.current(); ok && item.Description != "" {
		lines = append(lines, "", menuDimStyle.Render(item.Description))
	}

	lines = append(lines,
		"",
		"Cat strategy: < "+menuStrategyStyle.Render(m.strategy.Title())+" >",
		"",
		menuDimStyle.Render(menuControls),
	)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MenuModel) current() (MenuItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// Selected returns the chosen board, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	if m.outcome != menuPlay {
		return nil
	}
	item, ok := m.current()
	if !ok {
		return nil
	}
	return &item
}

// Strategy returns the strategy shown in the menu.
func (m MenuModel) Strategy() pathfind.Kind {
	return m.strategy
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.outcome == menuQuit
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.outcome == menuScores
}

// Config returns the runtime config, updated by window resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to center it within width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the player chose in the menu.
type MenuResult struct {
	GameID          string
	Strategy        pathfind.Kind
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes the menu's final state.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config, Strategy: m.strategy}
	switch m.outcome {
	case menuScores:
		r.WantsScoreboard = true
	case menuPlay:
		if item := m.Selected(); item != nil {
			r.GameID = item.GameID
			break
		}
		r.Quit = true
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the menu in its own program until the player leaves it.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, strategy pathfind.Kind) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, strategy), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Strategy: strategy}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Strategy: strategy, Quit: true}, nil
	}
	return m.Result(), nil
}
