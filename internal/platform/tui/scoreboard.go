package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexcat/internal/registry"
	"github.com/vovakirdan/hexcat/internal/storage"
)

const maxScores = 100

// scoreboardView selects the table shown for the current board.
type scoreboardView int

const (
	viewScores scoreboardView = iota
	viewStrategies
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	frameStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	View     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.View, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.View},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next board")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev board")),
		View:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scores/strategies")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best scores of each board and how the cat's
// strategies performed on it.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	view       scoreboardView
	store      *storage.Store
	scores     table.Model
	strategies table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.scores = newScoreboardTable(scoreColumns(), m.tableHeight())
	m.strategies = newScoreboardTable(strategyColumns(), m.tableHeight())
	m.load()
	return m
}

// tableHeight leaves room for the title, tabs, frame and help.
func (m ScoreboardModel) tableHeight() int {
	return max(m.height-9, 3)
}

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Cat", Width: 7},
		{Title: "Date", Width: 14},
	}
}

func strategyColumns() []table.Column {
	return []table.Column{
		{Title: "Strategy", Width: 9},
		{Title: "Runs", Width: 6},
		{Title: "Trapped", Width: 8},
		{Title: "Avg nodes", Width: 10},
		{Title: "Max nodes", Width: 10},
		{Title: "Avg path", Width: 9},
	}
}

func newScoreboardTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fills both tables for the selected board.
// Storage errors leave the tables empty.
func (m *ScoreboardModel) load() {
	var scoreRows, strategyRows []table.Row

	if m.store != nil && len(m.games) > 0 {
		gameID := m.games[m.gameCursor].ID

		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			scoreRows = make([]table.Row, len(scores))
			for i, s := range scores {
				scoreRows[i] = table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%d", s.Score),
					fmt.Sprintf("%d", s.Moves),
					s.Strategy,
					s.CreatedAt.Format("Jan 02 15:04"),
				}
			}
		}

		if stats, err := m.store.StrategyStats(gameID); err == nil {
			strategyRows = make([]table.Row, len(stats))
			for i, st := range stats {
				strategyRows[i] = table.Row{
					st.Strategy,
					fmt.Sprintf("%d", st.Runs),
					fmt.Sprintf("%d", st.TrappedCount),
					fmt.Sprintf("%.1f", st.AvgNodes),
					fmt.Sprintf("%d", st.MaxNodes),
					fmt.Sprintf("%.1f", st.AvgPathLength),
				}
			}
		}
	}

	m.scores.SetRows(scoreRows)
	m.scores.GotoTop()
	m.strategies.SetRows(strategyRows)
	m.strategies.GotoTop()
}

// shiftGame moves the board selection by delta, wrapping around.
func (m *ScoreboardModel) shiftGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.shiftGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.shiftGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.View):
			if m.view == viewScores {
				m.view = viewStrategies
			} else {
				m.view = viewScores
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scores.SetHeight(m.tableHeight())
		m.strategies.SetHeight(m.tableHeight())
		return m, nil
	}

	// Scrolling goes to the visible table
	if m.view == viewScores {
		m.scores, cmd = m.scores.Update(msg)
	} else {
		m.strategies, cmd = m.strategies.Update(msg)
	}
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "SCOREBOARD"
	if len(m.games) > 0 {
		title = "SCOREBOARD - " + m.games[m.gameCursor].Title
	}
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderGameTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderViewTabs(), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(frameStyle.Render(m.renderTable()), m.width))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderGameTabs lists the boards, or only the selected one when they do not fit.
func (m ScoreboardModel) renderGameTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		line = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

func (m ScoreboardModel) renderViewTabs() string {
	scores, strategies := tabStyle.Render("High scores"), tabStyle.Render("Cat strategies")
	if m.view == viewScores {
		scores = activeTabStyle.Render("High scores")
	} else {
		strategies = activeTabStyle.Render("Cat strategies")
	}
	return scores + " " + strategies
}

// renderTable renders the visible table or an empty message.
func (m ScoreboardModel) renderTable() string {
	if m.view == viewStrategies {
		if len(m.strategies.Rows()) == 0 {
			return emptyStyle.Render("No searches recorded yet.\nFinish a round to see how the cat searched.")
		}
		return m.strategies.View()
	}

	if len(m.scores.Rows()) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nTrap the cat to set a high score!")
	}
	return m.scores.View()
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().PaddingLeft(pad).Render(block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
