package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Underline(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// scoreboardHelp adapts the shared key map to the scoreboard's help line.
type scoreboardHelp struct{ keys KeyMap }

func (h scoreboardHelp) ShortHelp() []key.Binding {
	left := key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "revision"))
	return []key.Binding{h.keys.Up, h.keys.Down, left, h.keys.Back, h.keys.Quit}
}

func (h scoreboardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// ScoreboardModel lists the runs recorded in this session, one revision at
// a time.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	cursor int // Selected revision
	runs   []storage.Run
	stats  storage.GameStats
	table  table.Model
	keys   *KeyMapper
	help   help.Model
	width  int
	height int
	back   bool
	quit   bool
}

// NewScoreboardModel creates a scoreboard reading from store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keys:   NewKeyMapper(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunsTable(height)
	if len(m.games) > 0 {
		m.loadRuns(m.games[0].ID)
	}
	return m
}

func newRunsTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Crossed", Width: 8},
			{Title: "Hit", Width: 6},
			{Title: "Time", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// loadRuns fetches the best runs and totals for gameID.
func (m *ScoreboardModel) loadRuns(gameID string) {
	m.runs = nil
	m.stats = storage.GameStats{GameID: gameID}
	if m.store != nil {
		if runs, err := m.store.TopRuns(gameID, scoreboardLimit); err == nil {
			m.runs = runs
		}
		if st, err := m.store.Stats(gameID); err == nil {
			m.stats = st
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Wins),
			fmt.Sprint(r.Losses),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectRevision moves the revision cursor by delta, wrapping around.
func (m *ScoreboardModel) selectRevision(delta int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.loadRuns(m.games[m.cursor].ID)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := m.keys.Keys()
		switch {
		case key.Matches(msg, keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Scoreboard):
			m.selectRevision(1)
			return m, nil
		case key.Matches(msg, keys.Left):
			m.selectRevision(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-10, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("SESSION SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		style := boardTabStyle
		if i == m.cursor {
			style = boardActiveTab
		}
		tabs[i] = style.Render(g.Title)
	}
	if len(tabs) > 0 {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("Runs: %d  Best: %d  Crossings: %d  Collisions: %d",
		m.stats.Runs, m.stats.HighScore, m.stats.Wins, m.stats.Losses)
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	b.WriteString(boardFrameStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(scoreboardHelp{keys: m.keys.Keys()})))

	return b.String()
}

// renderTableContent renders the runs table, or a note when there are none.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		return boardEmptyStyle.Render("No runs recorded yet.\nScores last until the program exits.")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// RunScoreboard shows the session scoreboard. It returns true when the user
// goes back to the menu and false when quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
