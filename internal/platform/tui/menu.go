package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuControls = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"

// MenuItem is one revision in the picker, with its best score this session.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
}

// menuOutcome records why the menu closed.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPicked
	menuScores
	menuQuit
)

// MenuModel is the Bubble Tea model for the revision picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	outcome   menuOutcome
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig // Updated by resizes while the menu was open
	WantsScoreboard bool
	Quit            bool
}

// NewMenuModel lists the registered revisions. Best scores are read from
// store when it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			item.HighScore, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and closes the menu on a choice.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.outcome = menuPicked
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.outcome = menuScores
			return m, tea.Quit
		case MenuActionQuit, MenuActionBack:
			m.outcome = menuQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.outcome != menuOpen {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  F R O G G E R  "), w))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a revision", w))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-18s best %5d", item.Title, item.HighScore)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %-18s best %5d", item.Title, item.HighScore))
		}
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.items[m.cursor].Description), w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(menuControls), w))
	b.WriteString("\n")
	return b.String()
}

// Result converts the final menu state into a MenuResult. A menu closed
// without a choice counts as quitting.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch m.outcome {
	case menuPicked:
		res.GameID = m.items[m.cursor].GameID
	case menuScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
