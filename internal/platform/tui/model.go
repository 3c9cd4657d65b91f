package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// helpStyle renders the key help line under the game.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// maxFrameSeconds caps the measured frame time so a stalled terminal does
// not teleport enemies across the board.
const maxFrameSeconds = 0.25

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	timer      registry.Timer          // Nil when the game has no periodic timer
	stepper    registry.ElapsedStepper // Nil when the game only takes fixed steps
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	timer, _ := game.(registry.Timer)
	stepper, _ := game.(registry.ElapsedStepper)

	return Model{
		game:       game,
		timer:      timer,
		stepper:    stepper,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last line shows key help
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game, its frame ticker and, if it has one, its timer.
// The timer fires once immediately.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.timer != nil {
		m.timer.OnTimer()
		cmds = append(cmds, spawnCmd(m.timer.TimerInterval()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case SpawnMsg:
		return m.handleSpawn()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, keys.Restart):
		m.restart()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The board is re-projected
// on the next frame; the run itself carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks. Games that accept a measured
// frame time are advanced by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var result core.StepResult
	if m.stepper != nil {
		result = m.stepper.StepElapsed(m.inputFrame, m.frameSeconds(now))
	} else {
		result = m.game.Step(m.inputFrame)
	}
	m.lastTick = now
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// frameSeconds returns the seconds elapsed since the previous tick, clamped
// to (0, maxFrameSeconds]. The first tick uses the nominal step.
func (m Model) frameSeconds(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return m.config.TickSeconds()
	}
	dt := now.Sub(m.lastTick).Seconds()
	if dt <= 0 {
		return m.config.TickSeconds()
	}
	return min(dt, maxFrameSeconds)
}

// handleSpawn runs the game's timer callback and schedules the next one.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	if m.timer == nil {
		return m, nil
	}
	m.timer.OnTimer()
	return m, spawnCmd(m.timer.TimerInterval())
}

// restart records the current run and starts a new one with a fresh seed.
func (m *Model) restart() {
	m.recordRun()

	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	if m.timer != nil {
		m.timer.OnTimer()
	}
	m.gameState = m.game.State()
	m.runSaved = false
	m.inputFrame.Clear()

	m.logger.Debug("run restarted", "game", m.game.ID())
}

// recordRun saves the current run to the scoreboard, once. Runs that never
// ticked are not recorded.
func (m *Model) recordRun() {
	if m.runSaved || m.store == nil {
		return
	}
	st := m.game.State()
	if st.Ticks == 0 {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Score:  st.Score,
		Wins:   st.Wins,
		Losses: st.Losses,
		Ticks:  st.Ticks,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("run not recorded", "err", err)
		return
	}
	m.runSaved = true
	m.logger.Info("run recorded", "game", run.GameID, "score", run.Score, "crossings", run.Wins, "collisions", run.Losses)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program for game and returns the final state of
// the run.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
