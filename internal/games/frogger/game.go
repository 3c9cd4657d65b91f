// Package frogger implements a Frogger-style lane-crossing game.
// The player hops across a grid of lanes while enemies drive through them;
// reaching the top row is a crossing, touching an enemy sends the player
// back to the start.
package frogger

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Revision IDs.
const (
	IDFrogger = "frogger"
	IDClassic = "frogger_classic"
)

// Package-level settings, applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Session to the platform's Game and Timer interfaces.
type Game struct {
	id      string
	title   string
	classic bool
	cfg     config.FroggerConfig
	session *Session
	runtime core.RuntimeConfig
	paused  bool
	opts    []SessionOption
	logger  *log.Logger
}

// New creates the advanced revision: random lanes and speeds, board cleared
// on every crossing.
func New(opts ...SessionOption) *Game {
	return &Game{id: IDFrogger, title: "Frogger", opts: opts}
}

// NewClassic creates the early revision: one enemy patrolling a single lane.
func NewClassic(opts ...SessionOption) *Game {
	return &Game{id: IDClassic, title: "Frogger Classic", classic: true, opts: opts}
}

func init() {
	registry.Register(IDFrogger, "Random traffic, board cleared on every crossing", func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, "A single enemy on a fixed lane", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.logger = logger.With("game", g.id)
	g.cfg = g.loadConfig()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := append([]SessionOption{WithLogger(g.logger)}, g.opts...)
	g.session = NewSession(g.cfg, rand.New(rand.NewSource(seed)), opts...)

	g.logger.Debug("session started", "seed", seed, "mode", g.cfg.Enemies.Mode, "spawn_rate", g.cfg.Enemies.SpawnRate)
}

// loadConfig resolves the configuration for this revision. Load errors are
// logged and the defaults are used instead. The revision and preset overlays
// are validated again, since they can clash with a file that was valid alone.
func (g *Game) loadConfig() config.FroggerConfig {
	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
	}
	g.applyOverlays(&cfg)
	if err := cfg.Validate(); err != nil {
		g.logger.Warn("config invalid for this revision, using defaults", "err", err)
		cfg = config.DefaultFroggerConfig()
		g.applyOverlays(&cfg)
	}
	return cfg
}

func (g *Game) applyOverlays(cfg *config.FroggerConfig) {
	if g.classic {
		config.ApplyClassicRevision(cfg)
	}
	config.ApplyFroggerPreset(cfg, config.ParsePreset(difficultyPreset))
}

// Step applies the frame's input and advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepElapsed(in, g.runtime.TickSeconds())
}

// StepElapsed is Step with the frame's measured duration in seconds.
func (g *Game) StepElapsed(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		d := directionFor(a)
		if d == DirNone {
			continue
		}
		if err := g.session.HandleInput(d); err != nil {
			g.logger.Warn("input dropped", "err", err)
		}
	}

	g.session.Tick(dt)
	return core.StepResult{State: g.State()}
}

// TimerInterval returns the current spawn period.
func (g *Game) TimerInterval() time.Duration {
	if g.session == nil {
		return time.Second
	}
	return g.session.SpawnInterval()
}

// OnTimer spawns an enemy. Nothing spawns while the game is paused.
func (g *Game) OnTimer() {
	if g.session == nil || g.paused {
		return
	}
	g.session.Spawn()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Paused: g.paused}
	}
	st := g.session.Stats()
	return core.GameState{
		Score:  st.Score,
		Wins:   st.Crossings,
		Losses: st.Collisions,
		Ticks:  st.Ticks,
		Paused: g.paused,
	}
}

// Session returns the running session, or nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Compile-time interface checks.
var (
	_ registry.Game  = (*Game)(nil)
	_ registry.Timer = (*Game)(nil)
)
