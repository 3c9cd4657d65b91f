package frogger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// useDefaultConfig points the package at a copy of the embedded config so
// tests do not pick up files from the user's home directory.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	require.NoError(t, os.WriteFile(path, config.GetDefaultYAML(IDFrogger), 0o644))

	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	useDefaultConfig(t)
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func TestGamesAreRegistered(t *testing.T) {
	for _, id := range []string{IDFrogger, IDClassic} {
		require.True(t, registry.Exists(id), id)

		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())

		_, ok := g.(registry.Timer)
		assert.True(t, ok, "%s must drive a spawn timer", id)
	}
}

func TestGameResetState(t *testing.T) {
	g := newTestGame(t, New())

	assert.Equal(t, core.GameState{}, g.State())
	require.NotNil(t, g.Session())
	assert.Equal(t, config.SpawnRandom, g.Session().Config().Enemies.Mode)
	assert.Equal(t, 2*time.Second, g.TimerInterval())
}

func TestGameClassicRevision(t *testing.T) {
	g := newTestGame(t, NewClassic())

	cfg := g.Session().Config()
	assert.Equal(t, config.SpawnFixed, cfg.Enemies.Mode)
	assert.False(t, cfg.Rules.ClearOnWin)
	assert.Equal(t, "Frogger Classic", g.Title())
}

func TestGameClassicSingleLane(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one-lane.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  lanes: 1\n"), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := NewClassic()
	g.Reset(core.DefaultConfig())
	require.NoError(t, g.Session().Config().Validate())

	g.OnTimer()
	require.Len(t, g.Session().Enemies(), 1)
	e := g.Session().Enemies()[0]
	assert.Equal(t, 0, e.Lane())
	assert.Equal(t, 1, e.Row())
}

func TestGameStepMovesPlayer(t *testing.T) {
	g := newTestGame(t, New())

	g.Step(core.NewInputFrame(core.ActionUp, core.ActionLeft))

	x, y := g.Session().Player().Block()
	assert.Equal(t, 1, x)
	assert.Equal(t, 3, y)
	assert.Equal(t, 1, g.State().Ticks)
}

func TestGameStepUsesFixedTick(t *testing.T) {
	g := newTestGame(t, New())
	g.OnTimer()
	require.Len(t, g.Session().Enemies(), 1)
	e := g.Session().Enemies()[0]

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	// 60 ticks at 60 ticks per second is one second of travel
	assert.InDelta(t, -101+e.Speed(), e.X(), 1e-6)
}

func TestGameStepElapsedUsesGivenDelta(t *testing.T) {
	g := newTestGame(t, New())
	g.OnTimer()
	require.Len(t, g.Session().Enemies(), 1)
	e := g.Session().Enemies()[0]

	g.StepElapsed(core.NewInputFrame(), 0.5)

	assert.InDelta(t, -101+0.5*e.Speed(), e.X(), 1e-6)
	assert.Equal(t, 1, g.State().Ticks)
}

func TestGameCrossingScores(t *testing.T) {
	g := newTestGame(t, New())

	g.Step(core.NewInputFrame(core.ActionUp, core.ActionUp, core.ActionUp, core.ActionUp))

	st := g.State()
	assert.Equal(t, 1, st.Wins)
	assert.Equal(t, 100, st.Score)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, New())

	st := g.Step(core.NewInputFrame(core.ActionPause)).State
	assert.True(t, st.Paused)
	assert.Equal(t, 0, st.Ticks)

	// Input and spawns are ignored while paused
	g.Step(core.NewInputFrame(core.ActionUp))
	g.OnTimer()
	_, y := g.Session().Player().Block()
	assert.Equal(t, 4, y)
	assert.Empty(t, g.Session().Enemies())

	st = g.Step(core.NewInputFrame(core.ActionPause)).State
	assert.False(t, st.Paused)
	assert.Equal(t, 1, st.Ticks)

	g.OnTimer()
	assert.Len(t, g.Session().Enemies(), 1)
}

func TestGameDifficultyPreset(t *testing.T) {
	useDefaultConfig(t)
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(core.DefaultConfig())

	cfg := g.Session().Config()
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.InDelta(t, 0.75, cfg.Enemies.SpawnRate, 1e-9)
}

func TestGameBadConfigFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  lanes: 0\n"), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())

	assert.Equal(t, config.DefaultFroggerConfig(), g.Session().Config())
}

func TestGameTimerBeforeReset(t *testing.T) {
	g := New()
	assert.Equal(t, time.Second, g.TimerInterval())
	g.OnTimer() // must not panic
	assert.Equal(t, core.GameState{}, g.State())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, New())
	g.OnTimer()
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, string(PlayerChar))
	assert.Contains(t, out, string(WaterChar))
	assert.Contains(t, out, string(RoadChar))
	assert.Contains(t, out, string(GrassChar))
	assert.Contains(t, out, string(EnemyChar))

	// The goal row is drawn in water
	assert.Equal(t, core.ColorBlue, screen.GetCell(40, 4).Color)
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(core.NewInputFrame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New())

	screen := core.NewScreen(12, 5)
	g.Render(screen)
	assert.NotContains(t, screen.String(), string(PlayerChar))
}

func TestGameRenderEnemyClippedAtEdges(t *testing.T) {
	g := newTestGame(t, New())
	g.OnTimer()

	// Freshly spawned enemies sit entirely left of the board
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.NotContains(t, screen.String(), string(EnemyChar))
}
