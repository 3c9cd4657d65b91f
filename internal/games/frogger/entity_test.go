package frogger

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func testBoard() config.BoardConfig {
	return config.DefaultFroggerConfig().Board
}

func TestEnemyStartsOffScreen(t *testing.T) {
	e := NewEnemy(1, 100, testBoard())

	assert.Equal(t, -101.0, e.X())
	assert.Equal(t, 2, e.Row())
	assert.Equal(t, 1, e.Lane())
	assert.Equal(t, 100.0, e.Speed())
}

func TestEnemyMovesWithElapsedTime(t *testing.T) {
	e := NewEnemy(1, 100, testBoard())
	removed := false
	remove := func(*Enemy) { removed = true }

	e.Update(1.0, remove)
	assert.Equal(t, 2, e.Row())
	e.Update(1.0, remove)

	assert.InDelta(t, -101.0+200.0, e.X(), 1e-9)
	assert.Equal(t, 2, e.Row())
	assert.False(t, removed)
}

func TestEnemyPositionStrictlyIncreases(t *testing.T) {
	e := NewEnemy(0, 50, testBoard())
	prev := e.X()
	for i := 0; i < 100; i++ {
		e.Update(1.0/60.0, nil)
		require.Greater(t, e.X(), prev)
		prev = e.X()
	}
}

func TestEnemySignalsRemovalPastCanvas(t *testing.T) {
	e := NewEnemy(0, 1000, testBoard())
	var got *Enemy
	remove := func(r *Enemy) { got = r }

	e.Update(0.6, remove) // x = 499
	assert.Nil(t, got, "enemy still on the canvas")

	e.Update(0.006, remove) // x = 505, not past the edge yet
	assert.Nil(t, got)

	e.Update(0.01, remove) // x = 515
	assert.Same(t, e, got)
}

func TestEnemyBox(t *testing.T) {
	e := NewEnemy(1, 100, testBoard())
	e.Update(1.0, nil) // x = -1

	box := e.Box()
	assert.InDelta(t, -1.0, box.X.Start(), 1e-9)
	assert.InDelta(t, 100.0, box.X.End(), 1e-9)
	assert.Equal(t, 166.0, box.Y.Start())
	assert.Equal(t, 248.0, box.Y.End())
}

func TestPlayerStartsAtStartBlock(t *testing.T) {
	p := NewPlayer(testBoard())
	x, y := p.Block()
	assert.Equal(t, 2, x)
	assert.Equal(t, 4, y)
}

func TestPlayerBoxIsNarrowerThanBlock(t *testing.T) {
	p := NewPlayer(testBoard())

	box := p.Box()
	assert.InDelta(t, 2*101+101.0/4, box.X.Start(), 1e-9)
	assert.InDelta(t, 3*101-101.0/4, box.X.End(), 1e-9)
	assert.Equal(t, 332.0, box.Y.Start())
	assert.Equal(t, 414.0, box.Y.End())
}

func TestPlayerHandleInput(t *testing.T) {
	tests := []struct {
		name  string
		moves []Direction
		wantX int
		wantY int
	}{
		{"up", []Direction{DirUp}, 2, 3},
		{"down", []Direction{DirDown}, 2, 5},
		{"left", []Direction{DirLeft}, 1, 4},
		{"right", []Direction{DirRight}, 3, 4},
		{"none", []Direction{DirNone}, 2, 4},
		{"clamp top", []Direction{DirUp, DirUp, DirUp, DirUp, DirUp, DirUp}, 2, 0},
		{"clamp bottom", []Direction{DirDown, DirDown, DirDown}, 2, 5},
		{"clamp left", []Direction{DirLeft, DirLeft, DirLeft, DirLeft}, 0, 4},
		{"clamp right", []Direction{DirRight, DirRight, DirRight, DirRight}, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testBoard())
			for _, d := range tt.moves {
				require.NoError(t, p.HandleInput(d))
			}
			x, y := p.Block()
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestPlayerStaysInsideGrid(t *testing.T) {
	b := testBoard()
	p := NewPlayer(b)
	rng := rand.New(rand.NewSource(12345))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight, DirNone}

	for i := 0; i < 2000; i++ {
		require.NoError(t, p.HandleInput(dirs[rng.Intn(len(dirs))]))
		x, y := p.Block()
		require.GreaterOrEqual(t, x, 0)
		require.Less(t, x, b.Cols)
		require.GreaterOrEqual(t, y, 0)
		require.Less(t, y, b.Rows)
	}
}

func TestPlayerRejectsUnknownDirection(t *testing.T) {
	p := NewPlayer(testBoard())
	require.NoError(t, p.HandleInput(DirUp))

	for _, d := range []Direction{"jump", "UP", " ", "upp"} {
		err := p.HandleInput(d)
		require.Error(t, err, "direction %q", d)
		assert.ErrorIs(t, err, ErrInvalidInput)

		x, y := p.Block()
		assert.Equal(t, 2, x, "position must not change")
		assert.Equal(t, 3, y, "position must not change")
	}
}

func TestPlayerUpdateSignalsWinOnGoalRow(t *testing.T) {
	p := NewPlayer(testBoard())
	wins := 0
	won := func() { wins++ }

	for i := 0; i < 3; i++ {
		require.NoError(t, p.HandleInput(DirUp))
		p.Update(0.016, won)
	}
	assert.Equal(t, 0, wins, "row 1 is not the goal")

	require.NoError(t, p.HandleInput(DirUp))
	p.Update(0.016, won)
	assert.Equal(t, 1, wins)

	p.Reset()
	x, y := p.Block()
	assert.Equal(t, 2, x)
	assert.Equal(t, 4, y)
}

func TestDirectionForAction(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Direction
	}{
		{core.ActionUp, DirUp},
		{core.ActionDown, DirDown},
		{core.ActionLeft, DirLeft},
		{core.ActionRight, DirRight},
		{core.ActionPause, DirNone},
		{core.ActionNone, DirNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, directionFor(tt.action), "action %s", tt.action)
	}
}
