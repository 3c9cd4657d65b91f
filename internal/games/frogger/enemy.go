package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Enemy is a sprite crossing one lane from left to right in pixel space.
type Enemy struct {
	lane  int
	row   int
	speed float64 // Pixels per second
	x     float64 // Left edge in pixels
	board config.BoardConfig
}

// NewEnemy creates an enemy fully off-screen to the left of the given lane.
// Lane i runs along grid row 1+i.
func NewEnemy(lane int, speed float64, b config.BoardConfig) *Enemy {
	return &Enemy{
		lane:  lane,
		row:   1 + lane,
		speed: speed,
		x:     -b.BlockWidth,
		board: b,
	}
}

// Update advances the enemy by dt seconds. Once the enemy has left the
// canvas on the right it reports itself through remove; the caller owns the
// collection and decides when to drop it.
func (e *Enemy) Update(dt float64, remove func(*Enemy)) {
	e.x += e.speed * dt
	if e.x > e.board.CanvasWidth && remove != nil {
		remove(e)
	}
}

// Box returns the enemy's collision area for its current position.
func (e *Enemy) Box() core.Box {
	bw, bh := e.board.BlockWidth, e.board.BlockHeight
	top := float64(e.row) * bh
	return core.NewBox(e.x, e.x+bw, top, top+bh-1)
}

// X returns the left edge in pixels.
func (e *Enemy) X() float64 { return e.x }

// Row returns the grid row the enemy travels along.
func (e *Enemy) Row() int { return e.row }

// Lane returns the lane index.
func (e *Enemy) Lane() int { return e.lane }

// Speed returns the speed in pixels per second.
func (e *Enemy) Speed() float64 { return e.speed }
