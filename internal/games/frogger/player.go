package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Player is the grid-aligned sprite controlled by the keyboard.
type Player struct {
	x, y  int // Block coordinates
	board config.BoardConfig
}

// NewPlayer creates a player at the board's start block.
func NewPlayer(b config.BoardConfig) *Player {
	p := &Player{board: b}
	p.Reset()
	return p
}

// Reset moves the player back to the start block.
func (p *Player) Reset() {
	p.x = p.board.StartX
	p.y = p.board.StartY
}

// Update reports a crossing through won when the player stands on the goal
// row. The player never moves on its own, so dt is unused.
func (p *Player) Update(dt float64, won func()) {
	if p.y == 0 && won != nil {
		won()
	}
}

// HandleInput moves the player one block in direction d, stopping at the
// grid edges. DirNone is a no-op; any other unknown direction is an error
// wrapping ErrInvalidInput and leaves the player where it was.
func (p *Player) HandleInput(d Direction) error {
	dx, dy := 0, 0
	switch d {
	case DirNone:
		return nil
	case DirUp:
		dy = -1
	case DirDown:
		dy = 1
	case DirLeft:
		dx = -1
	case DirRight:
		dx = 1
	default:
		return fmt.Errorf("%w: %q", ErrInvalidInput, string(d))
	}

	p.x = core.Clamp(p.x+dx, 0, p.board.Cols-1)
	p.y = core.Clamp(p.y+dy, 0, p.board.Rows-1)
	return nil
}

// Block returns the player's block coordinates.
func (p *Player) Block() (x, y int) {
	return p.x, p.y
}

// Box returns the player's collision area. It is a quarter block narrower
// than the block on each side.
func (p *Player) Box() core.Box {
	bw, bh := p.board.BlockWidth, p.board.BlockHeight
	left := float64(p.x)*bw + bw/4
	right := float64(p.x+1)*bw - bw/4
	top := float64(p.y) * bh
	return core.NewBox(left, right, top, top+bh-1)
}
