package frogger

import (
	"errors"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrInvalidInput is returned when the player is asked to move in a
// direction it does not know.
var ErrInvalidInput = errors.New("frogger: invalid input")

// Direction is a movement token delivered by the keyboard collaborator.
type Direction string

const (
	DirNone  Direction = "" // No input, always a no-op
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// directionFor maps a platform action to a movement direction.
// Non-movement actions map to DirNone.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}
