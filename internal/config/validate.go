package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c FroggerConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	b := c.Board
	if b.Cols <= 0 || b.Rows <= 0 {
		add("board: grid must be at least 1x1, got %dx%d", b.Cols, b.Rows)
	}
	if b.BlockWidth <= 0 || b.BlockHeight <= 0 {
		add("board: block size must be positive, got %gx%g", b.BlockWidth, b.BlockHeight)
	}
	if b.CanvasWidth <= 0 || b.CanvasHeight <= 0 {
		add("board: canvas size must be positive, got %gx%g", b.CanvasWidth, b.CanvasHeight)
	}
	if b.StartX < 0 || b.StartX >= b.Cols || b.StartY < 0 || b.StartY >= b.Rows {
		add("board: start block (%d, %d) is outside the %dx%d grid", b.StartX, b.StartY, b.Cols, b.Rows)
	}
	if b.StartY == 0 {
		add("board: start row must not be the goal row")
	}

	e := c.Enemies
	if e.SpawnRate <= 0 {
		add("enemies: spawn_rate must be positive, got %g", e.SpawnRate)
	}
	if e.Lanes <= 0 {
		add("enemies: lanes must be positive, got %d", e.Lanes)
	} else if e.Lanes > b.Rows-1 {
		// Lane i occupies row 1+i
		add("enemies: %d lanes do not fit below the goal row of a %d-row board", e.Lanes, b.Rows)
	} else if b.StartY > 0 && e.Lanes >= b.StartY {
		// The last lane runs along row Lanes, which must lie above the start row
		add("enemies: %d lanes reach the start row %d, at most %d fit", e.Lanes, b.StartY, b.StartY-1)
	}
	if e.MaxActive < 0 {
		add("enemies: max_active must not be negative, got %d", e.MaxActive)
	}

	switch e.Mode {
	case SpawnRandom:
		if e.MinSpeed <= 0 || e.MaxSpeed <= e.MinSpeed {
			add("enemies: speed range must satisfy 0 < min_speed < max_speed, got [%g, %g)", e.MinSpeed, e.MaxSpeed)
		}
	case SpawnFixed:
		if e.FixedSpeed <= 0 {
			add("enemies: fixed_speed must be positive, got %g", e.FixedSpeed)
		}
		if e.FixedLane < 0 || e.FixedLane >= e.Lanes {
			add("enemies: fixed_lane %d is outside [0, %d)", e.FixedLane, e.Lanes)
		}
	default:
		add("enemies: unknown mode %q (want %q or %q)", e.Mode, SpawnRandom, SpawnFixed)
	}

	if c.Scoring.CrossingPoints < 0 || c.Scoring.CollisionPenalty < 0 {
		add("scoring: points must not be negative")
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		add("difficulty: unknown progression type %q", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
