package frogger

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Spawner decides when the next enemy appears and what it looks like.
type Spawner struct {
	cfg        config.EnemiesConfig
	board      config.BoardConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner drawing lanes and speeds from rng.
func NewSpawner(cfg config.FroggerConfig, rng *rand.Rand, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		cfg:        cfg.Enemies,
		board:      cfg.Board,
		rng:        rng,
		difficulty: diff,
	}
}

// Interval returns the spawn period for the current score and tick count:
// one second divided by the (difficulty-scaled) spawn rate.
func (s *Spawner) Interval(score, ticks int) time.Duration {
	rate := s.difficulty.SpawnRate(s.cfg.SpawnRate, score, ticks)
	if rate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / rate)
}

// Next creates a new enemy. Random mode picks a uniform lane in [0, lanes)
// and a uniform speed in [min_speed, max_speed); fixed mode always uses the
// configured lane and speed. The speed is then scaled by difficulty.
func (s *Spawner) Next(score, ticks int) *Enemy {
	var lane int
	var speed float64

	switch s.cfg.Mode {
	case config.SpawnFixed:
		lane = s.cfg.FixedLane
		speed = s.cfg.FixedSpeed
	default:
		lane = s.rng.Intn(s.cfg.Lanes)
		speed = s.cfg.MinSpeed + s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed)
	}

	speed = s.difficulty.Speed(speed, score, ticks)
	return NewEnemy(lane, speed, s.board)
}

// CanSpawn reports whether another enemy fits under max_active.
func (s *Spawner) CanSpawn(active int) bool {
	return s.cfg.MaxActive <= 0 || active < s.cfg.MaxActive
}
