package frogger

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Stats counts what has happened in a session so far.
type Stats struct {
	Crossings  int // Wins
	Collisions int // Losses
	Spawned    int
	Despawned  int
	Score      int
	Ticks      int
	Active     int // Enemies currently on the board
}

// Session owns one player and the enemy collection and runs the per-tick
// update, collision detection and win/lose resets. A session is not safe for
// concurrent use; Tick, Spawn and HandleInput must be called from one
// goroutine.
type Session struct {
	cfg        config.FroggerConfig
	player     *Player
	enemies    []*Enemy
	pending    []*Enemy // Enemies that reported removal during the current pass
	spawner    *Spawner
	difficulty *config.DifficultyManager
	logger     *log.Logger
	handlers   []EventHandler
	stats      Stats
}

// NewSession creates a session with the player on its start block and no
// enemies. cfg is expected to be valid (see config.FroggerConfig.Validate).
func NewSession(cfg config.FroggerConfig, rng *rand.Rand, opts ...SessionOption) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	diff := config.NewDifficultyManager(cfg.Difficulty)

	s := &Session{
		cfg:        cfg,
		player:     NewPlayer(cfg.Board),
		enemies:    make([]*Enemy, 0, 8),
		spawner:    NewSpawner(cfg, rng, diff),
		difficulty: diff,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick advances the session by dt seconds.
//
// The player is updated first and a crossing is applied right after it.
// Every enemy is then updated; enemies that leave the canvas are collected
// and dropped only once all of them have moved. Finally each remaining enemy
// is tested against the player's box as it stood when the pass began, and
// every hit counts as one loss.
func (s *Session) Tick(dt float64) {
	s.stats.Ticks++

	won := false
	s.player.Update(dt, func() { won = true })
	if won {
		s.win()
	}

	s.pending = s.pending[:0]
	for _, e := range s.enemies {
		e.Update(dt, s.markRemoved)
	}
	s.compact()

	playerBox := s.player.Box()
	hits := 0
	for _, e := range s.enemies {
		if e.Box().CollidesWith(playerBox) {
			hits++
			s.lose(e)
		}
	}
	if hits > 0 && s.cfg.Rules.ClearOnLose {
		s.clear()
	}
}

// markRemoved is the removal callback handed to enemies during a pass.
func (s *Session) markRemoved(e *Enemy) {
	s.pending = append(s.pending, e)
}

// compact drops every enemy marked during the last pass.
func (s *Session) compact() {
	if len(s.pending) == 0 {
		return
	}

	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if s.isPending(e) {
			s.stats.Despawned++
			s.logger.Debug("enemy despawned", "lane", e.Lane(), "speed", e.Speed(), "tick", s.stats.Ticks)
			s.emit(Event{Kind: EventDespawned, Lane: e.Lane(), Speed: e.Speed()})
			continue
		}
		kept = append(kept, e)
	}
	// Release references held past the new length
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
	s.pending = s.pending[:0]
}

func (s *Session) isPending(e *Enemy) bool {
	for _, p := range s.pending {
		if p == e {
			return true
		}
	}
	return false
}

// win resets the player after a crossing and, when configured, clears the
// board.
func (s *Session) win() {
	s.stats.Crossings++
	s.stats.Score += s.cfg.Scoring.CrossingPoints
	s.player.Reset()

	s.logger.Info("crossing", "crossings", s.stats.Crossings, "score", s.stats.Score)
	s.emit(Event{Kind: EventWon})

	if s.cfg.Rules.ClearOnWin {
		s.clear()
	}
}

// lose resets the player after being hit by e.
func (s *Session) lose(e *Enemy) {
	s.stats.Collisions++
	s.stats.Score -= s.cfg.Scoring.CollisionPenalty
	if s.stats.Score < 0 {
		s.stats.Score = 0
	}
	s.player.Reset()

	s.logger.Info("collision", "lane", e.Lane(), "speed", e.Speed(), "collisions", s.stats.Collisions)
	s.emit(Event{Kind: EventLost, Lane: e.Lane(), Speed: e.Speed()})
}

// clear removes every enemy from the board.
func (s *Session) clear() {
	n := len(s.enemies)
	if n == 0 {
		return
	}
	for i := range s.enemies {
		s.enemies[i] = nil
	}
	s.enemies = s.enemies[:0]

	s.logger.Debug("board cleared", "enemies", n)
	s.emit(Event{Kind: EventCleared, Count: n})
}

// Spawn adds one enemy, unless max_active enemies are already on the board.
// It is the spawn timer callback and returns the new enemy, or nil.
func (s *Session) Spawn() *Enemy {
	if !s.spawner.CanSpawn(len(s.enemies)) {
		return nil
	}

	e := s.spawner.Next(s.stats.Score, s.stats.Ticks)
	s.enemies = append(s.enemies, e)
	s.stats.Spawned++

	s.logger.Debug("enemy spawned", "lane", e.Lane(), "speed", e.Speed(), "active", len(s.enemies))
	s.emit(Event{Kind: EventSpawned, Lane: e.Lane(), Speed: e.Speed()})
	return e
}

// SpawnInterval returns the current period of the spawn timer.
func (s *Session) SpawnInterval() time.Duration {
	return s.spawner.Interval(s.stats.Score, s.stats.Ticks)
}

// HandleInput forwards a movement to the player.
func (s *Session) HandleInput(d Direction) error {
	return s.player.HandleInput(d)
}

// Player returns the session's player.
func (s *Session) Player() *Player {
	return s.player
}

// Enemies returns a snapshot of the enemies currently on the board.
func (s *Session) Enemies() []*Enemy {
	out := make([]*Enemy, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	st := s.stats
	st.Active = len(s.enemies)
	return st
}

// Level returns the current difficulty level in [0, 1].
func (s *Session) Level() float64 {
	return s.difficulty.Level(s.stats.Score, s.stats.Ticks)
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.FroggerConfig {
	return s.cfg
}

func (s *Session) emit(ev Event) {
	if len(s.handlers) == 0 {
		return
	}
	ev.Tick = s.stats.Ticks
	ev.Score = s.stats.Score
	for _, h := range s.handlers {
		h(ev)
	}
}
