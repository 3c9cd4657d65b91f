package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default configuration: a 5x6 grid of
// 101x83 pixel blocks on a 505x606 canvas, three enemy lanes, one random
// enemy every two seconds, enemies cleared when the player crosses.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Board: BoardConfig{
			CanvasWidth:  505,
			CanvasHeight: 606,
			Cols:         5,
			Rows:         6,
			BlockWidth:   101,
			BlockHeight:  83,
			StartX:       2,
			StartY:       4,
		},
		Enemies: EnemiesConfig{
			SpawnRate:  0.5,
			Lanes:      3,
			MinSpeed:   50,
			MaxSpeed:   300,
			MaxActive:  0,
			Mode:       SpawnRandom,
			FixedLane:  0,
			FixedSpeed: 150,
		},
		Rules: RulesConfig{
			ClearOnWin:  true,
			ClearOnLose: false,
		},
		Scoring: ScoringConfig{
			CrossingPoints:   100,
			CollisionPenalty: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000, // 20 crossings
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     1.0,
				SpawnRateMultiplier: 1.0,
			},
		},
	}
}

// ApplyClassicRevision rewrites cfg into the early revision of the game:
// a single enemy patrolling one lane at a constant speed, with nothing
// cleared when the player crosses. The patrolled lane is the middle one of
// the default board, or the last lane when there are fewer.
func ApplyClassicRevision(cfg *FroggerConfig) {
	cfg.Enemies.Mode = SpawnFixed
	cfg.Enemies.FixedLane = max(min(1, cfg.Enemies.Lanes-1), 0)
	cfg.Enemies.FixedSpeed = 150
	cfg.Enemies.MaxActive = 1
	cfg.Rules.ClearOnWin = false
	cfg.Rules.ClearOnLose = false
}

// ClassicFroggerConfig returns the default configuration with the classic
// revision applied.
func ClassicFroggerConfig() FroggerConfig {
	cfg := DefaultFroggerConfig()
	ApplyClassicRevision(&cfg)
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "frogger", "frogger_classic":
		return defaultFroggerYAML
	default:
		return nil
	}
}
