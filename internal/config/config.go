// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// FroggerConfig contains all configuration for the lane-crossing game.
// Values are loaded once at startup and never mutated afterwards.
type FroggerConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Rules      RulesConfig      `yaml:"rules"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the play field in pixel space.
// Row 0 is the goal row; enemy lanes start at row 1.
type BoardConfig struct {
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	Cols         int     `yaml:"cols"`
	Rows         int     `yaml:"rows"`
	BlockWidth   float64 `yaml:"block_width"`
	BlockHeight  float64 `yaml:"block_height"`
	StartX       int     `yaml:"start_x"` // Player start column
	StartY       int     `yaml:"start_y"` // Player start row
}

// Spawn modes.
const (
	SpawnRandom = "random" // Uniform random lane and speed
	SpawnFixed  = "fixed"  // Always FixedLane at FixedSpeed
)

// EnemiesConfig defines enemy spawning.
type EnemiesConfig struct {
	SpawnRate  float64 `yaml:"spawn_rate"` // Enemies per second
	Lanes      int     `yaml:"lanes"`
	MinSpeed   float64 `yaml:"min_speed"`  // Pixels per second, inclusive
	MaxSpeed   float64 `yaml:"max_speed"`  // Pixels per second, exclusive
	MaxActive  int     `yaml:"max_active"` // 0 = unlimited
	Mode       string  `yaml:"mode"`
	FixedLane  int     `yaml:"fixed_lane"`
	FixedSpeed float64 `yaml:"fixed_speed"`
}

// RulesConfig defines what a win or a loss resets.
type RulesConfig struct {
	ClearOnWin  bool `yaml:"clear_on_win"`
	ClearOnLose bool `yaml:"clear_on_lose"`
}

// ScoringConfig defines how crossings and collisions affect the score.
type ScoringConfig struct {
	CrossingPoints   int `yaml:"crossing_points"`
	CollisionPenalty int `yaml:"collision_penalty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added to enemy speed factor at max difficulty
	SpawnRateMultiplier float64 `yaml:"spawn_rate_multiplier"` // Added to spawn rate factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// Unknown or empty strings yield "" (use the config's own settings).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
