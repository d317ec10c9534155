// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// KongConfig contains all tunable constants of the girder-climbing game.
// Positions and speeds are expressed in arcade field units (224x256 field).
type KongConfig struct {
	Field      KongField        `yaml:"field"`
	Avatar     KongAvatar       `yaml:"avatar"`
	Hazards    KongHazards      `yaml:"hazards"`
	Mechanics  KongMechanics    `yaml:"mechanics"`
	Scoring    KongScoring      `yaml:"scoring"`
	Gameplay   KongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// KongField defines the playfield size.
type KongField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// KongAvatar defines avatar dimensions and physics.
type KongAvatar struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`          // Horizontal distance per tick
	ClimbRate     float64 `yaml:"climb_rate"`     // Ladder distance per tick
	JumpImpulse   float64 `yaml:"jump_impulse"`   // Negative = upward
	Gravity       float64 `yaml:"gravity"`        // Added to vy every airborne tick
	SnapTolerance float64 `yaml:"snap_tolerance"` // Landing band below a platform top
	AnimEvery     int     `yaml:"anim_every"`     // Ticks per walk animation frame
}

// KongHazards defines barrel and fireball behavior.
type KongHazards struct {
	Gravity        float64 `yaml:"gravity"`
	BarrelWidth    float64 `yaml:"barrel_width"`
	BarrelHeight   float64 `yaml:"barrel_height"`
	BarrelSpeed    float64 `yaml:"barrel_speed"`
	FireballWidth  float64 `yaml:"fireball_width"`
	FireballHeight float64 `yaml:"fireball_height"`
	FireballSpeed  float64 `yaml:"fireball_speed"`
	FireballBounce float64 `yaml:"fireball_bounce"` // Upward speed after touching a platform
	FireballClimb  float64 `yaml:"fireball_climb"`  // Ladder speed of a climbing fireball
	LadderChance   float64 `yaml:"ladder_chance"`   // Per-tick probability of testing a ladder
	LadderDescent  float64 `yaml:"ladder_descent"`  // Barrel speed while riding a ladder
	ExitMargin     float64 `yaml:"exit_margin"`     // Distance past a side edge before removal
}

// KongMechanics defines level feature parameters.
type KongMechanics struct {
	HammerRadius  float64 `yaml:"hammer_radius"`
	PowerUpTicks  int     `yaml:"power_up_ticks"`
	RivetRadius   float64 `yaml:"rivet_radius"`
	ConveyorDrift float64 `yaml:"conveyor_drift"`
}

// KongScoring defines point values and the bonus countdown.
type KongScoring struct {
	StartBonus     int `yaml:"start_bonus"`
	BonusStep      int `yaml:"bonus_step"`
	BonusEvery     int `yaml:"bonus_every"` // Ticks between bonus decrements
	RivetPoints    int `yaml:"rivet_points"`
	BarrelReward   int `yaml:"barrel_reward"`
	FireballReward int `yaml:"fireball_reward"`
	LevelBonus     int `yaml:"level_bonus"` // Multiplied by the level number when advancing
}

// KongGameplay defines lives and phase durations in ticks.
type KongGameplay struct {
	Lives           int `yaml:"lives"`
	HowHighTicks    int `yaml:"how_high_ticks"`
	LevelIntroTicks int `yaml:"level_intro_ticks"`
	DeathTicks      int `yaml:"death_ticks"`
	CompleteTicks   int `yaml:"complete_ticks"`
	InterludeTicks  int `yaml:"interlude_ticks"`
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
	Type  string `yaml:"type"`   // "loop" or "none"
	MaxAt int    `yaml:"max_at"` // Completed loops at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to hazard speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
	MinInterval       int     `yaml:"min_interval"`       // Spawn interval floor
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// MaxAtForPreset returns the loops to max difficulty for a preset.
// Zero keeps the configured value.
func MaxAtForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
