package config

import "math"

// DifficultyManager calculates dynamic hazard parameters from the number of
// completed loops through the level set.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after the given number of loops.
func (d *DifficultyManager) Level(loops int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "loop" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	// Clamp progress to [0, 1]
	progress := clampF(float64(loops)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns a hazard speed scaled by the difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, loops int) float64 {
	level := d.Level(loops)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns a spawn interval shortened by the difficulty level.
// The configured interval is returned unchanged at level 0.
func (d *DifficultyManager) SpawnInterval(baseInterval int, loops int) int {
	level := d.Level(loops)
	if level == 0 {
		return baseInterval
	}

	reduction := int(level * float64(d.cfg.Scaling.IntervalReduction))
	result := baseInterval - reduction

	floor := d.cfg.Scaling.MinInterval
	if floor <= 0 {
		floor = 1
	}
	if floor > baseInterval {
		floor = baseInterval
	}
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
