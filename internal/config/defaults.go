package config

import (
	_ "embed"
)

//go:embed defaults/kong.yaml
var defaultKongYAML []byte

// DefaultKongConfig returns the default configuration for the girder-climbing game.
// It mirrors defaults/kong.yaml and is used when the embedded file cannot be parsed.
func DefaultKongConfig() KongConfig {
	return KongConfig{
		Field: KongField{
			Width:  224,
			Height: 256,
		},
		Avatar: KongAvatar{
			Width:         12,
			Height:        16,
			Speed:         1.0,
			ClimbRate:     1.0,
			JumpImpulse:   -2.5,
			Gravity:       0.25,
			SnapTolerance: 4,
			AnimEvery:     6,
		},
		Hazards: KongHazards{
			Gravity:        0.25,
			BarrelWidth:    10,
			BarrelHeight:   10,
			BarrelSpeed:    1.0,
			FireballWidth:  10,
			FireballHeight: 10,
			FireballSpeed:  0.75,
			FireballBounce: 1.5,
			FireballClimb:  0.5,
			LadderChance:   0.02,
			LadderDescent:  1.0,
			ExitMargin:     16,
		},
		Mechanics: KongMechanics{
			HammerRadius:  10,
			PowerUpTicks:  300, // 5 seconds at 60 ticks per second
			RivetRadius:   8,
			ConveyorDrift: 0.5,
		},
		Scoring: KongScoring{
			StartBonus:     5000,
			BonusStep:      100,
			BonusEvery:     60,
			RivetPoints:    100,
			BarrelReward:   300,
			FireballReward: 500,
			LevelBonus:     1000,
		},
		Gameplay: KongGameplay{
			Lives:           3,
			HowHighTicks:    120,
			LevelIntroTicks: 120,
			DeathTicks:      120,
			CompleteTicks:   120,
			InterludeTicks:  240,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "loop",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 60,
				MinInterval:       45,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "kong", "kong_mini":
		return defaultKongYAML
	default:
		return nil
	}
}
