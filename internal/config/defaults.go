package config

import (
	_ "embed"
)

//go:embed defaults/flyer.yaml
var defaultFlyerYAML []byte

// DefaultFlyerConfig returns the built-in constants. The embedded YAML
// carries the same values.
func DefaultFlyerConfig() FlyerConfig {
	return FlyerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 50,
		},
		Body: BodyConfig{
			AnchorX: 100,
			Size:    20,
		},
		Physics: PhysicsConfig{
			Gravity:       0.5,
			Impulse:       -8,
			ObstacleSpeed: 3,
		},
		Obstacles: ObstacleConfig{
			Width:      60,
			GapHeight:  150,
			GapMargin:  50,
			SpawnEvery: 90,
		},
		Scoring: ScoringConfig{
			Milestone:  15,
			RewardCode: "1910",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlyerYAML
}
