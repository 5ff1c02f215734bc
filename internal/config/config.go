// Package config provides YAML-based configuration for the flyer engine:
// world geometry, physics, obstacle cadence and scoring constants.
package config

import (
	"errors"
	"fmt"
)

// FlyerConfig contains every fixed constant of the simulation.
type FlyerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Body      BodyConfig     `yaml:"body"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// WorldConfig defines the playfield in pixels.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Ground band at the bottom of the world
}

// BodyConfig defines the controlled body.
type BodyConfig struct {
	AnchorX float64 `yaml:"anchor_x"` // Fixed horizontal center of the body
	Size    float64 `yaml:"size"`     // Side of the square hitbox
}

// PhysicsConfig defines per-tick motion.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Added to velocity every tick
	Impulse       float64 `yaml:"impulse"`        // Velocity set by a flap (negative = up)
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // Leftward obstacle movement per tick
}

// ObstacleConfig defines obstacle geometry and spawn cadence.
type ObstacleConfig struct {
	Width      float64 `yaml:"width"`
	GapHeight  float64 `yaml:"gap_height"`
	GapMargin  float64 `yaml:"gap_margin"`  // Minimum distance kept above and below the gap
	SpawnEvery int     `yaml:"spawn_every"` // Ticks that must elapse before the next spawn
}

// ScoringConfig defines the milestone and its reward.
type ScoringConfig struct {
	Milestone  int    `yaml:"milestone"`
	RewardCode string `yaml:"reward_code"`
}

// GroundLine returns the y-coordinate of the top of the ground band.
func (c FlyerConfig) GroundLine() float64 {
	return c.World.Height - c.World.GroundHeight
}

// GapBand returns the width of the range gap tops are drawn from.
func (c FlyerConfig) GapBand() float64 {
	return c.GroundLine() - c.Obstacles.GapHeight - 2*c.Obstacles.GapMargin
}

// TunnelingRisk reports whether obstacles move far enough per tick that
// the discrete collision check can miss an overlap entirely.
func (c FlyerConfig) TunnelingRisk() bool {
	return c.Physics.ObstacleSpeed > c.Body.Size
}

// Validate checks that the configuration describes a playable world.
func (c FlyerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %v out of range", c.World.GroundHeight))
	}
	if c.Body.Size <= 0 {
		errs = append(errs, errors.New("body size must be positive"))
	}
	if c.Body.AnchorX <= 0 || c.Body.AnchorX >= c.World.Width {
		errs = append(errs, fmt.Errorf("body anchor_x %v outside the world", c.Body.AnchorX))
	}
	if c.Physics.ObstacleSpeed <= 0 {
		errs = append(errs, errors.New("obstacle_speed must be positive"))
	}
	if c.Physics.Impulse >= 0 {
		errs = append(errs, errors.New("impulse must be negative (upward)"))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, errors.New("obstacle width must be positive"))
	}
	if c.Obstacles.GapHeight <= c.Body.Size {
		errs = append(errs, fmt.Errorf("gap_height %v must exceed body size %v", c.Obstacles.GapHeight, c.Body.Size))
	}
	if c.Obstacles.GapMargin < 0 {
		errs = append(errs, errors.New("gap_margin must not be negative"))
	}
	if c.GapBand() < 0 {
		errs = append(errs, fmt.Errorf("gap of %v with margin %v does not fit above the ground", c.Obstacles.GapHeight, c.Obstacles.GapMargin))
	}
	if c.Obstacles.SpawnEvery < 1 {
		errs = append(errs, errors.New("spawn_every must be at least 1"))
	}
	if c.Scoring.Milestone < 1 {
		errs = append(errs, errors.New("milestone must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
