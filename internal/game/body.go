// Package game implements the Wasteland Flyer simulation: a body falling under
// gravity that the player keeps aloft with discrete impulses while obstacles
// scroll in from the right.
//
// The simulation is a pure step over World values. Engine wraps it in the
// Menu/Playing/GameOver state machine and owns score persistence.
package game

import (
	"github.com/vovakirdan/wasteland-flyer/internal/config"
	"github.com/vovakirdan/wasteland-flyer/internal/core"
)

// Body is the controlled flyer. Y is the vertical center in world pixels.
type Body struct {
	Y   float64
	Vel float64
}

// Integrate advances the body by one tick with explicit Euler integration.
// Gravity is always applied; an impulse then overrides the velocity for this tick.
// Nothing is clamped here.
func Integrate(b Body, impulse bool, p config.PhysicsConfig) Body {
	b.Vel += p.Gravity
	if impulse {
		b.Vel = p.Impulse
	}
	b.Y += b.Vel
	return b
}

// Box returns the body's hitbox at its fixed horizontal anchor.
func (b Body) Box(bc config.BodyConfig) core.Box {
	return core.CenteredBox(bc.AnchorX, b.Y, bc.Size)
}
