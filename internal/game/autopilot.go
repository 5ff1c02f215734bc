package game

import (
	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

// autopilotClearance is how far above the gap bottom the autopilot aims.
// A flap climbs 68px with the default physics, so aiming 50px above the
// bottom keeps the whole oscillation inside a 150px gap.
const autopilotClearance = 50

// Autopilot decides flaps from snapshots. It drives the headless simulator.
type Autopilot struct {
	cfg config.FlyerConfig
}

// NewAutopilot creates an autopilot for the given constants.
func NewAutopilot(cfg config.FlyerConfig) Autopilot {
	return Autopilot{cfg: cfg}
}

// Target returns the body height the autopilot steers toward: a point inside
// the next gap the body has not cleared, or the world center when none is on screen.
func (a Autopilot) Target(s Snapshot) float64 {
	bodyLeft := a.cfg.Body.AnchorX - a.cfg.Body.Size/2
	for _, o := range s.Obstacles {
		if o.X+a.cfg.Obstacles.Width > bodyLeft {
			return o.GapTop + a.cfg.Obstacles.GapHeight - autopilotClearance
		}
	}
	return a.cfg.World.Height / 2
}

// ShouldFlap reports whether to request an impulse before the next tick.
func (a Autopilot) ShouldFlap(s Snapshot) bool {
	return s.BodyY > a.Target(s) && s.BodyVel >= 0
}
