package game

import (
	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

// Verdict is the outcome of a collision check.
type Verdict int

const (
	Safe Verdict = iota
	Terminal
)

func (v Verdict) String() string {
	if v == Terminal {
		return "Terminal"
	}
	return "Safe"
}

// Check tests the body against the world bounds and every live obstacle.
// Touching a bound exactly is Safe; only exceeding it is Terminal.
// Speeds above the body size per tick can skip an overlap entirely
// (see FlyerConfig.TunnelingRisk).
func Check(b Body, obstacles []Obstacle, cfg config.FlyerConfig) Verdict {
	box := b.Box(cfg.Body)

	if box.Top < 0 || box.Bottom() > cfg.GroundLine() {
		return Terminal
	}

	for _, o := range obstacles {
		if !box.OverlapsX(o.X, o.Trailing(cfg.Obstacles.Width)) {
			continue
		}
		if !box.WithinY(o.GapTop, o.GapTop+cfg.Obstacles.GapHeight) {
			return Terminal
		}
	}

	return Safe
}
