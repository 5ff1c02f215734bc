package game

import (
	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

// World is the complete state of one round.
type World struct {
	Body             Body
	Field            Field
	Score            int
	Tick             int
	MilestoneReached bool
}

// NewWorld returns the starting state of a round: body centered vertically,
// at rest, no obstacles.
func NewWorld(cfg config.FlyerConfig) World {
	return World{
		Body: Body{Y: cfg.World.Height / 2},
	}
}

// StepOutcome reports what happened during one Step.
type StepOutcome struct {
	Passed    []ObstacleID
	Milestone bool // The milestone latch was set on this tick
	Verdict   Verdict
}

// Step advances the world by one tick: body, then field, then collision
// against the post-update positions. The input World is left untouched.
func Step(w World, impulse bool, cfg config.FlyerConfig, rng RandSource) (World, StepOutcome) {
	var out StepOutcome

	w.Tick++
	w.Body = Integrate(w.Body, impulse, cfg.Physics)
	w.Field, out.Passed = w.Field.Advance(w.Tick, cfg, rng)

	w.Score += len(out.Passed)
	if !w.MilestoneReached && w.Score >= cfg.Scoring.Milestone {
		w.MilestoneReached = true
		out.Milestone = true
	}

	out.Verdict = Check(w.Body, w.Field.Obstacles, cfg)
	return w, out
}
