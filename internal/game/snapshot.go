package game

// ObstacleView is the render-facing part of an obstacle.
type ObstacleView struct {
	X      float64
	GapTop float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the engine.
type Snapshot struct {
	State     State
	Round     int
	BodyY     float64
	BodyVel   float64
	Obstacles []ObstacleView
	Score     int
	Best      int
	Tick      int
	Milestone bool // Milestone reached this round
	NewBest   bool // Round ended with a new best score (GameOver only)
}

func snapshotOf(w World) Snapshot {
	views := make([]ObstacleView, len(w.Field.Obstacles))
	for i, o := range w.Field.Obstacles {
		views[i] = ObstacleView{X: o.X, GapTop: o.GapTop}
	}
	return Snapshot{
		BodyY:     w.Body.Y,
		BodyVel:   w.Body.Vel,
		Obstacles: views,
		Score:     w.Score,
		Tick:      w.Tick,
		Milestone: w.MilestoneReached,
	}
}
