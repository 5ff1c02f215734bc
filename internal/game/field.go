package game

import (
	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

// ObstacleID identifies an obstacle within a round. IDs are never reused.
type ObstacleID int

// Obstacle is a top/bottom barrier pair with a traversable gap.
type Obstacle struct {
	ID     ObstacleID
	X      float64 // Left edge
	GapTop float64 // Y where the gap starts
	Passed bool    // Set once the trailing edge clears the body anchor
}

// Trailing returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Trailing(width float64) float64 {
	return o.X + width
}

// RandSource supplies gap placement. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Field is the ordered obstacle collection. Spawn order equals left-to-right order.
type Field struct {
	Obstacles []Obstacle
	LastSpawn int        // Tick of the most recent spawn
	NextID    ObstacleID // ID for the next spawned obstacle
}

// Advance runs one tick of the field: spawn, move, pass detection, retirement.
// It returns a new Field and the IDs of obstacles passed on this tick.
// The receiver's slice is not modified.
func (f Field) Advance(tick int, cfg config.FlyerConfig, rng RandSource) (Field, []ObstacleID) {
	next := Field{
		Obstacles: make([]Obstacle, 0, len(f.Obstacles)+1),
		LastSpawn: f.LastSpawn,
		NextID:    f.NextID,
	}
	next.Obstacles = append(next.Obstacles, f.Obstacles...)

	if tick-next.LastSpawn > cfg.Obstacles.SpawnEvery {
		next.Obstacles = append(next.Obstacles, Obstacle{
			ID:     next.NextID,
			X:      cfg.World.Width,
			GapTop: cfg.Obstacles.GapMargin + rng.Float64()*cfg.GapBand(),
		})
		next.NextID++
		next.LastSpawn = tick
	}

	width := cfg.Obstacles.Width
	var passed []ObstacleID
	kept := next.Obstacles[:0]
	for _, o := range next.Obstacles {
		o.X -= cfg.Physics.ObstacleSpeed

		if !o.Passed && o.Trailing(width) < cfg.Body.AnchorX {
			o.Passed = true
			passed = append(passed, o.ID)
		}

		// Retirement is checked on its own; it does not assume a prior pass
		if o.Trailing(width) < 0 {
			continue
		}
		kept = append(kept, o)
	}
	next.Obstacles = kept

	return next, passed
}
