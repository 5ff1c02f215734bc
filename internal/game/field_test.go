package game

import (
	"testing"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

// fixedRand always returns the same value.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// seqRand returns its values in order, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

// quietField returns a field that will not spawn for a while after tick.
func quietField(tick int, obstacles ...Obstacle) Field {
	return Field{Obstacles: obstacles, LastSpawn: tick, NextID: ObstacleID(len(obstacles))}
}

func TestFieldSpawnCadence(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	var f Field

	for tick := 1; tick <= 90; tick++ {
		f, _ = f.Advance(tick, cfg, fixedRand(0.5))
		if len(f.Obstacles) != 0 {
			t.Fatalf("tick %d: spawned too early", tick)
		}
	}

	f, _ = f.Advance(91, cfg, fixedRand(0.5))
	if len(f.Obstacles) != 1 {
		t.Fatalf("tick 91: expected one obstacle, got %d", len(f.Obstacles))
	}
	o := f.Obstacles[0]
	if o.ID != 0 {
		t.Errorf("first ID = %d, expected 0", o.ID)
	}
	// Spawned at the right edge, then moved with everything else
	if o.X != cfg.World.Width-cfg.Physics.ObstacleSpeed {
		t.Errorf("X = %v, expected %v", o.X, cfg.World.Width-cfg.Physics.ObstacleSpeed)
	}
	if o.GapTop != 200 {
		t.Errorf("GapTop = %v, expected 200", o.GapTop)
	}

	for tick := 92; tick <= 181; tick++ {
		f, _ = f.Advance(tick, cfg, fixedRand(0.5))
	}
	if len(f.Obstacles) != 1 {
		t.Fatalf("tick 181: expected one obstacle, got %d", len(f.Obstacles))
	}
	f, _ = f.Advance(182, cfg, fixedRand(0.5))
	if len(f.Obstacles) != 2 {
		t.Fatalf("tick 182: expected two obstacles, got %d", len(f.Obstacles))
	}
	if f.Obstacles[1].ID != 1 {
		t.Errorf("second ID = %d, expected 1", f.Obstacles[1].ID)
	}
	if f.Obstacles[0].X >= f.Obstacles[1].X {
		t.Error("later obstacles must be further right")
	}
}

func TestFieldGapRange(t *testing.T) {
	cfg := config.DefaultFlyerConfig()

	tests := []struct {
		name string
		r    float64
		want float64
	}{
		{"lowest", 0, 50},
		{"middle", 0.5, 200},
		{"upper quarter", 0.75, 275},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := Field{}.Advance(cfg.Obstacles.SpawnEvery+1, cfg, fixedRand(tc.r))
			gapTop := f.Obstacles[0].GapTop
			if gapTop != tc.want {
				t.Errorf("GapTop = %v, expected %v", gapTop, tc.want)
			}
			if gapTop < cfg.Obstacles.GapMargin {
				t.Errorf("gap starts inside the top margin: %v", gapTop)
			}
			if bottom := gapTop + cfg.Obstacles.GapHeight; bottom > cfg.GroundLine()-cfg.Obstacles.GapMargin {
				t.Errorf("gap ends inside the bottom margin: %v", bottom)
			}
		})
	}
}

func TestFieldPassOnce(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	f := quietField(1000, Obstacle{ID: 7, X: 44, GapTop: 200})

	// 44 -> 41: trailing edge 101, not yet left of the anchor
	f, passed := f.Advance(1001, cfg, fixedRand(0))
	if len(passed) != 0 || f.Obstacles[0].Passed {
		t.Fatalf("trailing edge 101 should not pass, got %v", passed)
	}

	// 41 -> 38: trailing edge 98
	f, passed = f.Advance(1002, cfg, fixedRand(0))
	if len(passed) != 1 || passed[0] != 7 {
		t.Fatalf("expected pass event for 7, got %v", passed)
	}
	if !f.Obstacles[0].Passed {
		t.Error("Passed should be set")
	}

	for tick := 1003; tick < 1010; tick++ {
		f, passed = f.Advance(tick, cfg, fixedRand(0))
		if len(passed) != 0 {
			t.Fatalf("tick %d: passed obstacle re-emitted %v", tick, passed)
		}
		if !f.Obstacles[0].Passed {
			t.Fatalf("tick %d: Passed reverted", tick)
		}
	}
}

func TestFieldPassAtExactAnchor(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	// 43 -> 40: trailing edge exactly at the anchor is not a pass
	f := quietField(1000, Obstacle{ID: 0, X: 43})

	f, passed := f.Advance(1001, cfg, fixedRand(0))
	if len(passed) != 0 {
		t.Errorf("trailing edge == anchor should not pass, got %v", passed)
	}
	_, passed = f.Advance(1002, cfg, fixedRand(0))
	if len(passed) != 1 {
		t.Errorf("expected a pass one tick later, got %v", passed)
	}
}

func TestFieldRetire(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	f := quietField(1000,
		Obstacle{ID: 0, X: -55, Passed: true},
		Obstacle{ID: 1, X: 300, Passed: false},
	)

	// -55 -> -58: trailing edge 2 still on screen
	f, passed := f.Advance(1001, cfg, fixedRand(0))
	if len(f.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(f.Obstacles))
	}
	if len(passed) != 0 {
		t.Errorf("retiring obstacles must not emit, got %v", passed)
	}

	// -58 -> -61: trailing edge -1 is off screen
	f, passed = f.Advance(1002, cfg, fixedRand(0))
	if len(f.Obstacles) != 1 || f.Obstacles[0].ID != 1 {
		t.Fatalf("expected only obstacle 1 left, got %+v", f.Obstacles)
	}
	if len(passed) != 0 {
		t.Errorf("retirement must not emit, got %v", passed)
	}
}

func TestFieldRetireIndependentOfPass(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	// Never passed, and off screen after this tick: both checks apply
	f := quietField(1000, Obstacle{ID: 3, X: -62})

	f, passed := f.Advance(1001, cfg, fixedRand(0))
	if len(f.Obstacles) != 0 {
		t.Errorf("obstacle should retire, got %+v", f.Obstacles)
	}
	if len(passed) != 1 || passed[0] != 3 {
		t.Errorf("pass check runs before retirement, got %v", passed)
	}
}

func TestFieldAdvanceDoesNotMutate(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	orig := quietField(1000, Obstacle{ID: 0, X: 44}, Obstacle{ID: 1, X: 500})

	next, _ := orig.Advance(1002, cfg, fixedRand(0))
	next.Obstacles[0].GapTop = 999

	if orig.Obstacles[0].X != 44 || orig.Obstacles[0].Passed || orig.Obstacles[0].GapTop != 0 {
		t.Errorf("Advance mutated its receiver: %+v", orig.Obstacles[0])
	}
}

func TestFieldIDsNeverReused(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	rng := &seqRand{vals: []float64{0.1, 0.9, 0.4}}
	var f Field
	seen := make(map[ObstacleID]bool)
	last := ObstacleID(-1)

	for tick := 1; tick <= 2000; tick++ {
		f, _ = f.Advance(tick, cfg, rng)
		for _, o := range f.Obstacles {
			if o.ID > last {
				if seen[o.ID] {
					t.Fatalf("ID %d reused", o.ID)
				}
				seen[o.ID] = true
				last = o.ID
			}
		}
		for i := 1; i < len(f.Obstacles); i++ {
			if f.Obstacles[i-1].ID >= f.Obstacles[i].ID || f.Obstacles[i-1].X >= f.Obstacles[i].X {
				t.Fatalf("tick %d: obstacles out of spawn order", tick)
			}
		}
	}

	if len(seen) < 20 {
		t.Errorf("expected at least 20 spawns over 2000 ticks, got %d", len(seen))
	}
}
