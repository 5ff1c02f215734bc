package game

import (
	"testing"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

func TestCheckWorldBounds(t *testing.T) {
	cfg := config.DefaultFlyerConfig()

	tests := []struct {
		name     string
		y        float64
		expected Verdict
	}{
		{"middle of the sky", 300, Safe},
		{"top touching ceiling", 10, Safe},
		{"top above ceiling", 9.5, Terminal},
		{"bottom touching ground", 540, Safe},
		{"bottom below ground", 540.5, Terminal},
		{"deep underground", 900, Terminal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Check(Body{Y: tc.y}, nil, cfg); got != tc.expected {
				t.Errorf("Check(y=%v) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestCheckObstacleGap(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	// Spans x [80, 140), overlapping the body's [90, 110); gap [200, 350]
	pipe := []Obstacle{{ID: 0, X: 80, GapTop: 200}}

	tests := []struct {
		name     string
		y        float64
		expected Verdict
	}{
		{"centered in gap", 275, Safe},
		{"touching gap top", 210, Safe},
		{"clipping gap top", 209, Terminal},
		{"touching gap bottom", 340, Safe},
		{"clipping gap bottom", 341, Terminal},
		{"far above gap", 100, Terminal},
		{"far below gap", 500, Terminal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Check(Body{Y: tc.y}, pipe, cfg); got != tc.expected {
				t.Errorf("Check(y=%v) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestCheckHorizontalOverlap(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	// Body at y=100 is outside any gap starting at 300
	body := Body{Y: 100}

	tests := []struct {
		name     string
		x        float64
		expected Verdict
	}{
		{"trailing edge touching body left", 30, Safe},
		{"trailing edge inside body", 31, Terminal},
		{"leading edge inside body", 109, Terminal},
		{"leading edge touching body right", 110, Safe},
		{"far right", 600, Safe},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obstacles := []Obstacle{{X: tc.x, GapTop: 300}}
			if got := Check(body, obstacles, cfg); got != tc.expected {
				t.Errorf("Check(x=%v) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestCheckAnyObstacleIsTerminal(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	body := Body{Y: 275}
	obstacles := []Obstacle{
		{ID: 0, X: 85, GapTop: 200},  // body fits
		{ID: 1, X: 100, GapTop: 300}, // body hits the top barrier
	}

	if got := Check(body, obstacles, cfg); got != Terminal {
		t.Errorf("Check = %v, expected Terminal", got)
	}
	// Order must not matter
	obstacles[0], obstacles[1] = obstacles[1], obstacles[0]
	if got := Check(body, obstacles, cfg); got != Terminal {
		t.Errorf("Check (reordered) = %v, expected Terminal", got)
	}
}

func TestCheckIdempotent(t *testing.T) {
	cfg := config.DefaultFlyerConfig()
	obstacles := []Obstacle{{X: 80, GapTop: 200}, {X: 400, GapTop: 100}}

	for _, y := range []float64{5, 209, 275, 341, 545} {
		body := Body{Y: y, Vel: 3}
		first := Check(body, obstacles, cfg)
		second := Check(body, obstacles, cfg)
		if first != second {
			t.Errorf("y=%v: verdicts differ: %v then %v", y, first, second)
		}
	}
}

func TestVerdictString(t *testing.T) {
	if Safe.String() != "Safe" || Terminal.String() != "Terminal" {
		t.Errorf("unexpected verdict names %q %q", Safe, Terminal)
	}
}
