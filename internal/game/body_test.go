package game

import (
	"testing"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

func TestIntegrateGravity(t *testing.T) {
	p := config.DefaultFlyerConfig().Physics

	tests := []struct {
		name string
		in   Body
	}{
		{"at rest", Body{Y: 300, Vel: 0}},
		{"falling", Body{Y: 300, Vel: 4}},
		{"rising", Body{Y: 300, Vel: -6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Integrate(tc.in, false, p)

			wantVel := tc.in.Vel + p.Gravity
			if out.Vel != wantVel {
				t.Errorf("Vel = %v, expected %v", out.Vel, wantVel)
			}
			if out.Y != tc.in.Y+wantVel {
				t.Errorf("Y = %v, expected %v", out.Y, tc.in.Y+wantVel)
			}
		})
	}
}

func TestIntegrateImpulseOverridesGravity(t *testing.T) {
	p := config.DefaultFlyerConfig().Physics

	for _, vel := range []float64{-8, -3, 0, 2.5, 12} {
		out := Integrate(Body{Y: 300, Vel: vel}, true, p)

		if out.Vel != p.Impulse {
			t.Errorf("from Vel=%v: Vel = %v, expected exactly %v", vel, out.Vel, p.Impulse)
		}
		if out.Y != 300+p.Impulse {
			t.Errorf("from Vel=%v: Y = %v, expected %v", vel, out.Y, 300+p.Impulse)
		}
	}
}

func TestIntegrateDoesNotClamp(t *testing.T) {
	p := config.DefaultFlyerConfig().Physics

	out := Integrate(Body{Y: -50, Vel: 40}, false, p)
	if out.Vel != 40.5 || out.Y != -9.5 {
		t.Errorf("Integrate should not clamp, got %+v", out)
	}
}
