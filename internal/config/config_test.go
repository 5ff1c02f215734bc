package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFlyerConfig(t *testing.T) {
	cfg := DefaultFlyerConfig()

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"world width", cfg.World.Width, 800},
		{"world height", cfg.World.Height, 600},
		{"ground height", cfg.World.GroundHeight, 50},
		{"body anchor", cfg.Body.AnchorX, 100},
		{"body size", cfg.Body.Size, 20},
		{"gravity", cfg.Physics.Gravity, 0.5},
		{"impulse", cfg.Physics.Impulse, -8},
		{"obstacle speed", cfg.Physics.ObstacleSpeed, 3},
		{"obstacle width", cfg.Obstacles.Width, 60},
		{"gap height", cfg.Obstacles.GapHeight, 150},
		{"gap margin", cfg.Obstacles.GapMargin, 50},
		{"spawn cadence", float64(cfg.Obstacles.SpawnEvery), 90},
		{"milestone", float64(cfg.Scoring.Milestone), 15},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.expected)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.GroundLine() != 550 {
		t.Errorf("GroundLine() = %v, expected 550", cfg.GroundLine())
	}
	if cfg.GapBand() != 300 {
		t.Errorf("GapBand() = %v, expected 300", cfg.GapBand())
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFlyerConfig() {
		t.Errorf("embedded YAML differs from DefaultFlyerConfig:\n got  %+v\n want %+v", cfg, DefaultFlyerConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.7\nscoring:\n  milestone: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("Gravity = %v, expected 0.7", cfg.Physics.Gravity)
	}
	if cfg.Scoring.Milestone != 3 {
		t.Errorf("Milestone = %d, expected 3", cfg.Scoring.Milestone)
	}
	// Unset keys keep defaults
	if cfg.Obstacles.GapHeight != 150 {
		t.Errorf("GapHeight = %v, expected default 150", cfg.Obstacles.GapHeight)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles:\n  gap_height: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject a gap smaller than the body")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlyerConfig)
	}{
		{"zero width", func(c *FlyerConfig) { c.World.Width = 0 }},
		{"ground fills world", func(c *FlyerConfig) { c.World.GroundHeight = 600 }},
		{"positive impulse", func(c *FlyerConfig) { c.Physics.Impulse = 8 }},
		{"no obstacle speed", func(c *FlyerConfig) { c.Physics.ObstacleSpeed = 0 }},
		{"anchor outside world", func(c *FlyerConfig) { c.Body.AnchorX = 900 }},
		{"gap does not fit", func(c *FlyerConfig) { c.Obstacles.GapHeight = 500 }},
		{"no spawn cadence", func(c *FlyerConfig) { c.Obstacles.SpawnEvery = 0 }},
		{"no milestone", func(c *FlyerConfig) { c.Scoring.Milestone = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlyerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestTunnelingRisk(t *testing.T) {
	cfg := DefaultFlyerConfig()
	if cfg.TunnelingRisk() {
		t.Error("defaults should not report tunneling risk")
	}

	cfg.Physics.ObstacleSpeed = 25
	if !cfg.TunnelingRisk() {
		t.Error("speed above body size should report tunneling risk")
	}
}
