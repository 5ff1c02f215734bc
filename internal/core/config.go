package core

import "time"

// DefaultTickRate is the simulation rate every front end falls back to.
const DefaultTickRate = 60

// RuntimeConfig holds per-session front end settings.
// The game constants live in config.FlyerConfig; this is only about the host.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Ticks per second
	Seed     int64 // Gap placement seed; 0 picks one from the clock
}

// Normalized fills zero or negative fields with their defaults.
func (rc RuntimeConfig) Normalized() RuntimeConfig {
	if rc.TickRate <= 0 {
		rc.TickRate = DefaultTickRate
	}
	if rc.ScreenW < 0 {
		rc.ScreenW = 0
	}
	if rc.ScreenH < 0 {
		rc.ScreenH = 0
	}
	return rc
}

// TickInterval is the wall time between two ticks.
func (rc RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(rc.Normalized().TickRate)
}
