// Package clock drives the simulation at a fixed cadence outside Bubble Tea.
// The next tick is armed only after the current one returns, so ticks never
// overlap and a slow tick delays the chain instead of queueing work.
package clock

import (
	"context"
	"time"
)

// Driver runs a tick function at a fixed rate.
type Driver struct {
	interval time.Duration
}

// NewDriver creates a driver ticking tickRate times per second.
// A rate of zero or less runs ticks back to back, which the headless simulator uses.
func NewDriver(tickRate int) *Driver {
	var interval time.Duration
	if tickRate > 0 {
		interval = time.Second / time.Duration(tickRate)
	}
	return &Driver{interval: interval}
}

// Interval returns the time between ticks. Zero means unpaced.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Run calls tick until it returns false or ctx is done.
// It returns the number of ticks executed and ctx.Err() if the context ended the chain.
func (d *Driver) Run(ctx context.Context, tick func() bool) (int, error) {
	count := 0

	if d.interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return count, err
			}
			count++
			if !tick() {
				return count, nil
			}
		}
	}

	timer := time.NewTimer(d.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case <-timer.C:
		}

		count++
		if !tick() {
			return count, nil
		}
		timer.Reset(d.interval)
	}
}
