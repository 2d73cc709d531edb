// Package clock turns a stream of per-frame timestamps into elapsed seconds
// since the first frame.
package clock

import (
	"math"
	"time"
)

// FrameClock delivers elapsed time to a callback once per frame. The first
// frame only records the epoch. After Stop no further callbacks happen.
type FrameClock struct {
	onFrame func(elapsed float64)

	epoch   time.Time
	started bool
	stopped bool
}

// New returns a clock that calls onFrame for every frame after the first.
func New(onFrame func(elapsed float64)) *FrameClock {
	return &FrameClock{onFrame: onFrame}
}

// Frame feeds the timestamp of the frame being rendered.
func (c *FrameClock) Frame(ts time.Time) {
	if c.stopped {
		return
	}
	if !c.started {
		c.epoch = ts
		c.started = true
		return
	}
	c.onFrame(ts.Sub(c.epoch).Seconds())
}

// Stop tears the clock down.
func (c *FrameClock) Stop() { c.stopped = true }

// Running reports whether an epoch was recorded and the clock is not stopped.
func (c *FrameClock) Running() bool { return c.started && !c.stopped }

// Period scales elapsed seconds by speed and wraps the result into [0,1).
func Period(elapsed, speed float64) float64 {
	p := math.Mod(speed*elapsed, 1)
	if p < 0 {
		p++
	}
	return p
}
