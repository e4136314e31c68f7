package engine

import (
	"time"

	"github.com/lixenwraith/termlife/constants"
)

// TickClock schedules simulation ticks against wall-clock time.
// Owned exclusively by the producer goroutine; no locking. The consumer only
// learns about interval changes through RateChanged events.
type TickClock struct {
	interval time.Duration
	last     time.Time // Time of last tick
}

// NewTickClock returns a clock ticking at the given interval, clamped to
// the configured minimum. The first tick is due one interval from now.
func NewTickClock(interval time.Duration) *TickClock {
	return &TickClock{
		interval: ClampInterval(interval),
		last:     time.Now(),
	}
}

// Interval returns the current tick interval
func (c *TickClock) Interval() time.Duration { return c.interval }

// TimeUntilNext returns the remaining wait before the next scheduled tick,
// zero if the interval has already elapsed
func (c *TickClock) TimeUntilNext() time.Duration {
	remaining := c.interval - time.Since(c.last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Due reports whether the tick deadline has passed
func (c *TickClock) Due() bool {
	return time.Since(c.last) >= c.interval
}

// Mark resets the time of last tick to now
func (c *TickClock) Mark() {
	c.last = time.Now()
}

// Increase slows the simulation by one step and returns the new interval.
// There is no upper bound.
func (c *TickClock) Increase() time.Duration {
	c.interval += constants.TickStep
	return c.interval
}

// Decrease speeds the simulation by one step, clamped at the minimum
// interval, and returns the new interval
func (c *TickClock) Decrease() time.Duration {
	c.interval = ClampInterval(c.interval - constants.TickStep)
	return c.interval
}

// ClampInterval raises an interval to the configured floor
func ClampInterval(d time.Duration) time.Duration {
	if d < constants.MinTickInterval {
		return constants.MinTickInterval
	}
	return d
}
