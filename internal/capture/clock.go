package capture

import "time"

// Clock produces monotonic millisecond timestamps relative to its
// creation. Timestamps are uint32 and wrap after ~49 days; wraparound
// only perturbs eviction tie-breaking, never address identity.
type Clock struct {
	start time.Time
}

// NewClock starts a clock at zero.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Now returns milliseconds elapsed since the clock started.
func (c *Clock) Now() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
