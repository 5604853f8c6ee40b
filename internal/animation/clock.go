package animation

import "time"

// Clock measures frame deltas the way the frame loop sees them.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

func NewClockWithSource(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Tick returns seconds since the previous tick and since the clock started.
func (c *Clock) Tick() (delta, elapsed float64) {
	t := c.now()
	delta = t.Sub(c.last).Seconds()
	if delta < 0 {
		delta = 0
	}
	c.last = t
	return delta, t.Sub(c.start).Seconds()
}
