package loop

import "time"

// Clock is the scheduler's monotonic time source.
type Clock interface {
	// Now returns the time elapsed since an arbitrary fixed origin.
	Now() time.Duration
	// Sleep blocks for roughly d.
	Sleep(d time.Duration)
}

type systemClock struct {
	origin time.Time
}

// SystemClock returns a Clock backed by the runtime's monotonic clock.
func SystemClock() Clock {
	return systemClock{origin: time.Now()}
}

func (c systemClock) Now() time.Duration {
	return time.Since(c.origin)
}

func (c systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// VirtualClock is a Clock whose time only advances when it sleeps. It lets
// the scheduler run unthrottled while ticks still see fixed intervals.
type VirtualClock struct {
	now time.Duration
}

func (c *VirtualClock) Now() time.Duration { return c.now }

func (c *VirtualClock) Sleep(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
