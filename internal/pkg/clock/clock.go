package clock

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock truncates to microseconds, the precision PostgreSQL stores.
type SystemClock struct{}

func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

// FixedClock returns the same instant until moved.
type FixedClock struct {
	current time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

func (c *FixedClock) Now() time.Time {
	return c.current
}

func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
