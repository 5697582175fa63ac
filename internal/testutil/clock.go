// Package testutil provides deterministic helpers shared by tests.
package testutil

import "time"

// Clock provides deterministic, monotonically increasing timestamps
// for store operations under test.
type Clock struct {
	current time.Time
	step    time.Duration
}

// NewClock returns a clock initialized to a fixed UTC start time.
func NewClock() *Clock {
	return &Clock{
		current: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		step:    time.Second,
	}
}

// Now returns the next timestamp. Each call advances the clock by one
// step so createdAt values never collide.
func (c *Clock) Now() time.Time {
	c.current = c.current.Add(c.step)

	return c.current
}

// Current returns the last timestamp handed out without advancing.
func (c *Clock) Current() time.Time {
	return c.current
}
