// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package loop

import (
	"time"
)

// Clock measures elapsed time while running.
// Stopping the clock freezes its elapsed time; starting it
// again resumes from the frozen value.
// The zero value is a stopped clock reading time.Now.
type Clock struct {
	now     func() time.Time
	start   time.Time
	acc     time.Duration
	running bool
}

// NewClock creates a stopped clock that reads the current
// time from now. A nil now means time.Now.
func NewClock(now func() time.Time) *Clock { return &Clock{now: now} }

func (c *Clock) read() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// Start starts or resumes the clock.
// It does nothing if the clock is running.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.start = c.read()
	c.running = true
}

// Stop freezes the clock.
// It does nothing if the clock is stopped.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.acc += c.read().Sub(c.start)
	c.running = false
}

// Running returns whether the clock is running.
func (c *Clock) Running() bool { return c.running }

// Elapsed returns the time the clock has been running,
// in seconds.
func (c *Clock) Elapsed() float64 {
	d := c.acc
	if c.running {
		d += c.read().Sub(c.start)
	}
	return d.Seconds()
}
