// Package clock abstracts time so cooldowns, decay and ageing can be driven
// deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real uses the system time
type Real struct{}

// New returns the system clock
func New() Clock {
	return Real{}
}

// Now returns the current system time
func (Real) Now() time.Time {
	return time.Now()
}

// Since returns the duration since t
func (Real) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Simulated is a manually advanced clock, safe for concurrent use
type Simulated struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulated creates a Simulated clock starting at start
func NewSimulated(start time.Time) *Simulated {
	return &Simulated{current: start}
}

// Now returns the simulated current time
func (c *Simulated) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Since returns the simulated duration since t
func (c *Simulated) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Advance moves the simulated time forward by d
func (c *Simulated) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// Set jumps the simulated time to t
func (c *Simulated) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}
