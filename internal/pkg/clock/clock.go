// Package clock lets phase windows, escrow maturity and reservation expiry be
// tested at fixed instants.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type utcClock struct{}

// NewRealClock reports wall time in UTC so stored and hashed timestamps
// agree.
func NewRealClock() Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock stays at one instant until moved.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d, e.g. past an escrow release date.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
