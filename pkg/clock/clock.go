package clock

import (
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	current Clock = SystemClock{}
)

// Clock returns the current time. Stores and importers read the time through
// this package so that tests can freeze it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (c SystemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock always returns the same instant until moved forward.
type FrozenClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFrozenClock(now time.Time) *FrozenClock {
	return &FrozenClock{now: now}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// FastForward moves the clock and returns the new instant.
func (c *FrozenClock) FastForward(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Now is the same as time.Now() but can be controlled from unit tests.
func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return current.Now()
}

// FreezeAt replaces the current clock by a frozen one.
func FreezeAt(now time.Time) *FrozenClock {
	frozen := NewFrozenClock(now)
	mu.Lock()
	current = frozen
	mu.Unlock()
	return frozen
}

// Freeze stops the time at the current instant (truncated to the second to be SQL-friendly).
func Freeze() *FrozenClock {
	return FreezeAt(time.Now().UTC().Truncate(time.Second))
}

// Unfreeze restores the system clock.
func Unfreeze() {
	mu.Lock()
	current = SystemClock{}
	mu.Unlock()
}
