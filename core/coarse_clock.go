package core

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultCoarseResolution is the refresh interval of a CoarseClock.
const DefaultCoarseResolution = 500 * time.Microsecond

// CoarseClock is a clock.Clock whose Now returns a value cached by a
// background ticker. Every other method is served by the wrapped clock.
type CoarseClock struct {
	clock.Clock
	resolution time.Duration
	now        atomic.Pointer[time.Time]
	startOnce  sync.Once
	stopOnce   sync.Once
	done       chan struct{}
}

// NewCoarseClock wraps base. A zero resolution selects
// DefaultCoarseResolution. The ticker starts on the first Start call.
func NewCoarseClock(base clock.Clock, resolution time.Duration) *CoarseClock {
	if base == nil {
		base = clock.New()
	}
	if resolution <= 0 {
		resolution = DefaultCoarseResolution
	}
	c := &CoarseClock{
		Clock:      base,
		resolution: resolution,
		done:       make(chan struct{}),
	}
	t := base.Now()
	c.now.Store(&t)
	return c
}

// Start launches the refresh goroutine. It is safe to call multiple
// times; the goroutine is started exactly once.
func (c *CoarseClock) Start() {
	c.startOnce.Do(func() {
		ticker := c.Clock.Ticker(c.resolution)
		go func() {
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					t := c.Clock.Now()
					c.now.Store(&t)
				case <-c.done:
					return
				}
			}
		}()
	})
}

// Stop ends the refresh goroutine. Now keeps returning the last value.
func (c *CoarseClock) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Now returns the most recently cached time.
func (c *CoarseClock) Now() time.Time {
	return *c.now.Load()
}
