package core

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestCoarseClockRefreshes(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	c := NewCoarseClock(mock, 10*time.Millisecond)
	defer c.Stop()
	start := c.Now()
	c.Start()

	mock.Add(10 * time.Millisecond)

	assert.Eventually(t, func() bool {
		return c.Now().After(start)
	}, time.Second, time.Millisecond)
}

func TestCoarseClockStartIdempotent(t *testing.T) {
	c := NewCoarseClock(nil, 0)
	c.Start()
	c.Start()
	c.Start()
	c.Stop()
	c.Stop()

	if c.Now().IsZero() {
		t.Error("Now() returned zero time after Start")
	}
}

func TestCoarseClockDelegates(t *testing.T) {
	mock := clock.NewMock()
	c := NewCoarseClock(mock, 0)

	mock.Add(time.Hour)
	assert.Equal(t, time.Hour, c.Since(time.Unix(0, 0).UTC()))
}
