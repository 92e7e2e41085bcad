package app

import (
	"sync"
	"time"
)

// Ticker is the simulation clock: it produces tick events and nothing else.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// Clock is a Ticker backed by time.Ticker whose period can change between
// ticks.
type Clock struct {
	mu       sync.Mutex
	ticker   *time.Ticker
	interval time.Duration
	stopped  bool
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{
		ticker:   time.NewTicker(interval),
		interval: interval,
	}
}

func (c *Clock) C() <-chan time.Time {
	return c.ticker.C
}

func (c *Clock) Reset(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || d == c.interval {
		return
	}
	c.interval = d
	c.ticker.Reset(d)
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ticker.Stop()
	c.stopped = true
}

func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

func (c *Clock) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}
