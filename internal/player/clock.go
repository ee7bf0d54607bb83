package player

import (
	"context"
	"sync"
	"time"
)

// TickInterval is how often a playing track advances by one second.
const TickInterval = time.Second

// Clock calls a tick function on a fixed interval while started.
//
// The underlying ticker only exists between Start and Stop; Stop never waits on the tick goroutine,
// so it is safe to call from inside the tick function. Each tick carries the generation of the
// Start that scheduled it; see [Clock.Current].
type Clock struct {
	mu       sync.Mutex
	interval time.Duration
	tick     func(gen uint64)
	cancel   context.CancelFunc
	gen      uint64
}

// NewClock creates a stopped clock. A non-positive interval falls back to [TickInterval].
func NewClock(interval time.Duration, tick func(gen uint64)) *Clock {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Clock{interval: interval, tick: tick}
}

// Start begins ticking. Calling Start on a running clock is a no-op.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.gen++
	go c.run(ctx, c.gen)
}

// Stop releases the ticker. Calling Stop on a stopped clock is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Restart stops and starts the clock so the next tick is a full interval away.
func (c *Clock) Restart() {
	c.Stop()
	c.Start()
}

// Running reports whether the clock holds a ticker.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Current reports whether gen belongs to the running ticker. A tick that was already in flight
// when the clock was stopped or restarted is not current.
func (c *Clock) Current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil && gen == c.gen
}

func (c *Clock) run(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a Stop racing with the ticker must win
			if ctx.Err() != nil {
				return
			}
			c.tick(gen)
		}
	}
}
