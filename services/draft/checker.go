package draft

import (
	"context"
	"sync"
	"time"

	"coworking/models"
)

// DefaultDebounce is the quiet period before an advisory check is sent.
const DefaultDebounce = 500 * time.Millisecond

// CheckFunc performs one availability round trip.
type CheckFunc func(ctx context.Context, req models.AvailabilityRequest) (models.AvailabilityResult, error)

// Result is a delivered advisory check.
type Result struct {
	Generation   uint64
	Request      models.AvailabilityRequest
	Availability models.AvailabilityResult
	Err          error
}

// Checker debounces availability checks and delivers only the latest one.
// Each Schedule starts a new generation, stops the pending timer and
// cancels the in-flight call; a result is handed to the deliver callback
// only if its generation is still current when it arrives.
type Checker struct {
	check   CheckFunc
	delay   time.Duration
	deliver func(Result)

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

// NewChecker returns a Checker. deliver runs with the Checker's lock held
// and must not call back into it.
func NewChecker(check CheckFunc, delay time.Duration, deliver func(Result)) *Checker {
	return &Checker{check: check, delay: delay, deliver: deliver}
}

// Schedule supersedes any pending or in-flight check with req and returns
// the new generation.
func (c *Checker) Schedule(req models.AvailabilityRequest) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersedeLocked()
	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() { c.run(gen, req) })
	return gen
}

// Stop drops any pending or in-flight check.
func (c *Checker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersedeLocked()
}

// Generation returns the current generation.
func (c *Checker) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *Checker) supersedeLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Checker) run(gen uint64, req models.AvailabilityRequest) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	res, err := c.check(ctx, req)
	cancel()
	if err != nil {
		// A failed round trip is shown as unavailable; the user retries.
		res = models.AvailabilityResult{Available: false, Message: err.Error()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.cancel = nil
	c.deliver(Result{Generation: gen, Request: req, Availability: res, Err: err})
}
