package debounce

import (
	"context"
	"sync"
	"time"
)

type result[R any] struct {
	value R
	err   error
}

// Call debounces a function whose result the callers wait for.
// Only the last call of a burst invokes the function; earlier callers
// are released with ErrSuperseded as soon as they are replaced.
type Call[A, R any] struct {
	mu sync.Mutex
	// fn is the debounced function.
	fn func(ctx context.Context, arg A) (R, error)
	// delay is the quiet period before fn runs.
	delay time.Duration
	// timer fires the latest call.
	timer *time.Timer
	// waiter receives the outcome of the latest call.
	waiter chan result[R]
	// generation identifies the latest call so stale timers are ignored.
	generation uint64
}

// NewCall creates an awaitable debouncer around fn.
func NewCall[A, R any](fn func(ctx context.Context, arg A) (R, error), delay time.Duration) *Call[A, R] {
	return &Call[A, R]{
		fn:    fn,
		delay: delay,
	}
}

// Call schedules fn(ctx, arg) and blocks until it has run, until a later call
// supersedes this one (ErrSuperseded), or until ctx is done (ctx.Err()).
func (c *Call[A, R]) Call(ctx context.Context, arg A) (R, error) {
	waiter := c.schedule(ctx, arg)

	select {
	case r := <-waiter:
		return r.value, r.err
	case <-ctx.Done():
		c.cancel(waiter)

		var zero R

		return zero, ctx.Err()
	}
}

func (c *Call[A, R]) schedule(ctx context.Context, arg A) chan result[R] {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.supersede()

	// Buffered so the sender never blocks on a caller that already left.
	waiter := make(chan result[R], 1)

	c.generation++
	generation := c.generation
	c.waiter = waiter
	c.timer = time.AfterFunc(c.delay, func() {
		c.fire(ctx, generation, arg)
	})

	return waiter
}

// supersede releases the current waiter, if any. The caller holds mu.
func (c *Call[A, R]) supersede() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if c.waiter != nil {
		c.waiter <- result[R]{err: ErrSuperseded}
		c.waiter = nil
	}
}

func (c *Call[A, R]) fire(ctx context.Context, generation uint64, arg A) {
	c.mu.Lock()

	if generation != c.generation || c.waiter == nil {
		c.mu.Unlock()

		return
	}

	waiter := c.waiter
	c.waiter = nil
	c.timer = nil
	c.mu.Unlock()

	value, err := c.fn(ctx, arg)
	waiter <- result[R]{value: value, err: err}
}

func (c *Call[A, R]) cancel(waiter chan result[R]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.waiter != waiter {
		return
	}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.waiter = nil
	c.generation++
}
