package debounce

import (
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned by Call.Call when a later call replaced this one before it fired.
var ErrSuperseded = errors.New("debounced call superseded by a later call")

// Debouncer runs only the most recently scheduled function,
// once no new function has been scheduled for the configured delay.
// It is safe for concurrent use.
type Debouncer struct {
	mu sync.Mutex
	// delay is the quiet period before the pending function runs.
	delay time.Duration
	// timer fires the pending function.
	timer *time.Timer
	// pending is the function scheduled by the latest Do.
	pending func()
	// generation identifies the latest Do so stale timers are ignored.
	generation uint64
}

// New creates a Debouncer with the given quiet period.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn, replacing any function that has not run yet and restarting the delay.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimer()

	d.generation++
	generation := d.generation
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(generation)
	})
}

// Flush runs the pending function immediately, if any, and reports whether it ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.take()
	d.mu.Unlock()

	if fn == nil {
		return false
	}

	fn()

	return true
}

// Stop drops the pending function, if any, and reports whether one was dropped.
// The Debouncer can be reused after Stop.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.take() != nil
}

func (d *Debouncer) fire(generation uint64) {
	d.mu.Lock()

	if generation != d.generation {
		d.mu.Unlock()

		return
	}

	fn := d.take()
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// take clears the pending function and returns it. The caller holds mu.
func (d *Debouncer) take() func() {
	d.stopTimer()

	fn := d.pending
	d.pending = nil
	d.generation++

	return fn
}

func (d *Debouncer) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Func returns a debounced version of fn: only the argument of the last call made
// within the quiet period is passed to fn. The returned stop function drops a pending call.
func Func[A any](fn func(A), delay time.Duration) (func(A), func()) {
	d := New(delay)

	debounced := func(arg A) {
		d.Do(func() {
			fn(arg)
		})
	}

	return debounced, func() { d.Stop() }
}
