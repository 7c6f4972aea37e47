package debounce

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDelay   = 20 * time.Millisecond
	testTimeout = time.Second
	testTick    = 5 * time.Millisecond
)

// TestDebouncer_Do tests that only the last function of a burst runs.
func TestDebouncer_Do(t *testing.T) {
	t.Parallel()

	var (
		calls atomic.Int32
		last  atomic.Int32
	)

	d := New(testDelay)

	for i := range int32(5) {
		d.Do(func() {
			calls.Add(1)
			last.Store(i)
		})
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, testTimeout, testTick)

	time.Sleep(2 * testDelay)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(4), last.Load())
}

// TestDebouncer_Flush tests immediate execution of the pending function.
func TestDebouncer_Flush(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	d := New(time.Hour)
	d.Do(func() { calls.Add(1) })

	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Flush())
}

// TestDebouncer_Stop tests that a stopped function never runs and the debouncer stays usable.
func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	d := New(testDelay)
	d.Do(func() { calls.Add(10) })

	assert.True(t, d.Stop())
	assert.False(t, d.Stop())

	d.Do(func() { calls.Add(1) })

	require.Eventually(t, func() bool { return calls.Load() == 1 }, testTimeout, testTick)
}

// TestFunc tests the argument-forwarding form.
func TestFunc(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		received []string
	)

	debounced, stop := Func(func(s string) {
		mu.Lock()
		defer mu.Unlock()

		received = append(received, s)
	}, testDelay)
	defer stop()

	debounced("a")
	debounced("ab")
	debounced("abc")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(received) == 1
	}, testTimeout, testTick)

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []string{"abc"}, received)
}

// TestCall tests that the last caller gets the result and earlier callers are released.
func TestCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := NewCall(func(_ context.Context, n int) (int, error) {
		calls.Add(1)

		return n * 2, nil
	}, testDelay)

	ctx := context.Background()

	type outcome struct {
		value int
		err   error
	}

	first := make(chan outcome, 1)

	go func() {
		v, err := c.Call(ctx, 1)
		first <- outcome{value: v, err: err}
	}()

	// Let the first call register before replacing it.
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()

		return c.waiter != nil
	}, testTimeout, time.Millisecond)

	v, err := c.Call(ctx, 21)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	superseded := <-first
	require.ErrorIs(t, superseded.err, ErrSuperseded)
	assert.Zero(t, superseded.value)
	assert.Equal(t, int32(1), calls.Load())
}

// TestCall_Error tests that the function's error reaches the caller.
func TestCall_Error(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	c := NewCall(func(context.Context, string) (string, error) {
		return "", errBoom
	}, testDelay)

	_, err := c.Call(context.Background(), "x")
	require.ErrorIs(t, err, errBoom)
}

// TestCall_ContextCanceled tests that a canceled caller returns and its call never runs.
func TestCall_ContextCanceled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := NewCall(func(context.Context, int) (int, error) {
		calls.Add(1)

		return 0, nil
	}, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), testDelay)
	defer cancel()

	_, err := c.Call(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	c.mu.Lock()
	defer c.mu.Unlock()

	assert.Nil(t, c.waiter)
	assert.Nil(t, c.timer)
	assert.Equal(t, int32(0), calls.Load())
}
