// Package debounce delays a function until calls to it have stopped arriving for a while.
//
// Debouncer and Func are fire-and-forget. Call is the awaitable form: every caller
// waits for the result, and callers replaced by a later call get ErrSuperseded.
package debounce
