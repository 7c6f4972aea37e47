// Package datetime provides date helpers over Unix timestamps (seconds) and time.Time values:
// recency checks, calendar formatting and human-readable relative times.
// Time-dependent helpers read the current time through a Clock so tests can pin it.
package datetime
