package datetime

import "time"

//go:generate $MOCKGEN -source=clock.go -destination=mocks/clock_mock.go

// Clock is an interface that defines a method for retrieving the current time.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
