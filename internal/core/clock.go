package core

import "time"

// Clock supplies wall-clock time. Games that measure durations take a Clock
// so tests can drive time explicitly.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
