package engine

import "time"

// Clock provides the tick time source. The scheduler samples it once
// per loop iteration
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time with monotonic readings
type SystemClock struct{}

// NewSystemClock creates a system-backed clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
