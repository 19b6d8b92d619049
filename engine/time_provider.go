package engine

import "time"

// TimeSource supplies wall-clock readings for session bookkeeping
type TimeSource interface {
	Now() time.Time
}

// TimeProvider reads the real system clock
type TimeProvider struct{}

// NewTimeProvider creates a monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
