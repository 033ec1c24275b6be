package engine

import "time"

// TimeSource abstracts wall-clock reads so clocks can be driven in tests
type TimeSource interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
