package core

import "time"

// TimeProvider abstracts time for the domain so tests can pin the clock
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
