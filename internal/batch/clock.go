package batch

import "time"

// Clock abstracts the time source used for pacing and backoff so tests can
// simulate elapsed time deterministically instead of sleeping for real.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// realClock delegates to the wall clock.
type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// RealClock returns the wall-clock implementation used in production.
func RealClock() Clock {
	return realClock{}
}
