// Package clock abstracts wall-clock time and one-shot timers so the login
// gate and the inactivity monitor can be driven by a fake clock in tests.
package clock

import "time"

// Timer is a handle to a pending callback scheduled with AfterFunc.
// Stop reports whether it prevented the callback from running. Calling Stop
// on a fired or already stopped timer is a no-op that returns false.
type Timer interface {
	Stop() bool
}

// Clock provides the current time and deferred execution.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is the Clock backed by the time package.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
