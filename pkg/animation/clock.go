package animation

import "time"

// Clock supplies the time used to start snaps and step tickers. Hosts that
// run their own frame clock, and tests, swap it with SetClock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// systemClock reads wall time.
var systemClock = ClockFunc(time.Now)

var clock Clock = systemClock

// SetClock replaces the package clock and returns the previous one so the
// caller can restore it. A nil clock restores wall time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
