package core

import "time"

// TimerMode selects timer behavior on expiry
type TimerMode uint8

const (
	// TimerOnce expires exactly once and then stays finished
	TimerOnce TimerMode = iota
	// TimerRepeating wraps elapsed time and fires again every Duration
	TimerRepeating
)

// Timer is a delta-driven countdown compared against accumulated elapsed time
// Zero value is a finished-immediately Once timer; construct with NewTimer
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	finished      bool
	timesFinished uint32 // Expirations during the last Tick
}

// NewTimer creates a stopped-at-zero timer
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by dt and returns true if it expired during this tick
func (t *Timer) Tick(dt time.Duration) bool {
	t.timesFinished = 0

	if t.Mode == TimerOnce && t.finished {
		return false
	}
	if dt < 0 {
		dt = 0
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		t.finished = false
		return false
	}

	switch t.Mode {
	case TimerRepeating:
		if t.Duration <= 0 {
			t.timesFinished = 1
			t.Elapsed = 0
		} else {
			t.timesFinished = uint32(t.Elapsed / t.Duration)
			t.Elapsed %= t.Duration
		}
	default:
		t.timesFinished = 1
		t.Elapsed = t.Duration
	}
	t.finished = true
	return true
}

// JustFinished reports whether the last Tick expired the timer
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinished returns the number of expirations during the last Tick
// A Repeating timer ticked past several periods reports more than one
func (t *Timer) TimesFinished() uint32 {
	return t.timesFinished
}

// Finished reports whether the timer has reached its duration
// For Repeating timers this only holds on the tick that wrapped
func (t *Timer) Finished() bool {
	return t.finished
}

// Remaining returns time until the next expiry
func (t *Timer) Remaining() time.Duration {
	if t.Mode == TimerOnce && t.finished {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Reset rewinds the timer to zero elapsed
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
