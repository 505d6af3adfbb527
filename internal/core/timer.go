package core

import "time"

// TimerMode selects whether a Timer stops at its duration or wraps around.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer tracks elapsed time against a fixed duration.
// It is a plain value advanced only by explicit Tick calls; it never reads the
// wall clock. Durations are integral so frame splits that sum to the duration
// finish on exactly that frame.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	finished      bool
	timesFinished int
}

// NewTimer creates a timer of the given duration and mode.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// TimerFromSeconds creates a timer from a duration in seconds.
func TimerFromSeconds(secs float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(secs*float64(time.Second)), mode)
}

// Tick advances the timer by dt.
//
// A one-shot timer clamps elapsed at its duration and stays finished; further
// ticks clear the just-finished edge. A repeating timer wraps elapsed modulo
// its duration and is just-finished on every frame in which it wrapped at
// least once.
func (t *Timer) Tick(dt time.Duration) *Timer {
	if t.mode == TimerOnce && t.finished {
		t.timesFinished = 0
		return t
	}

	t.elapsed += dt
	t.finished = t.elapsed >= t.duration
	if !t.finished {
		t.timesFinished = 0
		return t
	}

	if t.mode == TimerRepeating && t.duration > 0 {
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	} else {
		t.timesFinished = 1
		t.elapsed = t.duration
	}
	return t
}

// Finished reports whether the timer has reached its duration.
// For repeating timers it is true only on frames where the timer wrapped.
func (t Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick crossed the duration.
func (t Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinished returns how many periods the last Tick completed.
func (t Timer) TimesFinished() int {
	return t.timesFinished
}

// Elapsed returns time accumulated since start (or since the last wrap).
func (t Timer) Elapsed() time.Duration {
	return t.elapsed
}

// ElapsedSecs returns Elapsed in seconds.
func (t Timer) ElapsedSecs() float32 {
	return float32(t.elapsed.Seconds())
}

// Duration returns the configured duration.
func (t Timer) Duration() time.Duration {
	return t.duration
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
