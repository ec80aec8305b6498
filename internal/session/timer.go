package session

import "fmt"

// TimerMode selects between counting down from a limit and counting up.
type TimerMode int

const (
	Countdown TimerMode = iota
	Stopwatch
)

// lowTimeThreshold is the remaining-seconds mark at which a countdown
// is displayed in the alert colour.
const lowTimeThreshold = 60

// Timer is the single per-session clock, one-second resolution. It
// holds no tick source of its own: the owner feeds it serialized ticks
// through Session.HandleTick, so stopping is a plain state change and
// a stale tick can never mutate a replaced session.
type Timer struct {
	Mode      TimerMode
	Remaining int // seconds left, Countdown only
	Elapsed   int // seconds passed, Stopwatch only
	Running   bool
}

func newCountdown(seconds int) Timer {
	return Timer{Mode: Countdown, Remaining: seconds, Running: true}
}

func newStopwatch(elapsed int) Timer {
	return Timer{Mode: Stopwatch, Elapsed: elapsed, Running: true}
}

// tick advances the timer by one second and reports whether a
// countdown just expired. A stopped timer never advances.
func (t *Timer) tick() (expired bool) {
	if !t.Running {
		return false
	}
	switch t.Mode {
	case Countdown:
		t.Remaining--
		if t.Remaining <= 0 {
			t.Remaining = 0
			t.Running = false
			return true
		}
	case Stopwatch:
		t.Elapsed++
	}
	return false
}

// stop halts the timer. Idempotent.
func (t *Timer) stop() {
	t.Running = false
}

// Seconds returns the displayed value: remaining for a countdown,
// elapsed for a stopwatch.
func (t Timer) Seconds() int {
	if t.Mode == Countdown {
		return t.Remaining
	}
	return t.Elapsed
}

// Display formats the timer as mm:ss.
func (t Timer) Display() string {
	s := t.Seconds()
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// LowTime reports whether a running countdown is inside the alert
// threshold.
func (t Timer) LowTime() bool {
	return t.Mode == Countdown && t.Remaining <= lowTimeThreshold
}
