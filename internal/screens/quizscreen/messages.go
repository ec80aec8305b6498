package quizscreen

import (
	"time"

	sess "quizdeck/internal/session"
)

// tickMsg is sent every second to advance the session timer. It carries
// the owning session so ticks scheduled by an abandoned screen are
// discarded instead of double-counting against the active one.
type tickMsg struct {
	owner *sess.Session
	at    time.Time
}

// submitMsg is sent to run the submit flow after any confirmation.
type submitMsg struct{}
