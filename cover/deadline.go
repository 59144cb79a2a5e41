package cover

import "time"

// deadline is a fixed wall-clock limit, computed once when a solve starts.
type deadline struct {
	at  time.Time
	now func() time.Time
}

func newDeadline(now func() time.Time, timeout time.Duration) deadline {
	return deadline{at: now().Add(timeout), now: now}
}

// passed is true once the current time has reached the limit. A zero
// timeout has therefore always passed.
func (d deadline) passed() bool {
	return !d.now().Before(d.at)
}
