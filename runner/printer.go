package runner

import (
	"fmt"
	"strings"
	"time"

	"github.com/domino14/lettercover/history"
)

// Result is the outcome of one solve.
type Result struct {
	Pool        string
	Words       []string
	LettersUsed int
	Unused      int
	Candidates  int
	Nodes       uint64
	TimedOut    bool
	Timeout     time.Duration
	Elapsed     time.Duration
}

func (r *Result) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Best word set: %v\n", r.Words)
	fmt.Fprintf(&sb, "Letters unused: %d", r.Unused)
	return sb.String()
}

// Details adds the search statistics.
func (r *Result) Details() string {
	status := "complete"
	if r.TimedOut {
		status = "timed out"
	}
	return fmt.Sprintf("%s\nPool: %s (%d letters), %d candidates, %d nodes, %v (%s)",
		r.ToDisplayText(), r.Pool, len(r.Pool), r.Candidates, r.Nodes,
		r.Elapsed.Round(time.Millisecond), status)
}

func (r *Result) historyEntry() *history.Entry {
	return &history.Entry{
		Pool:        r.Pool,
		Words:       r.Words,
		LettersUsed: r.LettersUsed,
		Unused:      r.Unused,
		Candidates:  r.Candidates,
		Nodes:       r.Nodes,
		TimedOut:    r.TimedOut,
		Timeout:     r.Timeout,
		Elapsed:     r.Elapsed,
	}
}
