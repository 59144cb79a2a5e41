// Package cover finds a subset of candidate words that uses as many
// letters of a pool as possible, with no letter used more often than the
// pool holds it. The search is a depth-first branch-and-bound over the
// candidates ordered longest first, seeded with a single greedy word and
// cut off by a wall-clock deadline. When the deadline fires the best
// subset found so far is returned.
package cover

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lettercover/letterpool"
)

// DefaultTimeout is the wall-clock budget used when none is configured.
const DefaultTimeout = 15 * time.Second

// SecondsToTimeout converts a timeout in seconds to a Duration. Values too
// large for a Duration, including +Inf, saturate at the largest one.
func SecondsToTimeout(secs float64) time.Duration {
	if math.IsNaN(secs) {
		return 0
	}
	if secs >= float64(math.MaxInt64)/float64(time.Second) {
		return math.MaxInt64
	}
	if secs <= float64(math.MinInt64)/float64(time.Second) {
		return math.MinInt64
	}
	return time.Duration(secs * float64(time.Second))
}

// Solution is the best subset found by a search.
type Solution struct {
	// Words are in the order the search chose them.
	Words       []string
	LettersUsed int
	// Nodes is the number of search nodes entered.
	Nodes uint64
	// TimedOut is true if the deadline stopped the search before it
	// exhausted the tree. The Words are then not necessarily optimal.
	TimedOut bool
	Elapsed  time.Duration
}

// ImprovementFunc is called each time the search records a better subset.
// The words slice belongs to the callee.
type ImprovementFunc func(words []string, lettersUsed int)

// Solver searches one pool at a time. It is not safe for concurrent use.
type Solver struct {
	pool       letterpool.Pool
	candidates []letterpool.Word
	bound      []int

	clock     func() time.Time
	onImprove ImprovementFunc

	nodes    uint64
	timedOut bool
}

// Init sets up the solver for one pool and its candidate words. The
// candidates must each be buildable from the pool on their own; this is
// not checked.
func (s *Solver) Init(pool letterpool.Pool, candidates []letterpool.Word) {
	s.pool = pool
	s.candidates = orderCandidates(candidates)
	s.bound = suffixBound(s.candidates)
	if s.clock == nil {
		s.clock = time.Now
	}
}

// SetClock replaces the wall clock, mostly for tests.
func (s *Solver) SetClock(clock func() time.Time) {
	s.clock = clock
}

// SetImprovementCallback registers f to be called on every new best subset.
func (s *Solver) SetImprovementCallback(f ImprovementFunc) {
	s.onImprove = f
}

// Candidates returns the candidates in search order.
func (s *Solver) Candidates() []letterpool.Word {
	return s.candidates
}

// Solve runs the search for at most timeout. It can be called more than
// once; every call starts from scratch.
func (s *Solver) Solve(timeout time.Duration) Solution {
	if s.clock == nil {
		s.clock = time.Now
	}
	start := s.clock()
	dl := newDeadline(s.clock, timeout)
	s.nodes = 0
	s.timedOut = false

	best := &bestSolution{}
	path := &searchPath{}
	pool := s.pool
	rootIdx := 0

	if seed := greedySeed(s.candidates, s.pool); seed >= 0 {
		w := s.candidates[seed]
		path.push(w)
		pool = pool.Subtract(w)
		s.record(best, path)
		// The seed's letters are spent, so the root must not be able
		// to choose it again.
		rootIdx = seed + 1
		log.Debug().Str("seed", w.String()).Msg("greedy-seed")
	}

	log.Info().Int("candidates", len(s.candidates)).
		Int("pool-size", s.pool.TotalRemaining()).
		Dur("timeout", timeout).Msg("starting-search")

	s.search(rootIdx, pool, path, best, dl)

	sol := Solution{
		Words:       best.words,
		LettersUsed: best.lettersUsed,
		Nodes:       s.nodes,
		TimedOut:    s.timedOut,
		Elapsed:     s.clock().Sub(start),
	}
	if sol.Words == nil {
		sol.Words = []string{}
	}
	log.Info().Int("letters-used", sol.LettersUsed).
		Uint64("nodes", sol.Nodes).
		Bool("timed-out", sol.TimedOut).
		Dur("elapsed", sol.Elapsed).Msg("search-done")
	return sol
}

// record copies the current path into best. path keeps mutating after
// this, so the copy must not alias it.
func (s *Solver) record(best *bestSolution, path *searchPath) {
	best.words = path.snapshot()
	best.lettersUsed = path.lettersUsed
	log.Debug().Int("letters-used", best.lettersUsed).
		Strs("words", best.words).Msg("new-best")
	if s.onImprove != nil {
		s.onImprove(path.snapshot(), best.lettersUsed)
	}
}

// FindBestCover is a convenience wrapper around a Solver. The letters and
// candidate words must be alphabetic; it panics otherwise.
func FindBestCover(letters string, candidates []string, timeout time.Duration) ([]string, int) {
	pool := letterpool.MustFromString(letters)
	words := make([]letterpool.Word, len(candidates))
	for i, c := range candidates {
		words[i] = letterpool.MustWord(c)
	}
	s := &Solver{}
	s.Init(pool, words)
	sol := s.Solve(timeout)
	return sol.Words, sol.LettersUsed
}
