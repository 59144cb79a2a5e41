package cover

import (
	"github.com/domino14/lettercover/letterpool"
)

// bestSolution is the best subset seen across the whole search. It only
// ever improves.
type bestSolution struct {
	words       []string
	lettersUsed int
}

// searchPath holds the words chosen on the current branch. Every push is
// matched by exactly one pop.
type searchPath struct {
	words       []letterpool.Word
	lettersUsed int
}

func (p *searchPath) push(w letterpool.Word) {
	p.words = append(p.words, w)
	p.lettersUsed += w.Len()
}

func (p *searchPath) pop() {
	w := p.words[len(p.words)-1]
	p.words = p.words[:len(p.words)-1]
	p.lettersUsed -= w.Len()
}

func (p *searchPath) snapshot() []string {
	out := make([]string, len(p.words))
	for i, w := range p.words {
		out[i] = w.String()
	}
	return out
}

// search explores every subset of candidates[idx:] that fits in pool,
// added on to the words already in path.
func (s *Solver) search(idx int, pool letterpool.Pool, path *searchPath,
	best *bestSolution, dl deadline) {

	s.nodes++
	if dl.passed() {
		s.timedOut = true
		return
	}
	if path.lettersUsed+s.bound[idx] <= best.lettersUsed {
		return
	}
	if path.lettersUsed > best.lettersUsed {
		s.record(best, path)
	}

	for i := idx; i < len(s.candidates); i++ {
		w := s.candidates[i]
		if w.Len() > pool.TotalRemaining() {
			continue
		}
		if !pool.CanAfford(w) {
			continue
		}
		path.push(w)
		s.search(i+1, pool.Subtract(w), path, best, dl)
		path.pop()
		if s.timedOut {
			// Every node below here would return at once anyway.
			return
		}
	}
}
