package cover

import (
	"slices"

	"github.com/domino14/lettercover/letterpool"
)

// orderCandidates returns a copy of words sorted longest first. Words of
// equal length keep the order they came in; both the suffix bound and the
// index-ordered branching depend on this order being fixed.
func orderCandidates(words []letterpool.Word) []letterpool.Word {
	ordered := slices.Clone(words)
	slices.SortStableFunc(ordered, func(a, b letterpool.Word) int {
		return b.Len() - a.Len()
	})
	return ordered
}

// suffixBound returns a slice one longer than words where entry i is the
// total length of words[i:]. No subset drawn from words[i:] can use more
// letters than that.
func suffixBound(words []letterpool.Word) []int {
	bound := make([]int, len(words)+1)
	for i := len(words) - 1; i >= 0; i-- {
		bound[i] = bound[i+1] + words[i].Len()
	}
	return bound
}

// greedySeed returns the index of the first (and so the longest) word
// that the pool can afford, or -1 if there is none. It only ever picks a
// single word.
func greedySeed(words []letterpool.Word, pool letterpool.Pool) int {
	for i, w := range words {
		if pool.CanAfford(w) {
			return i
		}
	}
	return -1
}
