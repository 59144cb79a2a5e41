package letterpool

import (
	"errors"
	"fmt"
	"strings"
)

// NumLetters is the size of the fixed alphabet, A through Z.
const NumLetters = 26

var ErrNotALetter = errors.New("not a letter")

// Pool is a multiset of letters. Letter A is at index 0, B at 1, and so on.
// Pools are values; copying a Pool copies all of its counts, so a search
// branch can subtract from its own copy without affecting its siblings.
type Pool struct {
	counts [NumLetters]int
	// total is kept in step with counts so that TotalRemaining never has
	// to sum the array.
	total int
}

// index returns the alphabet index of r, folding lowercase ASCII to uppercase.
func index(r rune) (int, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNotALetter, r)
}

// FromString creates a pool out of the given letters. Case is ignored and
// duplicates are meaningful.
func FromString(letters string) (Pool, error) {
	var p Pool
	for _, r := range letters {
		i, err := index(r)
		if err != nil {
			return Pool{}, err
		}
		p.counts[i]++
		p.total++
	}
	return p, nil
}

// MustFromString is like FromString but panics on bad input.
func MustFromString(letters string) Pool {
	p, err := FromString(letters)
	if err != nil {
		panic(err)
	}
	return p
}

// CanAfford returns true if every letter of w is available in the pool at
// least as many times as it occurs in w.
func (p Pool) CanAfford(w Word) bool {
	if w.length > p.total {
		return false
	}
	for _, lc := range w.letters {
		if p.counts[lc.idx] < lc.count {
			return false
		}
	}
	return true
}

// Subtract returns a copy of the pool with the letters of w taken out.
// The caller must have checked CanAfford first; a count going below
// zero means that contract was broken, and we panic.
func (p Pool) Subtract(w Word) Pool {
	for _, lc := range w.letters {
		p.counts[lc.idx] -= lc.count
		if p.counts[lc.idx] < 0 {
			panic(fmt.Sprintf("letterpool: subtracting %v from pool %v leaves a negative count",
				w, p.String()))
		}
	}
	p.total -= w.length
	return p
}

// Add returns a copy of the pool with the letters of w put back.
func (p Pool) Add(w Word) Pool {
	for _, lc := range w.letters {
		p.counts[lc.idx] += lc.count
	}
	p.total += w.length
	return p
}

// TotalRemaining is the number of letters in the pool.
func (p Pool) TotalRemaining() int {
	return p.total
}

// Count returns how many of the given letter are in the pool.
func (p Pool) Count(letter rune) int {
	i, err := index(letter)
	if err != nil {
		return 0
	}
	return p.counts[i]
}

// Counts returns the raw per-letter counts.
func (p Pool) Counts() [NumLetters]int {
	return p.counts
}

// String returns the pool's letters in alphabetical order.
func (p Pool) String() string {
	var sb strings.Builder
	sb.Grow(p.total)
	for i, ct := range p.counts {
		for j := 0; j < ct; j++ {
			sb.WriteByte(byte('A' + i))
		}
	}
	return sb.String()
}
