// Package letterdist generates random letter pools.
package letterdist

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"
)

var (
	ErrBagTooSmall     = errors.New("not enough tiles in the bag")
	ErrBadDistribution = errors.New("bad letter distribution")
)

// A Distribution samples n letters at a time.
type Distribution interface {
	Name() string
	Sample(n int) (string, error)
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// EnglishFrequencies are rough percentages of each letter in English text.
var EnglishFrequencies = map[rune]float64{
	'E': 12.0, 'T': 9.1, 'A': 8.2, 'O': 7.5, 'I': 7.0, 'N': 6.7,
	'S': 6.3, 'R': 6.0, 'H': 5.1, 'L': 4.0, 'D': 3.8, 'C': 3.2,
	'U': 2.8, 'M': 2.4, 'F': 2.2, 'Y': 2.0, 'W': 2.0, 'G': 2.0,
	'P': 1.9, 'B': 1.5, 'V': 1.0, 'K': 0.8, 'X': 0.2, 'Q': 0.1,
	'J': 0.15, 'Z': 0.07,
}

// ScrabbleTiles is the English Scrabble bag without its two blanks.
var ScrabbleTiles = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1,
}

func defaultRNG(rng *frand.RNG) *frand.RNG {
	if rng == nil {
		return frand.New()
	}
	return rng
}

// SeededRNG returns a reproducible RNG.
func SeededRNG(seed uint64) *frand.RNG {
	s := make([]byte, 32)
	for i := 0; i < 8; i++ {
		s[i] = byte(seed >> (8 * i))
	}
	return frand.NewCustom(s, 1024, 12)
}

// Uniform picks each letter of A-Z with equal probability.
type Uniform struct {
	rng *frand.RNG
}

func NewUniform(rng *frand.RNG) *Uniform {
	return &Uniform{rng: defaultRNG(rng)}
}

func (u *Uniform) Name() string { return "uniform" }

func (u *Uniform) Sample(n int) (string, error) {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[u.rng.Intn(len(alphabet))])
	}
	return sb.String(), nil
}

// Weighted picks letters with replacement, in proportion to their weights.
type Weighted struct {
	name       string
	letters    []rune
	cumulative []float64
	rng        *frand.RNG
}

// NewWeighted builds a sampler from letter weights. Weights need not sum
// to anything in particular but must be non-negative with a positive total.
func NewWeighted(name string, weights map[rune]float64, rng *frand.RNG) (*Weighted, error) {
	letters := lo.Keys(weights)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	w := make([]float64, len(letters))
	for i, l := range letters {
		if l < 'A' || l > 'Z' {
			return nil, fmt.Errorf("%w: letter %q", ErrBadDistribution, l)
		}
		if weights[l] < 0 {
			return nil, fmt.Errorf("%w: negative weight for %c", ErrBadDistribution, l)
		}
		w[i] = weights[l]
	}
	if len(w) == 0 || floats.Sum(w) <= 0 {
		return nil, fmt.Errorf("%w: weights must add up to more than zero", ErrBadDistribution)
	}
	return &Weighted{
		name:       name,
		letters:    letters,
		cumulative: floats.CumSum(make([]float64, len(w)), w),
		rng:        defaultRNG(rng),
	}, nil
}

// NewFrequency samples by English letter frequency.
func NewFrequency(rng *frand.RNG) *Weighted {
	w, err := NewWeighted("frequency", EnglishFrequencies, rng)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Weighted) Name() string { return w.name }

func (w *Weighted) Sample(n int) (string, error) {
	total := w.cumulative[len(w.cumulative)-1]
	var sb strings.Builder
	for i := 0; i < n; i++ {
		r := w.float64() * total
		idx := sort.SearchFloat64s(w.cumulative, r)
		// SearchFloat64s finds the first entry >= r; an exact hit on a
		// boundary belongs to the next letter.
		for idx < len(w.cumulative)-1 && w.cumulative[idx] <= r {
			idx++
		}
		sb.WriteRune(w.letters[idx])
	}
	return sb.String(), nil
}

func (w *Weighted) float64() float64 {
	return float64(w.rng.Uint64n(1<<53)) / (1 << 53)
}

// Scrabble draws tiles from a full bag, without replacement.
type Scrabble struct {
	bag []rune
	rng *frand.RNG
}

func NewScrabble(rng *frand.RNG) *Scrabble {
	bag := []rune{}
	for _, l := range alphabet {
		for i := 0; i < ScrabbleTiles[l]; i++ {
			bag = append(bag, l)
		}
	}
	return &Scrabble{bag: bag, rng: defaultRNG(rng)}
}

func (s *Scrabble) Name() string { return "scrabble" }

func (s *Scrabble) Sample(n int) (string, error) {
	if n > len(s.bag) {
		return "", fmt.Errorf("%w: cannot draw %d, bag has only %d tiles", ErrBagTooSmall, n, len(s.bag))
	}
	perm := s.rng.Perm(len(s.bag))
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		out[i] = s.bag[perm[i]]
	}
	return string(out), nil
}

type customFile struct {
	Name    string             `yaml:"name"`
	Weights map[string]float64 `yaml:"weights"`
}

// LoadCustom reads a YAML distribution file:
//
//	name: vowel-heavy
//	weights:
//	  A: 5
//	  E: 5
//	  T: 1
func LoadCustom(path string, rng *frand.RNG) (*Weighted, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCustom(bts, rng)
}

func ParseCustom(data []byte, rng *frand.RNG) (*Weighted, error) {
	cf := customFile{}
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	weights := map[rune]float64{}
	for k, v := range cf.Weights {
		letter := []rune(strings.ToUpper(k))
		if len(letter) != 1 {
			return nil, fmt.Errorf("%w: key %q is not a single letter", ErrBadDistribution, k)
		}
		weights[letter[0]] += v
	}
	name := cf.Name
	if name == "" {
		name = "custom"
	}
	return NewWeighted(name, weights, rng)
}

// ByName returns one of the built-in distributions. A name ending in
// .yaml or .yml is loaded as a custom distribution file.
func ByName(name string, rng *frand.RNG) (Distribution, error) {
	lname := strings.ToLower(name)
	switch {
	case lname == "uniform":
		return NewUniform(rng), nil
	case lname == "frequency":
		return NewFrequency(rng), nil
	case lname == "scrabble" || lname == "english":
		return NewScrabble(rng), nil
	case strings.HasSuffix(lname, ".yaml") || strings.HasSuffix(lname, ".yml"):
		return LoadCustom(name, rng)
	}
	return nil, fmt.Errorf("%w: unknown distribution %q", ErrBadDistribution, name)
}
