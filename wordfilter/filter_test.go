package wordfilter

import (
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/lettercover/cover"
	"github.com/domino14/lettercover/letterpool"
	"github.com/domino14/lettercover/lexicon"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func texts(ws []letterpool.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

func TestTwoLetterWordCount(t *testing.T) {
	is := is.New(t)
	is.Equal(len(TwoLetterWords), 112)
}

func TestFilter(t *testing.T) {
	is := is.New(t)
	pool := letterpool.MustFromString("CATS")
	dict := []string{"CAT", "A", "AT", "TA", "SC", "CATS", "ACTS", "CATTS", "DOG", "SAT", "SCAT", "TACT"}

	got := texts(Filter(dict, pool, DefaultOptions()))
	is.Equal(got, []string{"CAT", "AT", "TA", "CATS", "ACTS", "SAT", "SCAT"})

	got = texts(Filter(dict, pool, Options{MinLength: 1}))
	is.Equal(got, []string{"CAT", "A", "AT", "TA", "SC", "CATS", "ACTS", "SAT", "SCAT"})

	got = texts(Filter(dict, pool, Options{MinLength: 4}))
	is.Equal(got, []string{"CATS", "ACTS", "SCAT"})
}

func TestFilterValidator(t *testing.T) {
	is := is.New(t)
	pool := letterpool.MustFromString("CATS")
	opts := DefaultOptions()
	opts.Validator = lexicon.NewSetValidator([]string{"CAT", "SCAT", "DOG"})
	got := texts(Filter([]string{"CAT", "ACTS", "SCAT", "DOG"}, pool, opts))
	is.Equal(got, []string{"CAT", "SCAT"})
}

func TestFilterDropsNonAlphabetic(t *testing.T) {
	is := is.New(t)
	pool := letterpool.MustFromString("CATS")
	got := texts(Filter([]string{"CA'T", "ca", "C-A"}, pool, Options{MinLength: 2}))
	is.Equal(got, []string{"CA"})
}

func TestFilterThenSolveTie(t *testing.T) {
	// The one-letter A never reaches the solver, so the best cover of
	// AAT is a single two-letter word, chosen by dictionary order.
	is := is.New(t)
	pool := letterpool.MustFromString("AAT")
	cands := Filter([]string{"AT", "TA", "A"}, pool, DefaultOptions())

	s := &cover.Solver{}
	s.Init(pool, cands)
	sol := s.Solve(cover.DefaultTimeout)
	is.Equal(sol.LettersUsed, 2)
	is.Equal(sol.Words, []string{"AT"})
}
