// Package wordfilter narrows a dictionary down to the candidate words for
// one letter pool.
package wordfilter

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/lettercover/letterpool"
	"github.com/domino14/lettercover/lexicon"
)

// DefaultMinLength rejects one-letter words outright.
const DefaultMinLength = 2

// TwoLetterWords are the North American two-letter words, without
// abbreviations.
var TwoLetterWords = lo.SliceToMap([]string{
	"AA", "AB", "AD", "AE", "AG", "AH", "AI", "AL", "AM", "AN", "AR", "AS", "AT", "AW", "AX",
	"AY", "BA", "BE", "BI", "BO", "BY", "DA", "DE", "DO", "ED", "EF", "EH", "EL", "EM", "EN",
	"ER", "ES", "ET", "EW", "EX", "FA", "FE", "GO", "GU", "HA", "HE", "HI", "HM", "HO", "ID",
	"IF", "IN", "IS", "IT", "JA", "JO", "KA", "KI", "LA", "LI", "LO", "MA", "ME", "MI", "MM",
	"MO", "MU", "MY", "NA", "NE", "NO", "NU", "OD", "OE", "OF", "OH", "OI", "OK", "OM", "ON",
	"OO", "OP", "OR", "OS", "OU", "OW", "OX", "OY", "PA", "PE", "PI", "PO", "QI", "RE", "SH",
	"SI", "SO", "TA", "TE", "TI", "TO", "UH", "UM", "UN", "UP", "UR", "US", "UT", "WE", "WO",
	"XI", "XU", "YA", "YE", "YO", "YU", "ZA",
}, func(w string) (string, struct{}) { return w, struct{}{} })

type Options struct {
	MinLength          int
	TwoLetterWhitelist bool
	// Validator, if set, is consulted only for words that are otherwise
	// buildable, since it may be slow.
	Validator lexicon.Validator
}

func DefaultOptions() Options {
	return Options{MinLength: DefaultMinLength, TwoLetterWhitelist: true}
}

// Filter returns the words that can each be built from pool on its own
// and that pass the rules in opts, in their original order. Words that
// are not purely A-Z are dropped.
func Filter(words []string, pool letterpool.Pool, opts Options) []letterpool.Word {
	candidates := make([]letterpool.Word, 0, len(words)/8)
	for _, w := range words {
		if len(w) < opts.MinLength {
			continue
		}
		if opts.TwoLetterWhitelist && len(w) == 2 {
			if _, ok := TwoLetterWords[w]; !ok {
				continue
			}
		}
		if len(w) > pool.TotalRemaining() {
			continue
		}
		lw, err := letterpool.NewWord(w)
		if err != nil {
			continue
		}
		if !pool.CanAfford(lw) {
			continue
		}
		if opts.Validator != nil && !opts.Validator.IsValid(lw.String()) {
			continue
		}
		candidates = append(candidates, lw)
	}
	log.Info().Int("candidates", len(candidates)).Int("dictionary", len(words)).
		Msg("filtered-candidate-words")
	return candidates
}
