package lexicon

import (
	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"
)

// A Validator is an extra check a buildable word must pass before it
// becomes a candidate, such as a spell check.
type Validator interface {
	Name() string
	IsValid(word string) bool
}

// AcceptAll accepts every word.
type AcceptAll struct{}

func (AcceptAll) Name() string {
	return "AcceptAll"
}

func (AcceptAll) IsValid(word string) bool {
	return true
}

// KWGValidator accepts the words of a KWG lexicon, e.g. NWL23 or CSW24.
type KWGValidator struct {
	name string
	lex  kwg.Lexicon
	alph *tilemapping.TileMapping
}

func NewKWGValidator(cfg *wglconfig.Config, lexiconName string) (*KWGValidator, error) {
	k, err := kwg.GetKWG(cfg, lexiconName)
	if err != nil {
		return nil, err
	}
	return &KWGValidator{name: lexiconName, lex: kwg.Lexicon{KWG: *k}, alph: k.GetAlphabet()}, nil
}

func (v *KWGValidator) Name() string {
	return v.name
}

func (v *KWGValidator) IsValid(word string) bool {
	mw, err := tilemapping.ToMachineWord(word, v.alph)
	if err != nil {
		return false
	}
	return v.lex.HasWord(mw)
}

// SetValidator accepts exactly the words in a set.
type SetValidator map[string]struct{}

func NewSetValidator(words []string) SetValidator {
	sv := make(SetValidator, len(words))
	for _, w := range words {
		sv[w] = struct{}{}
	}
	return sv
}

func (sv SetValidator) Name() string {
	return "set"
}

func (sv SetValidator) IsValid(word string) bool {
	_, ok := sv[word]
	return ok
}
