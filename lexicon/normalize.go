package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer uppercases words and strips diacritics, so that CAFÉ and
// café both become CAFE. It is not safe for concurrent use.
type Normalizer struct {
	fold  transform.Transformer
	upper cases.Caser
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		fold:  transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		upper: cases.Upper(language.Und),
	}
}

// Normalize returns the normalized word, and false if the word is empty
// or still contains anything other than A-Z.
func (n *Normalizer) Normalize(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", false
	}
	folded, _, err := transform.String(n.fold, word)
	if err != nil {
		return "", false
	}
	up := n.upper.String(folded)
	for _, r := range up {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return up, true
}

// Normalize is a one-off Normalizer.Normalize.
func Normalize(word string) (string, bool) {
	return NewNormalizer().Normalize(word)
}
