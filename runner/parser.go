package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/lettercover/letterpool"
	"github.com/domino14/lettercover/lexicon"
)

var ErrBadPool = errors.New("letters must be alphabetic")

// ParsePool turns user input into a pool. Case and accents are ignored;
// anything else that is not a letter is an error. An empty string is an
// empty pool.
func ParsePool(letters string) (letterpool.Pool, error) {
	if strings.TrimSpace(letters) == "" {
		return letterpool.Pool{}, nil
	}
	norm, ok := lexicon.Normalize(letters)
	if !ok {
		return letterpool.Pool{}, fmt.Errorf("%w: %q", ErrBadPool, letters)
	}
	return letterpool.FromString(norm)
}
