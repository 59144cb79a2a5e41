// Package lexicon supplies the word lists the solver draws candidates
// from, and optional validators that a candidate word must pass.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/domino14/word-golib/cache"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var ErrNoDictionary = errors.New("no dictionary available")

// A Source returns a list of uppercase words.
type Source interface {
	Name() string
	Words() ([]string, error)
}

// FileSource reads a newline-delimited word list. If Limit is positive,
// only the first Limit lines are considered, which keeps the top of a
// frequency-ordered list.
type FileSource struct {
	Path  string
	Limit int
}

func (fs FileSource) Name() string {
	if fs.Limit > 0 {
		return fmt.Sprintf("file:%s:%d", fs.Path, fs.Limit)
	}
	return "file:" + fs.Path
}

func (fs FileSource) Words() ([]string, error) {
	f, _, err := cache.Open(fs.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f, fs.Limit)
}

// ReadWords reads one word per line. Lines that do not normalize to a
// purely alphabetic word are dropped. Repeated words are kept; each copy
// is a separate candidate.
func ReadWords(r io.Reader, limit int) ([]string, error) {
	n := NewNormalizer()
	scanner := bufio.NewScanner(r)
	words := []string{}
	lines := 0
	for scanner.Scan() {
		if limit > 0 && lines >= limit {
			break
		}
		lines++
		w, ok := n.Normalize(scanner.Text())
		if !ok {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// StaticSource is a fixed, already-uppercase word list.
type StaticSource struct {
	Label string
	List  []string
}

func (ss StaticSource) Name() string {
	return "static:" + ss.Label
}

func (ss StaticSource) Words() ([]string, error) {
	return ss.List, nil
}

// ChainSource returns the words of the first of its sources that loads.
type ChainSource []Source

func (cs ChainSource) Name() string {
	names := lo.Map(cs, func(s Source, _ int) string { return s.Name() })
	return fmt.Sprintf("chain%v", names)
}

func (cs ChainSource) Words() ([]string, error) {
	t0 := time.Now()
	var lastErr error
	for _, s := range cs {
		log.Debug().Str("source", s.Name()).Msg("loading-dictionary")
		words, err := s.Words()
		if err != nil {
			log.Debug().Err(err).Str("source", s.Name()).Msg("dictionary-source-failed")
			lastErr = err
			continue
		}
		log.Info().Int("words", len(words)).Str("source", s.Name()).
			Dur("elapsed", time.Since(t0)).Msg("loaded-dictionary")
		return words, nil
	}
	if lastErr == nil {
		return nil, ErrNoDictionary
	}
	return nil, fmt.Errorf("%w: %w", ErrNoDictionary, lastErr)
}
