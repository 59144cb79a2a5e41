package letterpool

import "strings"

type letterCount struct {
	idx   int
	count int
}

// Word is an uppercase word with its letter multiplicities counted up
// front, so that checking it against a pool only touches the distinct
// letters it uses.
type Word struct {
	text    string
	letters []letterCount
	length  int
}

// NewWord builds a Word. The text is uppercased; any rune outside A-Z
// is an error.
func NewWord(text string) (Word, error) {
	var counts [NumLetters]int
	n := 0
	for _, r := range text {
		i, err := index(r)
		if err != nil {
			return Word{}, err
		}
		counts[i]++
		n++
	}
	w := Word{text: strings.ToUpper(text), length: n}
	for i, ct := range counts {
		if ct > 0 {
			w.letters = append(w.letters, letterCount{idx: i, count: ct})
		}
	}
	return w, nil
}

// MustWord is like NewWord but panics on bad input.
func MustWord(text string) Word {
	w, err := NewWord(text)
	if err != nil {
		panic(err)
	}
	return w
}

// Words converts a list of strings, stopping at the first bad one.
func Words(texts []string) ([]Word, error) {
	ws := make([]Word, len(texts))
	for i, t := range texts {
		w, err := NewWord(t)
		if err != nil {
			return nil, err
		}
		ws[i] = w
	}
	return ws, nil
}

func (w Word) String() string {
	return w.text
}

// Len is the number of letters in the word.
func (w Word) Len() int {
	return w.length
}
