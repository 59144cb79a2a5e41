package letterpool

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	p, err := FromString("aenPPSw")
	if err != nil {
		t.Fatal(err)
	}
	var expected [NumLetters]int
	expected[0] = 1
	expected[4] = 1
	expected[13] = 1
	expected[15] = 2
	expected[18] = 1
	expected[22] = 1

	assert.Equal(t, expected, p.Counts())
	assert.Equal(t, 7, p.TotalRemaining())
	assert.Equal(t, "AENPPSW", p.String())
}

func TestFromStringBadLetter(t *testing.T) {
	is := is.New(t)
	_, err := FromString("CA7")
	is.True(errors.Is(err, ErrNotALetter))
	_, err = FromString("CA T")
	is.True(errors.Is(err, ErrNotALetter))
}

func TestCanAfford(t *testing.T) {
	is := is.New(t)
	p := MustFromString("AAT")
	type tc struct {
		word string
		ok   bool
	}
	for _, c := range []tc{
		{"AT", true},
		{"TA", true},
		{"AA", true},
		{"AAT", true},
		{"TT", false},
		{"AAAT", false},
		{"CAT", false},
	} {
		is.Equal(p.CanAfford(MustWord(c.word)), c.ok) // c.word
	}
}

func TestSubtractLeavesOriginal(t *testing.T) {
	is := is.New(t)
	p := MustFromString("CATS")
	q := p.Subtract(MustWord("CAT"))

	is.Equal(q.String(), "S")
	is.Equal(q.TotalRemaining(), 1)
	is.Equal(p.String(), "ACST")
	is.Equal(p.TotalRemaining(), 4)
}

func TestSubtractAddRoundTrip(t *testing.T) {
	p := MustFromString("BANANAS")
	w := MustWord("NAAN")
	q := p.Subtract(w)
	assert.Equal(t, "ABS", q.String())
	assert.Equal(t, p, q.Add(w))
}

func TestSubtractUnaffordablePanics(t *testing.T) {
	p := MustFromString("CAT")
	assert.Panics(t, func() {
		p.Subtract(MustWord("TT"))
	})
}

func TestCount(t *testing.T) {
	is := is.New(t)
	p := MustFromString("MISSISSIPPI")
	is.Equal(p.Count('S'), 4)
	is.Equal(p.Count('s'), 4)
	is.Equal(p.Count('I'), 4)
	is.Equal(p.Count('Z'), 0)
	is.Equal(p.Count('?'), 0)
}

func TestNewWord(t *testing.T) {
	is := is.New(t)
	w, err := NewWord("Banana")
	is.NoErr(err)
	is.Equal(w.String(), "BANANA")
	is.Equal(w.Len(), 6)

	_, err = NewWord("CAFÉ")
	is.True(errors.Is(err, ErrNotALetter))

	_, err = Words([]string{"OK", "NOT-OK"})
	is.True(errors.Is(err, ErrNotALetter))
}
