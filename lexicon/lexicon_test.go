package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestNormalize(t *testing.T) {
	is := is.New(t)
	type tc struct {
		in  string
		out string
		ok  bool
	}
	for _, c := range []tc{
		{"cat", "CAT", true},
		{"  Dog\t", "DOG", true},
		{"café", "CAFE", true},
		{"NAÏVE", "NAIVE", true},
		{"straße", "STRASSE", true},
		{"don't", "", false},
		{"x2", "", false},
		{"ice cream", "", false},
		{"", "", false},
	} {
		out, ok := Normalize(c.in)
		is.Equal(ok, c.ok) // c.in
		is.Equal(out, c.out)
	}
}

func TestReadWords(t *testing.T) {
	is := is.New(t)
	list := "the\nof\nAnd\nthe\n3rd\nrésumé\nTHE\nzebra\n"
	words, err := ReadWords(strings.NewReader(list), 0)
	is.NoErr(err)
	is.Equal(words, []string{"THE", "OF", "AND", "THE", "RESUME", "THE", "ZEBRA"})

	// the limit counts lines, including dropped ones
	words, err = ReadWords(strings.NewReader(list), 5)
	is.NoErr(err)
	is.Equal(words, []string{"THE", "OF", "AND", "THE"})
}

func TestFileSource(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words")
	is.NoErr(os.WriteFile(path, []byte("cat\ndog\nbird\n"), 0644))

	fs := FileSource{Path: path}
	words, err := fs.Words()
	is.NoErr(err)
	is.Equal(words, []string{"CAT", "DOG", "BIRD"})
	is.Equal(fs.Name(), "file:"+path)
	is.Equal(FileSource{Path: path, Limit: 10}.Name(), "file:"+path+":10")
}

func TestChainSourceFallsBack(t *testing.T) {
	is := is.New(t)
	missing := FileSource{Path: filepath.Join(t.TempDir(), "nope")}
	chain := ChainSource{missing, StaticSource{Label: "tiny", List: []string{"CAT"}}}
	words, err := chain.Words()
	is.NoErr(err)
	is.Equal(words, []string{"CAT"})
}

func TestChainSourceNoDictionary(t *testing.T) {
	is := is.New(t)
	missing := FileSource{Path: filepath.Join(t.TempDir(), "nope")}
	_, err := ChainSource{missing}.Words()
	is.True(errors.Is(err, ErrNoDictionary))

	_, err = ChainSource{}.Words()
	is.True(errors.Is(err, ErrNoDictionary))
}

type countingSource struct {
	loads int
}

func (cs *countingSource) Name() string { return "counting" }

func (cs *countingSource) Words() ([]string, error) {
	cs.loads++
	return []string{"ONE", "TWO"}, nil
}

func TestCache(t *testing.T) {
	is := is.New(t)
	c := NewCache()
	src := &countingSource{}
	for i := 0; i < 3; i++ {
		words, err := c.Words(src)
		is.NoErr(err)
		is.Equal(len(words), 2)
	}
	is.Equal(src.loads, 1)
	is.Equal(c.Len(), 1)
}

func TestValidators(t *testing.T) {
	is := is.New(t)
	is.True(AcceptAll{}.IsValid("QXZ"))
	sv := NewSetValidator([]string{"CAT", "DOG"})
	is.True(sv.IsValid("CAT"))
	is.True(!sv.IsValid("TAC"))
}
