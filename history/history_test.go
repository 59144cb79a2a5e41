package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPoolHashIgnoresOrder(t *testing.T) {
	is := is.New(t)
	is.Equal(PoolHash("CAT"), PoolHash("TAC"))
	is.True(PoolHash("CAT") != PoolHash("CATS"))
}

func TestRecordAndRecent(t *testing.T) {
	is := is.New(t)
	s := openTemp(t)
	ctx := context.Background()

	e1 := &Entry{Pool: "CATDOG", Words: []string{"CAT", "DOG"}, LettersUsed: 6,
		Candidates: 12, Nodes: 40, Timeout: 2 * time.Second, Elapsed: 15 * time.Millisecond}
	is.NoErr(s.Record(ctx, e1))
	is.True(e1.ID > 0)
	e2 := &Entry{Pool: "QZX", Words: []string{}, Unused: 3, TimedOut: true}
	is.NoErr(s.Record(ctx, e2))

	recent, err := s.Recent(ctx, 10)
	is.NoErr(err)
	is.Equal(len(recent), 2)
	is.Equal(recent[0].Pool, "QZX")
	is.True(recent[0].TimedOut)
	is.Equal(recent[0].Words, []string{})
	is.Equal(recent[1].Words, []string{"CAT", "DOG"})
	is.Equal(recent[1].Nodes, uint64(40))
	is.Equal(recent[1].Timeout, 2*time.Second)
	is.Equal(recent[1].Elapsed, 15*time.Millisecond)

	recent, err = s.Recent(ctx, 1)
	is.NoErr(err)
	is.Equal(len(recent), 1)
}

func TestForPool(t *testing.T) {
	is := is.New(t)
	s := openTemp(t)
	ctx := context.Background()
	is.NoErr(s.Record(ctx, &Entry{Pool: "CATDOG", Words: []string{"CAT"}, LettersUsed: 3, Unused: 3}))
	is.NoErr(s.Record(ctx, &Entry{Pool: "DOGCAT", Words: []string{"DOG", "CAT"}, LettersUsed: 6}))
	is.NoErr(s.Record(ctx, &Entry{Pool: "BIRD", Words: []string{"BIRD"}, LettersUsed: 4}))

	entries, err := s.ForPool(ctx, "TACGOD")
	is.NoErr(err)
	is.Equal(len(entries), 2)
	is.Equal(entries[0].LettersUsed, 6)
	is.Equal(entries[1].LettersUsed, 3)
}
