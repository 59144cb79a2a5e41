// Package history records solves in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pool TEXT NOT NULL,
	pool_hash INTEGER NOT NULL,
	words TEXT NOT NULL,
	letters_used INTEGER NOT NULL,
	unused INTEGER NOT NULL,
	candidates INTEGER NOT NULL,
	nodes INTEGER NOT NULL,
	timed_out INTEGER NOT NULL,
	timeout_ms INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS solves_pool_hash ON solves(pool_hash);
`

// Entry is one recorded solve.
type Entry struct {
	ID          int64
	Pool        string
	Words       []string
	LettersUsed int
	Unused      int
	Candidates  int
	Nodes       uint64
	TimedOut    bool
	Timeout     time.Duration
	Elapsed     time.Duration
	CreatedAt   time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one writer at a time; batch solves record concurrently
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	log.Debug().Str("path", path).Msg("opened-history-db")
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// PoolHash fingerprints a pool irrespective of letter order and case of
// the caller; pool is expected uppercase.
func PoolHash(pool string) int64 {
	rs := []rune(pool)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	// sqlite integers are signed
	return int64(xxhash.Sum64String(string(rs)))
}

func (s *Store) Record(ctx context.Context, e *Entry) error {
	words, err := json.Marshal(e.Words)
	if err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO solves
		(pool, pool_hash, words, letters_used, unused, candidates, nodes, timed_out,
		 timeout_ms, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Pool, PoolHash(e.Pool), string(words), e.LettersUsed, e.Unused, e.Candidates,
		int64(e.Nodes), e.TimedOut, e.Timeout.Milliseconds(), e.Elapsed.Milliseconds(),
		e.CreatedAt.UnixMilli())
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	return err
}

const selectCols = `SELECT id, pool, words, letters_used, unused, candidates, nodes,
	timed_out, timeout_ms, elapsed_ms, created_at FROM solves`

// Recent returns up to n entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, selectCols+` ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// ForPool returns every entry for a pool with the same letters, best
// first.
func (s *Store) ForPool(ctx context.Context, pool string) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		selectCols+` WHERE pool_hash = ? ORDER BY letters_used DESC, id ASC`, PoolHash(pool))
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	defer rows.Close()
	entries := []*Entry{}
	for rows.Next() {
		e := &Entry{}
		var words string
		var nodes, timeoutMS, elapsedMS, created int64
		err := rows.Scan(&e.ID, &e.Pool, &words, &e.LettersUsed, &e.Unused, &e.Candidates,
			&nodes, &e.TimedOut, &timeoutMS, &elapsedMS, &created)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(words), &e.Words); err != nil {
			return nil, err
		}
		e.Nodes = uint64(nodes)
		e.Timeout = time.Duration(timeoutMS) * time.Millisecond
		e.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
