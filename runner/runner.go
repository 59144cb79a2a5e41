// Package runner ties the pieces together: it turns a string of letters
// into a pool, loads and filters the dictionary, and runs the search.
package runner

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/lettercover/config"
	"github.com/domino14/lettercover/cover"
	"github.com/domino14/lettercover/history"
	"github.com/domino14/lettercover/letterpool"
	"github.com/domino14/lettercover/lexicon"
	"github.com/domino14/lettercover/wordfilter"
)

type Runner struct {
	cfg       *config.Config
	source    lexicon.Source
	cache     *lexicon.Cache
	validator lexicon.Validator
	history   *history.Store
}

// NewRunner builds a runner from config. The dictionary is not read until
// the first solve.
func NewRunner(cfg *config.Config) (*Runner, error) {
	r := &Runner{
		cfg:   cfg,
		cache: lexicon.NewCache(),
		source: lexicon.ChainSource{
			lexicon.FileSource{
				Path:  cfg.GetString(config.ConfigDictionaryPath),
				Limit: cfg.GetInt(config.ConfigDictionaryLimit),
			},
			lexicon.FileSource{
				Path: filepath.Join(cfg.GetString(config.ConfigDataPath), "dictionaries", "words.txt"),
			},
		},
	}
	if lex := cfg.GetString(config.ConfigValidatorLexicon); lex != "" {
		v, err := lexicon.NewKWGValidator(cfg.WGLConfig(), lex)
		if err != nil {
			return nil, err
		}
		r.validator = v
		log.Info().Str("lexicon", lex).Msg("using-kwg-validator")
	}
	if path := cfg.GetString(config.ConfigHistoryDB); path != "" {
		h, err := history.Open(path)
		if err != nil {
			return nil, err
		}
		r.history = h
	}
	return r, nil
}

func (r *Runner) SetSource(src lexicon.Source) {
	r.source = src
}

func (r *Runner) SetValidator(v lexicon.Validator) {
	r.validator = v
}

func (r *Runner) Validator() lexicon.Validator {
	if r.validator == nil {
		return lexicon.AcceptAll{}
	}
	return r.validator
}

func (r *Runner) SetHistory(h *history.Store) {
	r.history = h
}

func (r *Runner) History() *history.Store {
	return r.history
}

func (r *Runner) Config() *config.Config {
	return r.cfg
}

func (r *Runner) Close() error {
	if r.history != nil {
		return r.history.Close()
	}
	return nil
}

// Candidates returns the normalized pool and the words that can each be
// built from it. A nil opts means the configured defaults.
func (r *Runner) Candidates(letters string, opts *SolveOptions) (letterpool.Pool, []letterpool.Word, error) {
	pool, err := ParsePool(letters)
	if err != nil {
		return letterpool.Pool{}, nil, err
	}
	words, err := r.cache.Words(r.source)
	if err != nil {
		return letterpool.Pool{}, nil, err
	}
	if opts == nil {
		opts = &SolveOptions{}
	}
	opts.SetDefaults(r.cfg)
	fopts := *opts.Filter
	if fopts.Validator == nil {
		fopts.Validator = r.validator
	}
	return pool, wordfilter.Filter(words, pool, fopts), nil
}

// Solve finds the best word set for letters. A nil opts means the
// configured defaults.
func (r *Runner) Solve(ctx context.Context, letters string, opts *SolveOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &SolveOptions{}
	}
	opts.SetDefaults(r.cfg)

	pool, cands, err := r.Candidates(letters, opts)
	if err != nil {
		return nil, err
	}
	log.Info().Str("pool", pool.String()).Int("letters", pool.TotalRemaining()).Msg("letter-pool")

	s := &cover.Solver{}
	s.Init(pool, cands)
	sol := s.Solve(opts.Timeout)

	res := &Result{
		Pool:        pool.String(),
		Words:       sol.Words,
		LettersUsed: sol.LettersUsed,
		Unused:      pool.TotalRemaining() - sol.LettersUsed,
		Candidates:  len(cands),
		Nodes:       sol.Nodes,
		TimedOut:    sol.TimedOut,
		Timeout:     opts.Timeout,
		Elapsed:     sol.Elapsed,
	}
	if r.history != nil {
		if err := r.history.Record(ctx, res.historyEntry()); err != nil {
			// a solve is still good without its record
			log.Err(err).Msg("history-record-failed")
		}
	}
	return res, nil
}

// SolveBatch solves several pools, up to the configured number of threads
// at a time. Each solve is itself single-threaded. Results are in the
// order of pools; the first error cancels solves that have not started.
func (r *Runner) SolveBatch(ctx context.Context, pools []string, timeout time.Duration) ([]*Result, error) {
	results := make([]*Result, len(pools))
	g, gctx := errgroup.WithContext(ctx)
	threads := r.cfg.GetInt(config.ConfigThreads)
	if threads < 1 {
		threads = 1
	}
	g.SetLimit(threads)
	for i, p := range pools {
		g.Go(func() error {
			res, err := r.Solve(gctx, p, &SolveOptions{Timeout: timeout})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
