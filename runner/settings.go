package runner

import (
	"time"

	"github.com/domino14/lettercover/config"
	"github.com/domino14/lettercover/wordfilter"
)

// SolveOptions are per-solve settings. Unset fields are filled in from
// config by SetDefaults.
type SolveOptions struct {
	// Timeout of zero means the configured timeout. To search with no
	// time at all, use a negative timeout.
	Timeout time.Duration
	Filter  *wordfilter.Options
}

func (opts *SolveOptions) SetDefaults(cfg *config.Config) {
	if opts.Timeout == 0 {
		opts.Timeout = cfg.Timeout()
	}
	if opts.Filter == nil {
		opts.Filter = &wordfilter.Options{
			MinLength:          cfg.GetInt(config.ConfigMinWordLength),
			TwoLetterWhitelist: cfg.GetBool(config.ConfigTwoLetterWhitelist),
		}
	}
}
