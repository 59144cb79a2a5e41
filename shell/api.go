package shell

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/domino14/lettercover/config"
	"github.com/domino14/lettercover/cover"
	"github.com/domino14/lettercover/letterdist"
	"github.com/domino14/lettercover/letterpool"
	"github.com/domino14/lettercover/runner"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

// parseTimeout accepts either seconds ("2.5") or a Go duration ("250ms").
func parseTimeout(s string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(secs) {
			return 0, fmt.Errorf("bad timeout %q", s)
		}
		if secs == 0 {
			// zero would mean "use the configured timeout"
			return -1, nil
		}
		return cover.SecondsToTimeout(secs), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("bad timeout %q", s)
	}
	if d == 0 {
		return -1, nil
	}
	return d, nil
}

func (sc *ShellController) solveOptions(cmd *shellcmd) (*runner.SolveOptions, error) {
	opts := &runner.SolveOptions{}
	if t := cmd.options.String("timeout"); t != "" {
		d, err := parseTimeout(t)
		if err != nil {
			return nil, err
		}
		opts.Timeout = d
	}
	return opts, nil
}

func (sc *ShellController) solve(ctx context.Context, cmd *shellcmd) (*Response, error) {
	letters := strings.Join(cmd.args, "")
	if letters == "" {
		if sc.lastDraw == "" {
			return nil, errors.New("please provide some letters, or draw a pool with `random`")
		}
		letters = sc.lastDraw
	}
	opts, err := sc.solveOptions(cmd)
	if err != nil {
		return nil, err
	}
	res, err := sc.runner.Solve(ctx, letters, opts)
	if err != nil {
		return nil, err
	}
	return msg(res.Details()), nil
}

func (sc *ShellController) batch(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: batch <letters> [<letters> ...] [-timeout secs]")
	}
	opts, err := sc.solveOptions(cmd)
	if err != nil {
		return nil, err
	}
	results, err := sc.runner.SolveBatch(ctx, cmd.args, opts.Timeout)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for i, res := range results {
		fmt.Fprintf(&sb, "%-20s %v (%d unused)", cmd.args[i], res.Words, res.Unused)
		if res.TimedOut {
			sb.WriteString(" [timed out]")
		}
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) random(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: random <n> [-dist name] [-seed n] [-solve true]")
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("bad pool size %q", cmd.args[0])
	}
	distName := cmd.options.String("dist")
	if distName == "" {
		distName = sc.config.GetString(config.ConfigDefaultLetterDistribution)
	}
	seed, err := cmd.options.IntDefault("seed", 0)
	if err != nil {
		return nil, err
	}
	var d letterdist.Distribution
	if seed != 0 {
		d, err = letterdist.ByName(distName, letterdist.SeededRNG(uint64(seed)))
	} else {
		d, err = letterdist.ByName(distName, nil)
	}
	if err != nil {
		return nil, err
	}
	pool, err := d.Sample(n)
	if err != nil {
		return nil, err
	}
	sc.lastDraw = pool
	out := fmt.Sprintf("Drew %d letters (%s): %s", n, d.Name(), pool)
	if !cmd.options.Bool("solve") {
		return msg(out), nil
	}
	opts, err := sc.solveOptions(cmd)
	if err != nil {
		return nil, err
	}
	res, err := sc.runner.Solve(ctx, pool, opts)
	if err != nil {
		return nil, err
	}
	return msg(out + "\n" + res.Details()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide a word or space-separated list of words to check")
	}
	v := sc.runner.Validator()
	var sb strings.Builder
	for i, w := range cmd.args {
		word := strings.Trim(strings.ToUpper(w), ",")
		validStr := "VALID"
		if !v.IsValid(word) {
			validStr = "INVALID"
		}
		fmt.Fprintf(&sb, "%s is %s in %s", word, validStr, v.Name())
		if i < len(cmd.args)-1 {
			sb.WriteString("\n")
		}
	}
	return msg(sb.String()), nil
}

// lengths shows how the candidate words for a pool are spread by length.
func (sc *ShellController) lengths(cmd *shellcmd) (*Response, error) {
	letters := strings.Join(cmd.args, "")
	if letters == "" {
		letters = sc.lastDraw
	}
	if letters == "" {
		return nil, errors.New("please provide some letters")
	}
	pool, cands, err := sc.runner.Candidates(letters, nil)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return msg(fmt.Sprintf("No candidate words for %s", pool.String())), nil
	}
	lens := lo.Map(cands, func(w letterpool.Word, _ int) int { return w.Len() })
	shortest, longest := lo.Min(lens), lo.Max(lens)
	header := fmt.Sprintf("%d candidate words for %s, lengths %d to %d",
		len(cands), pool.String(), shortest, longest)
	if shortest == longest {
		return msg(header), nil
	}
	var sb strings.Builder
	sb.WriteString(header + "\n")
	data := lo.Map(lens, func(n int, _ int) float64 { return float64(n) })
	hist := histogram.Hist(longest-shortest+1, data)
	if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// settable lists the config keys `set` may change at runtime.
var settable = []string{
	config.ConfigTimeout,
	config.ConfigMinWordLength,
	config.ConfigTwoLetterWhitelist,
	config.ConfigDefaultLetterDistribution,
	config.ConfigThreads,
	config.ConfigDebug,
}

func (sc *ShellController) showSettings() string {
	keys := slices.Clone(settable)
	slices.Sort(keys)
	lines := lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%-28s %v", k, sc.config.Get(k))
	})
	return strings.Join(lines, "\n")
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.showSettings()), nil
	}
	opt := cmd.args[0]
	if !slices.Contains(settable, opt) {
		return nil, fmt.Errorf("option %v not recognized", opt)
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%v", sc.config.Get(opt))), nil
	}
	val := cmd.args[1]
	switch opt {
	case config.ConfigTimeout:
		secs, err := strconv.ParseFloat(val, 64)
		if err != nil || secs < 0 || math.IsNaN(secs) {
			return nil, fmt.Errorf("bad timeout %q", val)
		}
		sc.config.Set(opt, secs)
	case config.ConfigMinWordLength, config.ConfigThreads:
		n, err := strconv.Atoi(val)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%v must be a positive integer", opt)
		}
		sc.config.Set(opt, n)
	case config.ConfigTwoLetterWhitelist, config.ConfigDebug:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, err
		}
		sc.config.Set(opt, b)
		if opt == config.ConfigDebug {
			setLogLevel(b)
		}
	case config.ConfigDefaultLetterDistribution:
		if _, err := letterdist.ByName(val, nil); err != nil {
			return nil, err
		}
		sc.config.Set(opt, val)
	}
	return msg("set " + opt + " to " + val), nil
}

func (sc *ShellController) history(ctx context.Context, cmd *shellcmd) (*Response, error) {
	h := sc.runner.History()
	if h == nil {
		return nil, errors.New("no history database; set " + config.ConfigHistoryDB + " in the config")
	}
	n := 10
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad count %q", cmd.args[0])
		}
	}
	entries, err := h.Recent(ctx, n)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return msg("No solves recorded yet"), nil
	}
	var sb strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&sb, "%s  %-20s %v (%d unused)",
			e.CreatedAt.Format(time.DateTime), e.Pool, e.Words, e.Unused)
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return usage()
	}
	return usageTopic(cmd.args[0])
}
