package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettercover/config"
	"github.com/domino14/lettercover/letterdist"
	"github.com/domino14/lettercover/lexicon"
	"github.com/domino14/lettercover/runner"
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	cfg := &config.Config{}
	var randomSize int
	args, err := cfg.LoadWith(os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&randomSize, "random", 0, "solve a random pool of this many letters")
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "usage: lettercover [flags] LETTERS")
			fs.PrintDefaults()
		}
	})
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))

	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))

	letters := strings.Join(args, "")
	if randomSize > 0 {
		d, err := letterdist.ByName(cfg.GetString(config.ConfigDefaultLetterDistribution), nil)
		if err != nil {
			log.Fatal().Err(err).Msg("bad-distribution")
		}
		letters, err = d.Sample(randomSize)
		if err != nil {
			log.Fatal().Err(err).Msg("could-not-draw")
		}
		fmt.Printf("Letter pool: %s\n", letters)
	}
	if letters == "" {
		fmt.Fprintln(os.Stderr, "usage: lettercover [flags] LETTERS")
		os.Exit(2)
	}

	r, err := runner.NewRunner(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-start")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	res, err := r.Solve(ctx, letters, nil)
	stop()
	// log.Fatal skips deferred calls, so the history db is closed first.
	if cerr := r.Close(); cerr != nil {
		log.Err(cerr).Msg("runner-close-failed")
	}
	if errors.Is(err, lexicon.ErrNoDictionary) {
		log.Fatal().Err(err).Msg("no-dictionary")
	} else if err != nil {
		log.Fatal().Err(err).Msg("solve-failed")
	}
	fmt.Println(res.ToDisplayText())
}
