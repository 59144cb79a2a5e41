package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettercover/config"
	"github.com/domino14/lettercover/runner"
	"github.com/domino14/lettercover/worker"
)

func main() {
	cfg := &config.Config{}
	if _, err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))

	r, err := runner.NewRunner(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-start")
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := worker.NewSolveWorker(worker.NewWorkerConfig(cfg), r)
	if err := w.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("worker-failed")
	}
	log.Info().Msg("worker gracefully shutting down")
}
