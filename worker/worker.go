// Package worker serves solves over NATS request/reply.
package worker

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettercover/runner"
)

// SolveWorker answers solve requests on a NATS subject.
type SolveWorker struct {
	config *WorkerConfig
	runner *runner.Runner
}

func NewSolveWorker(cfg *WorkerConfig, r *runner.Runner) *SolveWorker {
	return &SolveWorker{config: cfg, runner: r}
}

func connect(ctx context.Context, cfg *WorkerConfig) (*nats.Conn, error) {
	var nc *nats.Conn
	err := retry.Do(
		func() error {
			var err error
			nc, err = nats.Connect(cfg.NatsURL, nats.Name("lettercover-worker"))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(cfg.ConnectAttempts),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("nats-connect-failed")
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
	)
	return nc, err
}

// Run serves requests until ctx is done. Each request is solved on the
// subscription's goroutine, so requests are answered one at a time.
func (w *SolveWorker) Run(ctx context.Context) error {
	nc, err := connect(ctx, w.config)
	if err != nil {
		return err
	}
	defer nc.Close()

	_, err = nc.Subscribe(w.config.Subject, func(m *nats.Msg) {
		log.Debug().Int("bytes", len(m.Data)).Msg("received-request")
		if err := m.Respond(handle(ctx, w.runner, m.Data)); err != nil {
			log.Err(err).Msg("respond-failed")
		}
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}
	log.Info().Str("url", w.config.NatsURL).Str("subject", w.config.Subject).
		Msg("starting-solve-worker")

	<-ctx.Done()
	log.Info().Msg("worker-shutting-down")
	if err := nc.Drain(); err != nil {
		log.Err(err).Msg("drain-failed")
	}
	return nil
}
