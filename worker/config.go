package worker

import (
	"time"

	"github.com/domino14/lettercover/config"
)

// WorkerConfig holds configuration for the NATS solve worker
type WorkerConfig struct {
	NatsURL string
	Subject string

	// Connection attempts before giving up, with backoff in between.
	ConnectAttempts uint
	ConnectDelay    time.Duration
}

// NewWorkerConfig reads the NATS settings from cfg.
func NewWorkerConfig(cfg *config.Config) *WorkerConfig {
	return &WorkerConfig{
		NatsURL:         cfg.GetString(config.ConfigNatsURL),
		Subject:         cfg.GetString(config.ConfigNatsSubject),
		ConnectAttempts: 5,
		ConnectDelay:    500 * time.Millisecond,
	}
}
