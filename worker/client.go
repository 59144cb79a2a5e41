package worker

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettercover/cover"
)

// Client sends solve requests to a SolveWorker.
type Client struct {
	nc      *nats.Conn
	subject string
}

func NewClient(nc *nats.Conn, subject string) *Client {
	return &Client{nc: nc, subject: subject}
}

// Solve asks a worker to solve letters. A timeout of zero leaves it to the
// worker's configuration. The request waits for the search timeout plus a
// few seconds of slack.
func (c *Client) Solve(ctx context.Context, letters string, timeout time.Duration) (*SolveReply, error) {
	if timeout < 0 {
		return nil, errors.New("timeout must not be negative")
	}
	data, err := json.Marshal(&SolveRequest{Letters: letters, Timeout: timeout.Seconds()})
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, requestWait(timeout))
	defer cancel()
	res, err := c.nc.RequestWithContext(ctx, c.subject, data)
	if err != nil {
		log.Err(err).Str("subject", c.subject).Msg("request-failed")
		return nil, err
	}
	reply := &SolveReply{}
	if err := json.Unmarshal(res.Data, reply); err != nil {
		return nil, err
	}
	if reply.Error != "" {
		return nil, errors.New("worker returned: " + reply.Error)
	}
	return reply, nil
}

const replySlack = 5 * time.Second

// requestWait is how long a client waits for the reply to a solve with
// the given timeout.
func requestWait(timeout time.Duration) time.Duration {
	if timeout == 0 {
		timeout = cover.DefaultTimeout
	}
	if timeout > math.MaxInt64-replySlack {
		return math.MaxInt64
	}
	return timeout + replySlack
}
