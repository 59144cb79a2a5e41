package worker

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/lettercover/config"
	"github.com/domino14/lettercover/cover"
	"github.com/domino14/lettercover/lexicon"
	"github.com/domino14/lettercover/runner"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func newTestRunner(t *testing.T) *runner.Runner {
	t.Helper()
	cfg := config.DefaultConfig()
	r, err := runner.NewRunner(&cfg)
	require.NoError(t, err)
	r.SetSource(lexicon.StaticSource{Label: "test",
		List: []string{"CAT", "DOG", "DOGS", "GOAT", "AT", "TA"}})
	return r
}

func decode(t *testing.T, data []byte) *SolveReply {
	t.Helper()
	reply := &SolveReply{}
	require.NoError(t, json.Unmarshal(data, reply))
	return reply
}

func TestHandleSolve(t *testing.T) {
	r := newTestRunner(t)
	reply := decode(t, handle(context.Background(), r, []byte(`{"letters":"catdogx","timeout":5}`)))
	assert.Empty(t, reply.Error)
	assert.Equal(t, []string{"GOAT"}, reply.Words)
	assert.Equal(t, 4, reply.LettersUsed)
	assert.Equal(t, 3, reply.Unused)
	assert.False(t, reply.TimedOut)
}

func TestHandleHugeTimeout(t *testing.T) {
	r := newTestRunner(t)
	for _, body := range []string{
		`{"letters":"catdogs","timeout":1e10}`,
		`{"letters":"catdogs","timeout":1e300}`,
	} {
		reply := decode(t, handle(context.Background(), r, []byte(body)))
		assert.Empty(t, reply.Error, body)
		assert.Equal(t, []string{"DOGS", "CAT"}, reply.Words, body)
		assert.Equal(t, 7, reply.LettersUsed, body)
		assert.False(t, reply.TimedOut, body)
	}
}

func TestHandleReplyFields(t *testing.T) {
	r := newTestRunner(t)
	out := handle(context.Background(), r, []byte(`{"letters":"dogs"}`))
	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Contains(t, raw, "words")
	assert.Contains(t, raw, "letters_used")
	assert.Contains(t, raw, "unused")
	assert.Contains(t, raw, "timed_out")
	assert.NotContains(t, raw, "error")
}

func TestHandleErrors(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	reply := decode(t, handle(ctx, r, []byte(`not json`)))
	assert.Contains(t, reply.Error, "bad request")
	assert.Equal(t, []string{}, reply.Words)

	reply = decode(t, handle(ctx, r, []byte(`{"letters":"cat","timeout":-1}`)))
	assert.Contains(t, reply.Error, "negative timeout")

	reply = decode(t, handle(ctx, r, []byte(`{"letters":"c4t"}`)))
	assert.Contains(t, reply.Error, "solve failed")

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	reply = decode(t, handle(cctx, r, []byte(`{"letters":"cat"}`)))
	assert.Contains(t, reply.Error, "context canceled")
}

func TestRequestWait(t *testing.T) {
	assert.Equal(t, 20*time.Second, requestWait(0))
	assert.Equal(t, 7*time.Second, requestWait(2*time.Second))
	assert.Equal(t, time.Duration(math.MaxInt64), requestWait(math.MaxInt64))
	assert.Equal(t, time.Duration(math.MaxInt64), requestWait(cover.SecondsToTimeout(1e10)))
}

func TestNewWorkerConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigNatsSubject, "solve.me")
	wc := NewWorkerConfig(&cfg)
	assert.Equal(t, "nats://localhost:4222", wc.NatsURL)
	assert.Equal(t, "solve.me", wc.Subject)
	assert.Equal(t, uint(5), wc.ConnectAttempts)
}
