package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lettercover/cover"
	"github.com/domino14/lettercover/runner"
)

// SolveRequest is the JSON body of a solve request.
type SolveRequest struct {
	Letters string `json:"letters"`
	// Timeout in seconds. Zero means the worker's configured timeout.
	Timeout float64 `json:"timeout,omitempty"`
}

// SolveReply is the JSON body of a reply. Error is set if and only if the
// solve failed.
type SolveReply struct {
	Words       []string `json:"words"`
	LettersUsed int      `json:"letters_used"`
	Unused      int      `json:"unused"`
	TimedOut    bool     `json:"timed_out"`
	Error       string   `json:"error,omitempty"`
}

func errorReply(message string, err error) *SolveReply {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &SolveReply{Words: []string{}, Error: msg}
}

// handle decodes one request, solves it and returns the encoded reply.
// It never fails; problems are reported in the reply.
func handle(ctx context.Context, r *runner.Runner, data []byte) []byte {
	reply := solveRequest(ctx, r, data)
	out, err := json.Marshal(reply)
	if err != nil {
		// Should never happen with these types.
		return []byte(`{"words":[],"error":"could not encode reply"}`)
	}
	return out
}

func solveRequest(ctx context.Context, r *runner.Runner, data []byte) *SolveReply {
	req := SolveRequest{}
	if err := json.Unmarshal(data, &req); err != nil {
		return errorReply("bad request", err)
	}
	if req.Timeout < 0 {
		return errorReply("bad request", fmt.Errorf("negative timeout %v", req.Timeout))
	}
	opts := &runner.SolveOptions{
		Timeout: cover.SecondsToTimeout(req.Timeout),
	}
	res, err := r.Solve(ctx, req.Letters, opts)
	if err != nil {
		log.Err(err).Str("letters", req.Letters).Msg("solve-failed")
		return errorReply("solve failed", err)
	}
	log.Info().Str("pool", res.Pool).Int("letters-used", res.LettersUsed).
		Bool("timed-out", res.TimedOut).Msg("solved")
	return &SolveReply{
		Words:       res.Words,
		LettersUsed: res.LettersUsed,
		Unused:      res.Unused,
		TimedOut:    res.TimedOut,
	}
}
