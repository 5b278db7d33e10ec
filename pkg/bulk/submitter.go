package bulk

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-search/pkg/pool/byteslice"
)

// Result is the single outcome of a bulk submission. Submitted counts the
// batches the endpoint accepted before the first failure; when Err is nil
// it equals the total number of batches.
type Result struct {
	Submitted int
	Err       error
}

// Ok reports whether the whole submission succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Submitter sends batches to a Transport strictly in sequence: batch i+1 is
// only dispatched after batch i's response has been observed and was
// successful. No retries; the first failure ends the submission.
type Submitter struct {
	transport Transport
	log       *zap.Logger
}

// NewSubmitter creates a Submitter over the given transport.
func NewSubmitter(transport Transport, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{
		transport: transport,
		log:       log,
	}
}

// Submit sends every batch in order and blocks until the last batch
// succeeds or the first one fails. An empty batch sequence issues no
// requests and reports success.
func (s *Submitter) Submit(ctx context.Context, index string, batches [][]Document) Result {
	for i, batch := range batches {
		if err := s.sendOne(ctx, index, batch); err != nil {
			s.log.Warn("bulk batch failed",
				zap.String("index", index),
				zap.Int("batch", i),
				zap.Error(err))
			return Result{Submitted: i, Err: err}
		}

		s.log.Debug("bulk batch submitted",
			zap.String("index", index),
			zap.Int("batch", i),
			zap.Int("docs", len(batch)))
	}

	return Result{Submitted: len(batches)}
}

// SubmitAsync runs the same sequential chain without blocking the caller.
// A single goroutine owns the cursor, so no two batches are ever in flight
// at once, and done is invoked exactly once: after the last batch succeeds
// or after the first batch fails.
func (s *Submitter) SubmitAsync(ctx context.Context, index string, batches [][]Document, done func(Result)) {
	go func() {
		res := s.Submit(ctx, index, batches)
		if done != nil {
			done(res)
		}
	}()
}

func (s *Submitter) sendOne(ctx context.Context, index string, batch []Document) error {
	buf := byteslice.Get(int(byteslice.DefaultSize()))[:0]

	body, err := AppendEncode(buf, batch)
	if err != nil {
		byteslice.Put(buf)
		return err
	}
	defer byteslice.Put(body)

	if err := s.transport.SendBulk(ctx, index, bytes.NewReader(body)); err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	return nil
}
