package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-search/pkg/bulk"
)

// Index indexes a single document, blocking for one round trip. The
// document ID is assigned by the server.
func (c *Client) Index(ctx context.Context, index string, doc bulk.Document) error {
	if !IsValidName(index) {
		return fmt.Errorf("%w: %q", ErrInvalidIndexName, index)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}

	req := esapi.IndexRequest{
		Index: index,
		Body:  bytes.NewReader(body),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexRequestFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrIndexRequestFailed, res.Status())
	}
	return nil
}

// IndexAsync indexes a single document without blocking the caller. done
// is invoked exactly once with the outcome.
func (c *Client) IndexAsync(ctx context.Context, index string, doc bulk.Document, done func(error)) {
	go func() {
		err := c.Index(ctx, index, doc)
		if done != nil {
			done(err)
		}
	}()
}

// BulkIndex splits docs into size-bounded batches and submits them
// strictly in sequence, blocking until the last batch succeeds or the
// first one fails. The Result reports how many batches were accepted.
func (c *Client) BulkIndex(ctx context.Context, index string, docs []bulk.Document) bulk.Result {
	if !IsValidName(index) {
		return bulk.Result{Err: fmt.Errorf("%w: %q", ErrInvalidIndexName, index)}
	}

	batches, err := bulk.Split(docs, c.maxBodyBytes)
	if err != nil {
		return bulk.Result{Err: err}
	}

	c.log.Debug("bulk submission",
		zap.String("index", index),
		zap.Int("docs", len(docs)),
		zap.Int("batches", len(batches)))

	return c.submitter.Submit(ctx, index, batches)
}

// BulkIndexAsync is the non-blocking variant of BulkIndex. done is invoked
// exactly once; validation and serialization failures are reported through
// it on the caller's goroutine before any request is issued.
func (c *Client) BulkIndexAsync(ctx context.Context, index string, docs []bulk.Document, done func(bulk.Result)) {
	if !IsValidName(index) {
		if done != nil {
			done(bulk.Result{Err: fmt.Errorf("%w: %q", ErrInvalidIndexName, index)})
		}
		return
	}

	batches, err := bulk.Split(docs, c.maxBodyBytes)
	if err != nil {
		if done != nil {
			done(bulk.Result{Err: err})
		}
		return
	}

	c.submitter.SubmitAsync(ctx, index, batches, done)
}
