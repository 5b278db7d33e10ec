package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// CreateIndex creates an index with the given field mapping. An invalid
// name fails fast with ErrInvalidIndexName before any request is issued.
func (c *Client) CreateIndex(ctx context.Context, name string, mapping Mapping) error {
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIndexName, name)
	}

	body, err := mapping.createBody()
	if err != nil {
		return err
	}

	req := esapi.IndicesCreateRequest{
		Index: name,
		Body:  bytes.NewReader(body),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateIndexFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrCreateIndexFailed, res.Status())
	}

	c.log.Info("index created", zap.String("index", name), zap.Int("fields", len(mapping)))
	return nil
}

// DeleteIndex removes an index.
func (c *Client) DeleteIndex(ctx context.Context, name string) error {
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIndexName, name)
	}

	req := esapi.IndicesDeleteRequest{
		Index: []string{name},
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteIndexFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrDeleteIndexFailed, res.Status())
	}

	c.log.Info("index deleted", zap.String("index", name))
	return nil
}

// IndexExists reports whether an index exists. A 404 means false; any
// server-side error status is surfaced as an error, not a boolean.
// Concurrent checks for the same index share a single request.
func (c *Client) IndexExists(ctx context.Context, name string) (bool, error) {
	v, err, _ := c.existsGroup.Do(name, func() (any, error) {
		req := esapi.IndicesExistsRequest{
			Index: []string{name},
		}

		res, err := req.Do(ctx, c.es)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrExistsRequestFailed, err)
		}
		defer res.Body.Close()

		switch res.StatusCode {
		case http.StatusOK:
			return true, nil
		case http.StatusNotFound:
			return false, nil
		}
		return false, fmt.Errorf("%w: %s", ErrExistsRequestFailed, res.Status())
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// EnsureIndex creates the index when it does not exist yet.
func (c *Client) EnsureIndex(ctx context.Context, name string, mapping Mapping) error {
	exists, err := c.IndexExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return c.CreateIndex(ctx, name, mapping)
}
