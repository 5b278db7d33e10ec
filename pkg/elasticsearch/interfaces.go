package elasticsearch

import (
	"context"

	"github.com/huynhanx03/go-search/pkg/bulk"
)

// Indexer defines the contract for index administration and document
// indexing. Blocking and non-blocking variants are methods on the same
// client; callers select a mode, not an implementation.
type Indexer interface {
	CreateIndex(ctx context.Context, name string, mapping Mapping) error
	DeleteIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	EnsureIndex(ctx context.Context, name string, mapping Mapping) error

	Index(ctx context.Context, index string, doc bulk.Document) error
	IndexAsync(ctx context.Context, index string, doc bulk.Document, done func(error))
	BulkIndex(ctx context.Context, index string, docs []bulk.Document) bulk.Result
	BulkIndexAsync(ctx context.Context, index string, docs []bulk.Document, done func(bulk.Result))
}
