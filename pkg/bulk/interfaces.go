package bulk

import (
	"context"
	"io"
)

// Transport is the capability the submitter needs from an indexing endpoint:
// deliver one bulk body for an index and report success or failure. A nil
// return means the endpoint accepted the batch.
type Transport interface {
	SendBulk(ctx context.Context, index string, body io.Reader) error
}
