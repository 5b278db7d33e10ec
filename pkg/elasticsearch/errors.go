package elasticsearch

import "errors"

var (
	ErrConnectFailed       = errors.New("failed to create elasticsearch client")
	ErrInvalidIndexName    = errors.New("invalid index name")
	ErrCreateIndexFailed   = errors.New("failed to create index")
	ErrDeleteIndexFailed   = errors.New("failed to delete index")
	ErrExistsRequestFailed = errors.New("failed to check index existence")
	ErrIndexRequestFailed  = errors.New("failed to index document")
	ErrBulkRequestFailed   = errors.New("failed to submit bulk request")
	ErrMarshalFailed       = errors.New("failed to marshal request body")
)
