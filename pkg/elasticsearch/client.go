package elasticsearch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	esv8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/huynhanx03/go-search/pkg/bulk"
	"github.com/huynhanx03/go-search/pkg/settings"
	"github.com/huynhanx03/go-search/pkg/utils"
)

const defaultMaxBodyBytes = 5 << 20 // 5 MB per bulk batch

// Client talks to an Elasticsearch-compatible endpoint. It implements
// Indexer and acts as the bulk.Transport for its own submitter.
type Client struct {
	es           *esv8.Client
	submitter    *bulk.Submitter
	maxBodyBytes int
	log          *zap.Logger
	existsGroup  singleflight.Group
}

var _ Indexer = (*Client)(nil)
var _ bulk.Transport = (*Client)(nil)

// New creates a new Client. Construction is offline: no request is issued
// until the first operation.
func New(cfg settings.Elasticsearch, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	esCfg := esv8.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	}
	if cfg.Timeout > 0 {
		esCfg.Transport = &http.Transport{
			ResponseHeaderTimeout: utils.ToDuration(cfg.Timeout),
		}
	}

	es, err := esv8.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}

	maxBodyBytes := cfg.Bulk.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	c := &Client{
		es:           es,
		maxBodyBytes: maxBodyBytes,
		log:          log,
	}
	c.submitter = bulk.NewSubmitter(c, log)
	return c, nil
}

// Ping checks that the endpoint is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req := esapi.InfoRequest{}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrConnectFailed, res.Status())
	}
	return nil
}

// SendBulk delivers one pre-encoded bulk body for an index. It implements
// bulk.Transport; both transport-level failures and non-success statuses
// are reported as errors.
func (c *Client) SendBulk(ctx context.Context, index string, body io.Reader) error {
	req := esapi.BulkRequest{
		Index: index,
		Body:  body,
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBulkRequestFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrBulkRequestFailed, res.Status())
	}
	return nil
}
