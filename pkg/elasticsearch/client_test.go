package elasticsearch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/huynhanx03/go-search/pkg/bulk"
	"github.com/huynhanx03/go-search/pkg/settings"
)

// recorder is an httptest handler that captures every request the client
// issues and replies with a canned status per route.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(r *http.Request, n int) int // n is the 1-based call number
}

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

func (rec *recorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		rec.mu.Lock()
		rec.requests = append(rec.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   string(body),
		})
		n := len(rec.requests)
		rec.mu.Unlock()

		status := http.StatusOK
		if rec.respond != nil {
			status = rec.respond(r, n)
		}

		// The v8 client refuses to talk to servers that do not identify
		// themselves as Elasticsearch.
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if r.Method != http.MethodHead {
			w.Write([]byte(`{}`))
		}
	}
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.requests)
}

func (rec *recorder) at(i int) recordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.requests[i]
}

func newTestClient(t *testing.T, rec *recorder, maxBodyBytes int) *Client {
	t.Helper()

	srv := httptest.NewServer(rec.handler())
	t.Cleanup(srv.Close)

	client, err := New(settings.Elasticsearch{
		Addresses: []string{srv.URL},
		Bulk:      settings.Bulk{MaxBodyBytes: maxBodyBytes},
	}, nil)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestCreateIndex(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	err := client.CreateIndex(context.Background(), "articles", Mapping{"title": "text"})
	if err != nil {
		t.Fatalf("CreateIndex failed: %v", err)
	}

	if rec.count() != 1 {
		t.Fatalf("expected 1 request, got %d", rec.count())
	}

	req := rec.at(0)
	if req.Method != http.MethodPut || req.Path != "/articles" {
		t.Errorf("expected PUT /articles, got %s %s", req.Method, req.Path)
	}

	var body struct {
		Mappings struct {
			Properties map[string]map[string]string `json:"properties"`
		} `json:"mappings"`
	}
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	if body.Mappings.Properties["title"]["type"] != "text" {
		t.Errorf("unexpected mapping body: %s", req.Body)
	}
}

func TestCreateIndex_InvalidNameFailsFast(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	err := client.CreateIndex(context.Background(), "Bad Name!", Mapping{"title": "text"})

	if !errors.Is(err, ErrInvalidIndexName) {
		t.Errorf("err = %v, want ErrInvalidIndexName", err)
	}
	if rec.count() != 0 {
		t.Errorf("expected 0 requests, got %d", rec.count())
	}
}

func TestCreateIndex_EndpointFailure(t *testing.T) {
	rec := &recorder{respond: func(*http.Request, int) int { return http.StatusBadRequest }}
	client := newTestClient(t, rec, 0)

	err := client.CreateIndex(context.Background(), "articles", Mapping{"title": "text"})

	if !errors.Is(err, ErrCreateIndexFailed) {
		t.Errorf("err = %v, want ErrCreateIndexFailed", err)
	}
}

func TestIndexExists(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{name: "exists", status: http.StatusOK, want: true},
		{name: "missing", status: http.StatusNotFound, want: false},
		{name: "server_error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{respond: func(*http.Request, int) int { return tt.status }}
			client := newTestClient(t, rec, 0)

			got, err := client.IndexExists(context.Background(), "articles")

			if tt.wantErr {
				if !errors.Is(err, ErrExistsRequestFailed) {
					t.Errorf("err = %v, want ErrExistsRequestFailed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IndexExists = %v, want %v", got, tt.want)
			}

			req := rec.at(0)
			if req.Method != http.MethodHead || req.Path != "/articles" {
				t.Errorf("expected HEAD /articles, got %s %s", req.Method, req.Path)
			}
		})
	}
}

func TestEnsureIndex_CreatesWhenMissing(t *testing.T) {
	rec := &recorder{respond: func(r *http.Request, _ int) int {
		if r.Method == http.MethodHead {
			return http.StatusNotFound
		}
		return http.StatusOK
	}}
	client := newTestClient(t, rec, 0)

	if err := client.EnsureIndex(context.Background(), "articles", Mapping{"title": "text"}); err != nil {
		t.Fatalf("EnsureIndex failed: %v", err)
	}

	if rec.count() != 2 {
		t.Fatalf("expected HEAD then PUT, got %d requests", rec.count())
	}
	if rec.at(1).Method != http.MethodPut {
		t.Errorf("second request = %s, want PUT", rec.at(1).Method)
	}
}

func TestEnsureIndex_SkipsCreateWhenPresent(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	if err := client.EnsureIndex(context.Background(), "articles", Mapping{"title": "text"}); err != nil {
		t.Fatalf("EnsureIndex failed: %v", err)
	}
	if rec.count() != 1 {
		t.Errorf("expected only the HEAD request, got %d", rec.count())
	}
}

func TestIndex_SingleDocument(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	err := client.Index(context.Background(), "articles", bulk.Document{"title": "hello"})
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	req := rec.at(0)
	if req.Method != http.MethodPost || req.Path != "/articles/_doc" {
		t.Errorf("expected POST /articles/_doc, got %s %s", req.Method, req.Path)
	}
	if !strings.Contains(req.Body, `"title":"hello"`) {
		t.Errorf("unexpected body: %s", req.Body)
	}
}

func TestIndexAsync_ReportsOutcome(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	errs := make(chan error, 1)
	client.IndexAsync(context.Background(), "articles", bulk.Document{"title": "hello"}, func(err error) {
		errs <- err
	})

	select {
	case err := <-errs:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestBulkIndex_PartitionsIntoSequentialRequests(t *testing.T) {
	docs := []bulk.Document{
		{"seq": 1}, {"seq": 2}, {"seq": 3}, {"seq": 4},
	}
	// Each doc encodes to 9 bytes; a 20-byte budget forces two docs per batch.
	rec := &recorder{}
	client := newTestClient(t, rec, 20)

	res := client.BulkIndex(context.Background(), "events", docs)

	if !res.Ok() {
		t.Fatalf("BulkIndex failed: %v", res.Err)
	}
	if res.Submitted != 2 {
		t.Errorf("Submitted = %d, want 2", res.Submitted)
	}
	if rec.count() != 2 {
		t.Fatalf("expected 2 bulk requests, got %d", rec.count())
	}

	for i := 0; i < rec.count(); i++ {
		req := rec.at(i)
		if req.Method != http.MethodPost || req.Path != "/events/_bulk" {
			t.Errorf("request %d: expected POST /events/_bulk, got %s %s", i, req.Method, req.Path)
		}
		lines := strings.Split(strings.TrimSuffix(req.Body, "\n"), "\n")
		if len(lines) != 4 {
			t.Errorf("request %d: expected 4 NDJSON lines, got %d", i, len(lines))
		}
		if lines[0] != `{"index":{}}` {
			t.Errorf("request %d: unexpected action line %q", i, lines[0])
		}
	}
}

func TestBulkIndex_StopsAtFirstFailedBatch(t *testing.T) {
	docs := []bulk.Document{
		{"seq": 1}, {"seq": 2}, {"seq": 3},
	}
	// 9-byte docs and a 9-byte budget give one batch per document; the
	// second bulk request fails, so the third must never be sent.
	rec := &recorder{respond: func(_ *http.Request, n int) int {
		if n == 2 {
			return http.StatusServiceUnavailable
		}
		return http.StatusOK
	}}
	client := newTestClient(t, rec, 9)

	res := client.BulkIndex(context.Background(), "events", docs)

	if res.Ok() {
		t.Fatal("expected failure")
	}
	if res.Submitted != 1 {
		t.Errorf("Submitted = %d, want 1", res.Submitted)
	}
	if rec.count() != 2 {
		t.Errorf("expected 2 requests, got %d", rec.count())
	}
}

func TestBulkIndex_InvalidNameFailsFast(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	res := client.BulkIndex(context.Background(), "Bad Name!", []bulk.Document{{"a": 1}})

	if !errors.Is(res.Err, ErrInvalidIndexName) {
		t.Errorf("err = %v, want ErrInvalidIndexName", res.Err)
	}
	if rec.count() != 0 {
		t.Errorf("expected 0 requests, got %d", rec.count())
	}
}

func TestBulkIndex_EmptyInputIsSuccessNoop(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	res := client.BulkIndex(context.Background(), "events", nil)

	if !res.Ok() || res.Submitted != 0 {
		t.Errorf("unexpected result %+v", res)
	}
	if rec.count() != 0 {
		t.Errorf("expected 0 requests, got %d", rec.count())
	}
}

func TestBulkIndexAsync_TerminalCallback(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	results := make(chan bulk.Result, 1)
	client.BulkIndexAsync(context.Background(), "events", []bulk.Document{{"a": 1}}, func(r bulk.Result) {
		results <- r
	})

	select {
	case res := <-results:
		if !res.Ok() || res.Submitted != 1 {
			t.Errorf("unexpected result %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("terminal callback never fired")
	}
}

func TestPing(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec, 0)

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
