package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-search/pkg/bulk"
	"github.com/huynhanx03/go-search/pkg/common/apperr"
	"github.com/huynhanx03/go-search/pkg/common/http/response"
	"github.com/huynhanx03/go-search/pkg/elasticsearch"
)

const serviceName = "indexing"

type CreateIndexRequest struct {
	Index   string            `json:"index" validate:"required"`
	Mapping map[string]string `json:"mapping" validate:"required,min=1"`
}

type CreateIndexResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

type BulkIndexRequest struct {
	Index     string           `json:"index" validate:"required"`
	Documents []map[string]any `json:"documents" validate:"required,min=1"`
}

type BulkIndexResponse struct {
	Batches int `json:"batches"`
}

// IndexingHandler exposes index administration and bulk ingestion over HTTP.
type IndexingHandler struct {
	indexer elasticsearch.Indexer
}

// NewIndexingHandler creates a new IndexingHandler.
func NewIndexingHandler(indexer elasticsearch.Indexer) *IndexingHandler {
	return &IndexingHandler{indexer: indexer}
}

// Register mounts the indexing routes on the given router.
func (h *IndexingHandler) Register(r gin.IRouter) {
	r.POST("/indices", Wrap(h.CreateIndex))
	r.GET("/indices/:name", h.IndexExists)
	r.POST("/documents/_bulk", Wrap(h.BulkIndex))
}

// CreateIndex creates an index with the requested field mapping.
func (h *IndexingHandler) CreateIndex(ctx context.Context, req *CreateIndexRequest) (*CreateIndexResponse, error) {
	err := h.indexer.CreateIndex(ctx, req.Index, elasticsearch.Mapping(req.Mapping))
	if err != nil {
		if errors.Is(err, elasticsearch.ErrInvalidIndexName) {
			return nil, apperr.MapError(serviceName, err, response.CodeValidationFailed, apperr.MsgInvalidName, http.StatusBadRequest)
		}
		return nil, apperr.MapError(serviceName, err, response.CodeInternalServer, apperr.MsgCreateIndexFailed, http.StatusInternalServerError)
	}

	return &CreateIndexResponse{Acknowledged: true}, nil
}

// BulkIndex submits the requested documents to the index in size-bounded
// sequential batches.
func (h *IndexingHandler) BulkIndex(ctx context.Context, req *BulkIndexRequest) (*BulkIndexResponse, error) {
	docs := make([]bulk.Document, len(req.Documents))
	for i, d := range req.Documents {
		docs[i] = bulk.Document(d)
	}

	res := h.indexer.BulkIndex(ctx, req.Index, docs)
	if !res.Ok() {
		if errors.Is(res.Err, elasticsearch.ErrInvalidIndexName) {
			return nil, apperr.MapError(serviceName, res.Err, response.CodeValidationFailed, apperr.MsgInvalidName, http.StatusBadRequest)
		}
		return nil, apperr.MapError(serviceName, res.Err, response.CodeInternalServer, apperr.MsgBulkIndexFailed, http.StatusInternalServerError)
	}

	return &BulkIndexResponse{Batches: res.Submitted}, nil
}

// IndexExists reports whether an index exists.
func (h *IndexingHandler) IndexExists(c *gin.Context) {
	exists, err := h.indexer.IndexExists(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.ErrorResponse(c, response.CodeInternalServer, response.ToErrorResponse(err))
		return
	}

	response.SuccessResponse(c, response.CodeSuccess, gin.H{"exists": exists})
}
