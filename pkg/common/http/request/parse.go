package request

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-search/pkg/common/http/validation"
)

// ParseRequest binds and validates the JSON body of an incoming request.
func ParseRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.Wrap(err, "failed to bind request")
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		return nil, errors.New(msg)
	}

	return &req, nil
}
