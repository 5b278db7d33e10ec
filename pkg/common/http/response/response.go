package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-search/pkg/common/apperr"
)

const (
	CodeSuccess          = 0
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeNotFound         = 40400
	CodeInternalServer   = 50000
)

var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeParamInvalid:     "invalid request parameters",
	CodeValidationFailed: "request validation failed",
	CodeNotFound:         "not found",
	CodeInternalServer:   "internal server error",
}

var codeStatus = map[int]int{
	CodeSuccess:          http.StatusOK,
	CodeParamInvalid:     http.StatusBadRequest,
	CodeValidationFailed: http.StatusBadRequest,
	CodeNotFound:         http.StatusNotFound,
	CodeInternalServer:   http.StatusInternalServerError,
}

// Response is the uniform envelope for all facade responses.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes a success envelope.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(statusFor(code), Response{
		Code:    code,
		Message: codeMessages[code],
		Data:    data,
	})
}

// ErrorResponse writes an error envelope. An *apperr.AppError overrides
// both the code and the HTTP status.
func ErrorResponse(c *gin.Context, code int, data any) {
	status := statusFor(code)
	switch v := data.(type) {
	case *apperr.AppError:
		code = v.Code
		status = v.HTTPStatus
		data = gin.H{"error": v.Error()}
	case error:
		data = ToErrorResponse(v)
	}

	c.JSON(status, Response{
		Code:    code,
		Message: codeMessages[code],
		Data:    data,
	})
}

// ToErrorResponse normalizes any error-ish value into a response payload.
func ToErrorResponse(v any) gin.H {
	return gin.H{"error": fmt.Sprint(v)}
}

func statusFor(code int) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
