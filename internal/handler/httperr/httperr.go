package httperr

import (
	"github.com/gin-gonic/gin"
)

// machine-readable codes carried in error.code
const (
	CodeValidation       = "VALIDATION"
	CodeDuplicateEmail   = "DUPLICATE_EMAIL"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeUnavailable      = "STORE_UNAVAILABLE"
	CodeInternal         = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
