package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response 导入接口沿用的返回结构
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, httpStatus int, message, detail string) {
	c.JSON(httpStatus, Response{
		Status:  StatusError,
		Message: message,
		Detail:  detail,
	})
}

func Abort(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status:  StatusError,
		Message: message,
	})
}
