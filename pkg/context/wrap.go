package context

import (
	"errors"
	"net/http"

	"github.com/ysEthan/magic-sync/pkg/response"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg, be.Detail)
				return
			}
			response.Fail(c, http.StatusInternalServerError, err.Error(), "")
		}
	}
}
