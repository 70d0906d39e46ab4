package middleware

import (
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/post-service/internal/service"
	"github.com/d60-Lab/post-service/pkg/logger"
	"github.com/d60-Lab/post-service/pkg/response"
)

// ErrorHandler 统一错误出口（handler 用 c.Error 上抛）。
// 校验错误原样带消息返回；目标不存在返回统一失败；
// 其余按存储层故障处理：记日志、上报 Sentry、返回通用 500。
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		switch {
		case errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrContentRequired):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPostNotFound),
			errors.Is(err, service.ErrNotUpdated),
			errors.Is(err, service.ErrNotDeleted):
			response.Fail(c, http.StatusNotFound, err.Error())
		default:
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			if hub := sentrygin.GetHubFromContext(c); hub != nil {
				hub.CaptureException(err)
			}
			response.Fail(c, http.StatusInternalServerError, "internal error")
		}
	}
}
