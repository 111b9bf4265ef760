package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/mjbconsultora/website/internal/api/constants"
	"github.com/mjbconsultora/website/internal/api/dto/common"
	"github.com/mjbconsultora/website/internal/logging"
	"github.com/mjbconsultora/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a logged 500 with the usual JSON error body
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString(constants.ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgInternal, nil))
			}
		}()

		c.Next()
	}
}
