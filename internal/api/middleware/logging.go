package middleware

import (
	"time"

	"github.com/mjbconsultora/website/internal/api/constants"
	"github.com/mjbconsultora/website/internal/logging"
	"github.com/mjbconsultora/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request. The logger decides whether
// request logging is enabled (LOG_REQUESTS).
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.GetString(constants.ContextKeyRequestID),
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
