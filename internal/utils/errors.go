package utils

import (
	"github.com/mjbconsultora/website/internal/api/dto/common"
	"github.com/mjbconsultora/website/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the global logger
func LogError(err error, message string) {
	logging.GetGlobalLogger().Error("%s: %v", message, err)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// message is what the caller sees; err is only logged.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	HandleAPIErrorWithDetails(c, err, status, message, nil)
}

// HandleAPIErrorWithDetails is HandleAPIError with a machine-readable details payload
func HandleAPIErrorWithDetails(c *gin.Context, err error, status int, message string, details interface{}) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message, details))
}
