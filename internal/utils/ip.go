package utils

import (
	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP. X-Forwarded-For and X-Real-IP are only
// honoured when the direct peer is one of the engine's trusted proxies
// (TRUSTED_PROXIES), so the value cannot be spoofed to dodge rate limits.
func GetRealIP(c *gin.Context) string {
	return c.ClientIP()
}
