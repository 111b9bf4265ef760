package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows browser calls from the single designated origin. Pre-flight
// requests are answered by the route handler itself, so this never aborts.
func CORS(allowedOrigin string, methods ...string) gin.HandlerFunc {
	allowMethods := strings.Join(methods, ", ")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowedOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Max-Age", "86400") // 24 hours

		c.Next()
	}
}
