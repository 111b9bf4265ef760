package middleware

import (
	"github.com/mjbconsultora/website/internal/api/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RequestID tags every request with an id, reusing a well-formed inbound one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderRequestID, requestID)
		trace.SpanFromContext(c.Request.Context()).SetAttributes(attribute.String("http.request_id", requestID))

		c.Next()
	}
}
