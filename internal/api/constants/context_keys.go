package constants

// Context keys set by middleware
const (
	// Request tracing
	ContextKeyRequestID = "RequestID"

	// Request body as read by PreserveRequestBody
	ContextKeyRawBody = "rawBody"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
)
