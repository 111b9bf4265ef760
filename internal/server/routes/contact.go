package routes

import (
	"net/http"

	"github.com/mjbconsultora/website/internal/api/handlers"
	"github.com/mjbconsultora/website/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the contact form endpoint. Every method is
// routed to the handler so it can answer 405 with the JSON error body.
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, opts Options) {
	router.Any("/contact",
		middleware.CORS(opts.AllowedOrigin, http.MethodPost, http.MethodOptions),
		middleware.RateLimitMiddleware(opts.RateLimit),
		middleware.PreserveRequestBody(opts.MaxBodyBytes),
		contact.Handle,
	)
}
