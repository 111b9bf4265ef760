package routes

import (
	"net/http"

	"github.com/mjbconsultora/website/internal/api/handlers"
	"github.com/mjbconsultora/website/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReviewRoutes configures the read-only reviews endpoint
func SetupReviewRoutes(router *gin.RouterGroup, reviews *handlers.ReviewHandler, opts Options) {
	router.Any("/reviews",
		middleware.CORS(opts.AllowedOrigin, http.MethodGet, http.MethodOptions),
		reviews.Handle,
	)
}
