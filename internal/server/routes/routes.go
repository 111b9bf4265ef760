package routes

import (
	"github.com/mjbconsultora/website/internal/api/middleware"
	"github.com/mjbconsultora/website/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, opts Options) {
	logger := logging.GetGlobalLogger()

	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	api.Use(middleware.SecurityHeaders(opts.Production))

	SetupContactRoutes(api, h.Contact, opts)
	SetupReviewRoutes(api, h.Reviews, opts)

	if opts.StaticDir != "" {
		SetupStaticRoutes(router, opts.StaticDir)
		logger.Info("Serving static files from %s", opts.StaticDir)
	}

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
}
