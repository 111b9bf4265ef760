package routes

import (
	"github.com/mjbconsultora/website/internal/api/handlers"
	"github.com/mjbconsultora/website/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
	Reviews *handlers.ReviewHandler
}

// Options holds the per-route middleware settings
type Options struct {
	AllowedOrigin string
	Production    bool
	RateLimit     middleware.RateLimitConfig
	MaxBodyBytes  int64
	StaticDir     string
}
