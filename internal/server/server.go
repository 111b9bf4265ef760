package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mjbconsultora/website/internal/api/handlers"
	"github.com/mjbconsultora/website/internal/api/middleware"
	"github.com/mjbconsultora/website/internal/config"
	"github.com/mjbconsultora/website/internal/logging"
	"github.com/mjbconsultora/website/internal/server/routes"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	services Services
	logger   *logging.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, services Services) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server config is required")
	}
	if services.Contact == nil || services.Reviews == nil {
		return nil, errors.New("contact and review services are required")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Request logging goes through our own logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	return &Server{
		router:   gin.New(),
		cfg:      cfg,
		services: services,
		logger:   logging.GetGlobalLogger(),
	}, nil
}

// Init installs middleware and routes
func (s *Server) Init() error {
	if err := s.router.SetTrustedProxies(s.cfg.TrustedProxies); err != nil {
		return fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	s.router.Use(otelgin.Middleware(s.cfg.ServiceName))
	routes.SetupGlobalMiddleware(s.router, s.logger)

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(),
		Contact: handlers.NewContactHandler(s.services.Contact),
		Reviews: handlers.NewReviewHandler(s.services.Reviews),
	}

	routes.Setup(s.router, h, routes.Options{
		AllowedOrigin: s.cfg.AllowedOrigin,
		Production:    s.cfg.IsProduction(),
		RateLimit: middleware.RateLimitConfig{
			RPS:   s.cfg.RateLimitRPS,
			Burst: s.cfg.RateLimitBurst,
		},
		MaxBodyBytes: s.cfg.MaxBodyBytes,
		StaticDir:    s.cfg.StaticDir,
	})

	return nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
