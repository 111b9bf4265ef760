package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mjbconsultora/website/internal/config"
	"github.com/mjbconsultora/website/internal/logging"
	"github.com/mjbconsultora/website/internal/server"
	"github.com/mjbconsultora/website/internal/service"
	"github.com/mjbconsultora/website/internal/telemetry"
	"github.com/mjbconsultora/website/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = cfg.LogLevel
	logConfig.File = cfg.LogFile
	logConfig.LogRequests = cfg.LogRequests

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := logging.GetGlobalLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()

	if err != nil {
		logger.Error("%v", err)
	}
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. Deferred cleanup always runs before it returns.
func run(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	logger.Info("Starting server %s in %s mode", version.Info(), cfg.Environment)

	shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("Failed to flush traces: %v", err)
		}
	}()

	contactService, err := service.NewContactServiceFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to create contact service: %w", err)
	}
	if !contactService.CaptchaEnabled() {
		logger.Warn("RECAPTCHA_SECRET_KEY not set, submissions are accepted without CAPTCHA")
	}

	srv, err := server.NewServer(cfg, server.Services{
		Contact: contactService,
		Reviews: service.NewReviewService(cfg.ReviewsFile),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Init(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
