package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mjbconsultora/website/internal/logging"
	"github.com/mjbconsultora/website/internal/version"
)

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(context.Context) error

// Init installs a global tracer provider exporting over OTLP/gRPC. With no
// endpoint configured tracing stays on the no-op provider.
func Init(ctx context.Context, endpoint, serviceName string) (ShutdownFunc, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	target, insecure, err := grpcTarget(endpoint)
	if err != nil {
		return nil, err
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(target)}
	if insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version.Version),
		)),
	)
	otel.SetTracerProvider(provider)

	logging.GetGlobalLogger().Info("Tracing enabled, exporting to %s", endpoint)
	return provider.Shutdown, nil
}

// grpcTarget reduces an OTLP endpoint URL to the host:port the gRPC exporter
// dials. Only https endpoints use TLS.
func grpcTarget(endpoint string) (string, bool, error) {
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("invalid OTLP endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("invalid OTLP endpoint %q: missing host", endpoint)
	}
	return u.Host, u.Scheme != "https", nil
}
