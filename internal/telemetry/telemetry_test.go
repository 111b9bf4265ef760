package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInit_NoEndpoint(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := Init(context.Background(), "", "mjb-website")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestInit_WithEndpoint(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	// The gRPC exporter connects lazily so no collector is needed
	shutdown, err := Init(context.Background(), "127.0.0.1:4317", "mjb-website")
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestGRPCTarget(t *testing.T) {
	tests := []struct {
		endpoint     string
		wantTarget   string
		wantInsecure bool
		wantErr      bool
	}{
		{"localhost:4317", "localhost:4317", true, false},
		{"http://collector:4317", "collector:4317", true, false},
		{"https://otel.example.com:4317/v1/traces", "otel.example.com:4317", false, false},
		{"http://", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			target, insecure, err := grpcTarget(tt.endpoint)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTarget, target)
			assert.Equal(t, tt.wantInsecure, insecure)
		})
	}
}
