package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHandler_HealthStatus(t *testing.T) {
	h := NewHandler(logger.Nop())

	tests := []struct {
		name    string
		service string
	}{
		{name: "overall", service: ""},
		{name: "api", service: ServiceName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: tt.service})
			require.NoError(t, err)
			assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		})
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(logger.Nop())

	h.Shutdown()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(logger.Nop())

	_, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})

	assert.Error(t, err)
}
