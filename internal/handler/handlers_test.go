package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/metrics"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both constructors only keep the pointers, so an empty container is enough.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{"both", config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, true, true, nil},
		{"http only", config.Server{HTTPAddress: ":8080", RequestTimeout: time.Second}, true, false, nil},
		{"grpc only", config.Server{GRPCAddress: ":9090"}, false, true, nil},
		{"none", config.Server{}, false, false, errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(newTestServices(), metrics.New(), tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NilMetrics(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}

	h1, err1 := NewHandlers(newTestServices(), nil, cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
