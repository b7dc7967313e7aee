package http

import (
	"time"

	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/metrics"
	"github.com/MKhiriev/go-keyplace/internal/service"
)

// maxBodyBytes bounds every request body. A full recovery batch of
// MaxKeysPerRequest records stays well below it.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case /metrics
// is not served.
func NewHandler(services *service.Services, m *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
