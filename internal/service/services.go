package service

import (
	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/metrics"
	"github.com/MKhiriev/go-keyplace/internal/ratelimit"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/models"
)

// Services groups the server-side services.
type Services struct {
	CustodianService CustodianService
	AppInfoService   AppInfoService
}

// NewServices wires the custodian contract to storages. The rate limiter
// is built from cfg.Server; m may be nil.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.New(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, 0)

	return &Services{
		CustodianService: NewCustodianService(storages.CustodianRepository, cfg.App, limiter, m, logger),
		AppInfoService:   appInfo,
	}, nil
}
