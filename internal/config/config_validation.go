// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
)

// validate checks the settings shared by server and client. Required
// server-only values are checked by [StructuredConfig.ValidateServer].
func (cfg *StructuredConfig) validate() error {
	if cfg.KDF != (KDF{}) {
		if err := cfg.KDFParams().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidKDFConfigs, err)
		}
	}

	switch cfg.Adapter.Transport {
	case "", TransportHTTP, TransportGRPC:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transport)
	}

	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Workers.DeriveConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateServer checks the values the custodian can not start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}

	return nil
}

// KDFParams converts the KDF section.
func (cfg *StructuredConfig) KDFParams() crypto.KDFParams {
	return crypto.KDFParams{N: cfg.KDF.N, R: cfg.KDF.R, P: cfg.KDF.P}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.Transport {
	case TransportHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: http address is required", ErrInvalidAdapterConfigs)
		}
	case TransportGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			return fmt.Errorf("%w: grpc address is required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transport)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.DeriveConcurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.VaultPassphrase == "" {
		return fmt.Errorf("%w: vault passphrase is required", ErrInvalidAppConfigs)
	}

	return nil
}
