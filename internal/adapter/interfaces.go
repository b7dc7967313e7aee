// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the custodian transport.
//
// [CustodianAdapter] hides whether the custodian is reached over HTTP
// ([NewHTTPCustodianAdapter], resty) or gRPC ([NewGRPCCustodianAdapter],
// JSON codec). Both map failures onto the sentinels in errors.go; the
// response body or status message is kept after the sentinel so the service
// layer can tell e.g. an invalid session from a failed authentication.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-keyplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/custodian_adapter_mock.go -package=mock

// CustodianAdapter is one connection to a custodian.
type CustodianAdapter interface {
	// Register creates the account and returns its first session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Authenticate proves knowledge of one label's auth key.
	Authenticate(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error)

	// SetKeys upserts records under the account bound to sessionToken.
	SetKeys(ctx context.Context, sessionToken string, req models.SetKeysRequest) error

	// Recover sends unauthenticated attempts and returns the first match.
	Recover(ctx context.Context, req models.RecoverRequest) (models.AuthMatch, error)

	// Close releases the underlying connection.
	Close() error
}
