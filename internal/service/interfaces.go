// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic on both sides of the custodian.
//
// Server side, [CustodianService] is the credential matching contract: it
// stores key records per account and answers authenticate and recover
// queries without revealing why a query failed.
//
// Client side, [KeyManager] keeps agent keys sealed at rest and
// [ClientRecoveryService] drives signup, login and the recovery flows
// (question windows and printed codes) against a [adapter.CustodianAdapter].
package service

import (
	"context"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CustodianService is the credential matching contract.
type CustodianService interface {
	// Register creates accountID with its first records and opens a session.
	Register(ctx context.Context, accountID, name string, records []models.KeyRecord) (models.Session, error)

	// Authenticate checks one (label, auth key) pair. Every failure is
	// ErrNotFound.
	Authenticate(ctx context.Context, accountID string, q models.AuthQuery) (models.Session, models.AuthMatch, error)

	// SetKeys overwrites or appends records of the session's account. sig
	// must be made by the agent key of the account's first record over the
	// account id and the records digest.
	SetKeys(ctx context.Context, sessionToken string, records []models.KeyRecord, sig crypto.Signature) error

	// Recover returns the first attempt, in caller order, that matches a
	// stored record. Every attempt is compared before returning.
	Recover(ctx context.Context, accountID string, attempts []models.AuthQuery) (models.AuthMatch, error)
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// KeyManager keeps agent keys sealed in the local store and hands them out
// only for the duration of a callback.
type KeyManager interface {
	// Store seals key and saves it under its AgentID.
	Store(ctx context.Context, key *crypto.AgentKey) (crypto.AgentID, error)

	// WithKey loads and unseals id, calls fn and destroys the key on every
	// path, panics included. A missing id is crypto.ErrInvalidReferent.
	WithKey(ctx context.Context, id crypto.AgentID, fn func(key *crypto.AgentKey) error) error

	// PublicKey returns the stored public key of id without opening the
	// sealed seed. A missing id is crypto.ErrInvalidReferent.
	PublicKey(ctx context.Context, id crypto.AgentID) (models.Key32, error)

	// Delete removes id. A missing id is crypto.ErrInvalidReferent.
	Delete(ctx context.Context, id crypto.AgentID) error

	// List returns the stored ids, oldest first.
	List(ctx context.Context) ([]crypto.AgentID, error)
}

// ClientRecoveryService runs the client side of signup and recovery.
type ClientRecoveryService interface {
	// Signup creates a fresh agent key, registers it under label "primary"
	// with passphrase and stores it locally.
	Signup(ctx context.Context, accountID, name string, passphrase *crypto.Secret, email *string) (crypto.AgentID, models.Session, error)

	// Login authenticates label with passphrase, unmasks the returned
	// custodial key and stores it locally.
	Login(ctx context.Context, accountID, label string, passphrase *crypto.Secret) (crypto.AgentID, models.Session, error)

	// AddRecoveryQuestions registers one record per window of
	// consecutive answers and returns the labels used.
	AddRecoveryQuestions(ctx context.Context, session models.Session, id crypto.AgentID, questions []models.RecoveryQuestion) ([]string, error)

	// AddPrintedCodes registers n fresh mnemonic codes and returns them.
	// The codes are shown once and never stored.
	AddPrintedCodes(ctx context.Context, session models.Session, id crypto.AgentID, n int) ([]string, error)

	// RecoverWithQuestions recovers the agent key from answers, tolerating
	// wrong answers outside at least one window.
	RecoverWithQuestions(ctx context.Context, accountID string, questions []models.RecoveryQuestion) (crypto.AgentID, error)

	// RecoverWithPrintedCode recovers the agent key from one printed code.
	RecoverWithPrintedCode(ctx context.Context, accountID, code string, maxCodes int) (crypto.AgentID, error)

	// SignMessage signs fields with the stored key id.
	SignMessage(ctx context.Context, id crypto.AgentID, fields ...crypto.Field) (crypto.Signature, error)
}
