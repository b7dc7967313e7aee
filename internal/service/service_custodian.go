// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ed25519"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/metrics"
	"github.com/MKhiriev/go-keyplace/internal/ratelimit"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/internal/validators"
	"github.com/MKhiriev/go-keyplace/models"
)

// Operation names used for metrics and logs.
const (
	opRegister     = "register"
	opAuthenticate = "authenticate"
	opSetKeys      = "set_keys"
	opRecover      = "recover"
)

// custodianService implements [CustodianService] on top of a
// [store.CustodianRepository].
type custodianService struct {
	repo      store.CustodianRepository
	validator validators.Validator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// limiter guards authenticate and recover per account id. Nil allows
	// everything.
	limiter *ratelimit.MapLimiter
	metrics *metrics.Metrics

	// compare decides every auth key match. Misses go through it too.
	compare func(stored, given models.UserAuthKey, found bool) bool

	now    func() time.Time
	logger *logger.Logger
}

// NewCustodianService wires the matching contract. limiter and m may be nil.
func NewCustodianService(repo store.CustodianRepository, cfg config.App, limiter *ratelimit.MapLimiter, m *metrics.Metrics, log *logger.Logger) CustodianService {
	return &custodianService{
		repo:          repo,
		validator:     validators.NewCustodianValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		limiter:       limiter,
		metrics:       m,
		compare:       authKeyMatches,
		now:           time.Now,
		logger:        log,
	}
}

// Register validates the request, creates the account and issues a session.
//
// Returns:
//   - ErrEmptyKeyList if records is empty.
//   - ErrInvalidDataProvided for a bad account id, label or duplicate label.
//   - ErrAccountAlreadyExists if accountID is taken.
func (s *custodianService) Register(ctx context.Context, accountID, name string, records []models.KeyRecord) (session models.Session, err error) {
	started := s.now()
	defer func() { s.metrics.Observe(opRegister, resultOf(err), started) }()

	log := logger.FromContext(ctx)

	req := models.RegisterRequest{AccountID: accountID, Name: name, Keys: records}
	if err = s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("account_id", accountID).Msg("register request rejected")
		return models.Session{}, validationError(err)
	}

	err = s.repo.CreateAccount(ctx, models.Account{ID: accountID, Name: name}, records)
	if errors.Is(err, store.ErrAccountAlreadyExists) {
		return models.Session{}, ErrAccountAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("account_id", accountID).Msg("account creation ended with error")
		return models.Session{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("account_id", accountID).Int("records", len(records)).Msg("account registered")
	return s.newSession(accountID)
}

// Authenticate looks up q.Label and compares auth keys in constant time.
// When the record does not exist the comparison still runs against a zero
// key, so a miss costs the same as a mismatch.
func (s *custodianService) Authenticate(ctx context.Context, accountID string, q models.AuthQuery) (session models.Session, match models.AuthMatch, err error) {
	started := s.now()
	defer func() { s.metrics.Observe(opAuthenticate, resultOf(err), started) }()

	if !s.allow(accountID, started) {
		return models.Session{}, models.AuthMatch{}, ErrRateLimited
	}

	if err = s.validator.Validate(ctx, models.AuthRequest{AccountID: accountID, Query: q}); err != nil {
		return models.Session{}, models.AuthMatch{}, validationError(err)
	}

	log := logger.FromContext(ctx)

	rec, err := s.repo.FindKeyRecord(ctx, accountID, q.Label)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrKeyRecordNotFound) && !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("account_id", accountID).Msg("key record lookup ended with error")
		return models.Session{}, models.AuthMatch{}, fmt.Errorf("key record lookup ended with error: %w", err)
	}

	if !s.compare(rec.UserAuthKey, q.UserAuthKey, found) {
		log.Debug().Str("account_id", accountID).Msg("authentication failed")
		return models.Session{}, models.AuthMatch{}, ErrNotFound
	}

	session, err = s.newSession(accountID)
	if err != nil {
		return models.Session{}, models.AuthMatch{}, err
	}

	return session, models.AuthMatch{Label: rec.Label, CustodialKey: rec.CustodialKey}, nil
}

// SetKeys verifies the session and the signature, then upserts records.
// A batch that repeats a label is rejected with ErrInvalidDataProvided.
//
// The signature is checked against the public key of the account's first
// record, over (account id, KeyRecordsDigest(records)).
func (s *custodianService) SetKeys(ctx context.Context, sessionToken string, records []models.KeyRecord, sig crypto.Signature) (err error) {
	started := s.now()
	defer func() { s.metrics.Observe(opSetKeys, resultOf(err), started) }()

	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(sessionToken, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session rejected")
		return ErrSessionInvalid
	}
	accountID := token.AccountID

	if err = s.validator.Validate(ctx, models.SetKeysRequest{Keys: records}); err != nil {
		return validationError(err)
	}

	existing, err := s.repo.FindKeyRecords(ctx, accountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return ErrSessionInvalid
	}
	if err != nil {
		log.Err(err).Str("account_id", accountID).Msg("key records lookup ended with error")
		return fmt.Errorf("key records lookup ended with error: %w", err)
	}
	if len(existing) == 0 {
		return ErrSessionInvalid
	}

	signer := ed25519.PublicKey(existing[0].CustodialKey.PubKey.AsBytes())
	if err = crypto.VerifyErr(signer, sig, crypto.String(accountID), crypto.Bytes(crypto.KeyRecordsDigest(records))); err != nil {
		log.Warn().Str("account_id", accountID).Msg("set keys signature rejected")
		return err
	}

	if err = s.repo.UpsertKeyRecords(ctx, accountID, records); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrSessionInvalid
		}
		log.Err(err).Str("account_id", accountID).Msg("key records upsert ended with error")
		return fmt.Errorf("key records upsert ended with error: %w", err)
	}

	log.Info().Str("account_id", accountID).Int("records", len(records)).Msg("key records stored")
	return nil
}

// Recover compares every attempt before answering. Unknown labels are
// compared against a zero key so the loop does the same work whether or
// not the label exists.
func (s *custodianService) Recover(ctx context.Context, accountID string, attempts []models.AuthQuery) (match models.AuthMatch, err error) {
	started := s.now()
	defer func() { s.metrics.Observe(opRecover, resultOf(err), started) }()

	if !s.allow(accountID, started) {
		return models.AuthMatch{}, ErrRateLimited
	}
	s.metrics.ObserveRecoverAttempts(len(attempts))

	log := logger.FromContext(ctx)

	if err = s.validator.Validate(ctx, models.RecoverRequest{AccountID: accountID, Attempts: attempts}, validators.FieldAttempts); err != nil {
		return models.AuthMatch{}, validationError(err)
	}

	records, err := s.repo.FindKeyRecords(ctx, accountID)
	if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("account_id", accountID).Msg("key records lookup ended with error")
		return models.AuthMatch{}, fmt.Errorf("key records lookup ended with error: %w", err)
	}

	byLabel := make(map[string]int, len(records))
	for i, rec := range records {
		byLabel[rec.Label] = i
	}

	first := -1
	for _, attempt := range attempts {
		var stored models.UserAuthKey
		i, found := byLabel[attempt.Label]
		if found {
			stored = records[i].UserAuthKey
		}
		if s.compare(stored, attempt.UserAuthKey, found) && first < 0 {
			first = i
		}
	}

	if first < 0 {
		log.Debug().Str("account_id", accountID).Int("attempts", len(attempts)).Msg("recovery failed")
		return models.AuthMatch{}, ErrNotFound
	}

	rec := records[first]
	log.Info().Str("account_id", accountID).Str("label", rec.Label).Msg("recovery matched")
	return models.AuthMatch{Label: rec.Label, CustodialKey: rec.CustodialKey}, nil
}

func (s *custodianService) allow(accountID string, now time.Time) bool {
	return s.limiter.Allow(accountID, now)
}

func (s *custodianService) newSession(accountID string) (models.Session, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, accountID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		s.logger.Err(err).Msg("session token creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token.Session(), nil
}

// authKeyMatches always runs the comparison; found only gates the result.
func authKeyMatches(stored, given models.UserAuthKey, found bool) bool {
	eq := subtle.ConstantTimeCompare(stored.Auth[:], given.Auth[:])
	return eq == 1 && found
}

func validationError(err error) error {
	if errors.Is(err, validators.ErrEmptyKeyList) {
		return ErrEmptyKeyList
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrRateLimited):
		return metrics.ResultRateLimited
	case errors.Is(err, ErrInvalidDataProvided),
		errors.Is(err, ErrEmptyKeyList),
		errors.Is(err, ErrSessionInvalid),
		errors.Is(err, ErrAccountAlreadyExists),
		errors.Is(err, crypto.ErrSignature):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
