// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/models"
)

// memoryCustodianRepository keeps every account in process memory.
//
// The outer lock only guards the account map; each account carries its own
// lock so operations on different accounts never wait on each other beyond
// the map lookup.
type memoryCustodianRepository struct {
	mu       sync.RWMutex
	accounts map[string]*memoryAccount
	logger   *logger.Logger
}

// memoryAccount is an ordered label → record map.
type memoryAccount struct {
	mu      sync.RWMutex
	account models.Account
	labels  []string
	records map[string]models.KeyRecord
}

// NewMemoryCustodianRepository returns an empty in-memory [CustodianRepository].
func NewMemoryCustodianRepository(log *logger.Logger) CustodianRepository {
	log.Debug().Msg("creating in-memory custodian repository")
	return &memoryCustodianRepository{
		accounts: make(map[string]*memoryAccount),
		logger:   log,
	}
}

func (r *memoryCustodianRepository) CreateAccount(ctx context.Context, account models.Account, records []models.KeyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	acc := &memoryAccount{
		account: account,
		labels:  make([]string, 0, len(records)),
		records: make(map[string]models.KeyRecord, len(records)),
	}
	if acc.account.CreatedAt.IsZero() {
		acc.account.CreatedAt = time.Now().UTC()
	}
	acc.upsert(records)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; ok {
		return ErrAccountAlreadyExists
	}
	r.accounts[account.ID] = acc

	logger.FromContext(ctx).Debug().
		Str("func", "memoryCustodianRepository.CreateAccount").
		Str("account_id", account.ID).
		Int("records", len(records)).
		Msg("account created")
	return nil
}

func (r *memoryCustodianRepository) FindKeyRecord(ctx context.Context, accountID, label string) (models.KeyRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.KeyRecord{}, err
	}

	acc, ok := r.account(accountID)
	if !ok {
		return models.KeyRecord{}, ErrKeyRecordNotFound
	}

	acc.mu.RLock()
	defer acc.mu.RUnlock()

	rec, ok := acc.records[label]
	if !ok {
		return models.KeyRecord{}, ErrKeyRecordNotFound
	}
	return cloneRecord(rec), nil
}

func (r *memoryCustodianRepository) FindKeyRecords(ctx context.Context, accountID string) ([]models.KeyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acc, ok := r.account(accountID)
	if !ok {
		return nil, ErrAccountNotFound
	}

	acc.mu.RLock()
	defer acc.mu.RUnlock()

	out := make([]models.KeyRecord, 0, len(acc.labels))
	for _, label := range acc.labels {
		out = append(out, cloneRecord(acc.records[label]))
	}
	return out, nil
}

func (r *memoryCustodianRepository) UpsertKeyRecords(ctx context.Context, accountID string, records []models.KeyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	acc, ok := r.account(accountID)
	if !ok {
		return ErrAccountNotFound
	}

	acc.mu.Lock()
	acc.upsert(records)
	acc.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("func", "memoryCustodianRepository.UpsertKeyRecords").
		Str("account_id", accountID).
		Int("records", len(records)).
		Msg("key records upserted")
	return nil
}

func (r *memoryCustodianRepository) account(id string) (*memoryAccount, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[id]
	return acc, ok
}

// upsert must be called with a.mu held for writing (or before a is shared).
func (a *memoryAccount) upsert(records []models.KeyRecord) {
	for _, rec := range records {
		if _, exists := a.records[rec.Label]; !exists {
			a.labels = append(a.labels, rec.Label)
		}
		a.records[rec.Label] = cloneRecord(rec)
	}
}

// cloneRecord copies the only pointer field so callers can not alias
// stored state.
func cloneRecord(rec models.KeyRecord) models.KeyRecord {
	if rec.CustodialKey.Email != nil {
		email := *rec.CustodialKey.Email
		rec.CustodialKey.Email = &email
	}
	return rec
}
