package store

import (
	"context"

	"github.com/MKhiriev/go-keyplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/custodian_repository_mock.go -package=mock

// CustodianRepository persists accounts and their ordered key records.
//
// Implementations must give each call a consistent view of one account:
// a reader never observes half of an UpsertKeyRecords batch.
type CustodianRepository interface {
	// CreateAccount stores account and its initial records atomically.
	// Returns ErrAccountAlreadyExists if the id is taken.
	CreateAccount(ctx context.Context, account models.Account, records []models.KeyRecord) error

	// FindKeyRecord returns the record stored under label. Returns
	// ErrKeyRecordNotFound for an unknown account or label.
	FindKeyRecord(ctx context.Context, accountID, label string) (models.KeyRecord, error)

	// FindKeyRecords returns every record of the account in insertion
	// order. Returns ErrAccountNotFound for an unknown account.
	FindKeyRecords(ctx context.Context, accountID string) ([]models.KeyRecord, error)

	// UpsertKeyRecords overwrites records whose label exists and appends
	// the others, in the order given. Returns ErrAccountNotFound for an
	// unknown account.
	UpsertKeyRecords(ctx context.Context, accountID string, records []models.KeyRecord) error
}
