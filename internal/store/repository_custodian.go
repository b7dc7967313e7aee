// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/jackc/pgerrcode"
)

// custodianRepository is the PostgreSQL implementation of
// [CustodianRepository] over the "accounts" and "key_records" tables.
//
// Writes run in a transaction and are retried on transient errors.
// UpsertKeyRecords locks the account row first, so concurrent batches for
// one account are applied one after another.
type custodianRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCustodianRepository constructs a PostgreSQL backed [CustodianRepository].
func NewCustodianRepository(db *DB, log *logger.Logger) CustodianRepository {
	log.Debug().Msg("creating postgres custodian repository")
	return &custodianRepository{
		db:     db,
		logger: log,
	}
}

// CreateAccount inserts the account row and its records in one transaction.
//
// Error handling:
//   - unique_violation (23505) on accounts → [ErrAccountAlreadyExists].
//   - any other driver error → wrapped with the matching low-level error.
func (r *custodianRepository) CreateAccount(ctx context.Context, account models.Account, records []models.KeyRecord) error {
	log := logger.FromContext(ctx)

	accountQuery, accountArgs, err := buildInsertAccountQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	recordsQuery, recordsArgs, err := buildUpsertKeyRecordsQuery(account.ID, dedupeRecords(records))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.withRetry(ctx, func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "*custodianRepository.CreateAccount").Msg("error beginning transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err = tx.QueryRowContext(ctx, accountQuery, accountArgs...).Scan(&account.CreatedAt); err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrAccountAlreadyExists
			}
			log.Err(err).Str("func", "*custodianRepository.CreateAccount").
				Str("account_id", account.ID).
				Msg("error inserting account")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err = tx.ExecContext(ctx, recordsQuery, recordsArgs...); err != nil {
			log.Err(err).Str("func", "*custodianRepository.CreateAccount").
				Str("account_id", account.ID).
				Msg("error inserting key records")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

// FindKeyRecord looks a single label up.
func (r *custodianRepository) FindKeyRecord(ctx context.Context, accountID, label string) (models.KeyRecord, error) {
	query, args, err := buildFindKeyRecordQuery(accountID, label)
	if err != nil {
		return models.KeyRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row keyRecordRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.KeyRecord{}, ErrKeyRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*custodianRepository.FindKeyRecord").
			Str("account_id", accountID).
			Msg("error selecting key record")
		return models.KeyRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.record()
}

// FindKeyRecords returns the records of an account ordered by position.
func (r *custodianRepository) FindKeyRecords(ctx context.Context, accountID string) ([]models.KeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindKeyRecordsQuery(accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*custodianRepository.FindKeyRecords").
			Str("account_id", accountID).
			Msg("error selecting key records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		found   bool
		records = make([]models.KeyRecord, 0, 8)
	)
	for rows.Next() {
		found = true

		var row keyRecordRow
		if err = rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		// account without records: the left join yields one NULL row
		if !row.label.Valid {
			continue
		}

		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !found {
		return nil, ErrAccountNotFound
	}
	return records, nil
}

// UpsertKeyRecords locks the account row, then inserts or overwrites every
// record in one statement.
func (r *custodianRepository) UpsertKeyRecords(ctx context.Context, accountID string, records []models.KeyRecord) error {
	log := logger.FromContext(ctx)

	lockQuery, lockArgs, err := buildLockAccountQuery(accountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	records = dedupeRecords(records)
	var upsertQuery string
	var upsertArgs []any
	if len(records) > 0 {
		if upsertQuery, upsertArgs, err = buildUpsertKeyRecordsQuery(accountID, records); err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	return r.db.withRetry(ctx, func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		var locked string
		err = tx.QueryRowContext(ctx, lockQuery, lockArgs...).Scan(&locked)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		if err != nil {
			log.Err(err).Str("func", "*custodianRepository.UpsertKeyRecords").
				Str("account_id", accountID).
				Msg("error locking account")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if upsertQuery != "" {
			if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
				log.Err(err).Str("func", "*custodianRepository.UpsertKeyRecords").
					Str("account_id", accountID).
					Msg("error upserting key records")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

// keyRecordRow is the scan target of a key_records row. Columns are
// nullable because of the left join in FindKeyRecords.
type keyRecordRow struct {
	label    sql.NullString
	authKey  []byte
	pubKey   []byte
	mask     []byte
	checkMac []byte
	email    sql.NullString
}

func (r *keyRecordRow) dest() []any {
	return []any{&r.label, &r.authKey, &r.pubKey, &r.mask, &r.checkMac, &r.email}
}

func (r *keyRecordRow) record() (models.KeyRecord, error) {
	var (
		rec models.KeyRecord
		err error
	)
	rec.Label = r.label.String

	if rec.UserAuthKey.Auth, err = models.Key32FromBytes(r.authKey); err != nil {
		return models.KeyRecord{}, fmt.Errorf("%w: auth_key of %q: %w", ErrCorruptRow, rec.Label, err)
	}
	if rec.CustodialKey.PubKey, err = models.Key32FromBytes(r.pubKey); err != nil {
		return models.KeyRecord{}, fmt.Errorf("%w: pubkey of %q: %w", ErrCorruptRow, rec.Label, err)
	}
	if rec.CustodialKey.Mask, err = models.Key32FromBytes(r.mask); err != nil {
		return models.KeyRecord{}, fmt.Errorf("%w: mask of %q: %w", ErrCorruptRow, rec.Label, err)
	}
	if rec.CustodialKey.Check, err = models.Key32FromBytes(r.checkMac); err != nil {
		return models.KeyRecord{}, fmt.Errorf("%w: check_mac of %q: %w", ErrCorruptRow, rec.Label, err)
	}
	if r.email.Valid {
		email := r.email.String
		rec.CustodialKey.Email = &email
	}
	return rec, nil
}
