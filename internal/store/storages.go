package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	CustodianRepository CustodianRepository

	db *DB
}

// NewStorages selects the custodian backend: an empty DSN keeps everything
// in memory, anything else is a PostgreSQL URL that is migrated on start.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database configured, custodian state is kept in memory")
		return &Storages{CustodianRepository: NewMemoryCustodianRepository(log)}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CustodianRepository: NewCustodianRepository(db, log),
		db:                  db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
