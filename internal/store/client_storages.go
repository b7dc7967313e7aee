package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// AgentKeyRepository stores sealed agent keys in the local SQLite file.
	AgentKeyRepository LocalAgentKeyRepository

	db *DB
}

// NewClientStorages opens (creating if needed) and migrates the SQLite file
// at cfg.DB.DSN.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		AgentKeyRepository: NewLocalAgentKeyRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
