package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/models"
)

const (
	saveAgentKey = `INSERT INTO agent_keys (agent_id, pubkey, sealed_seed)
		VALUES (?, ?, ?)
		ON CONFLICT (agent_id) DO UPDATE SET pubkey = excluded.pubkey, sealed_seed = excluded.sealed_seed;`

	findAgentKey = `SELECT agent_id, pubkey, sealed_seed, created_at
		FROM agent_keys
		WHERE agent_id = ?;`

	listAgentKeys = `SELECT agent_id, pubkey, sealed_seed, created_at
		FROM agent_keys
		ORDER BY created_at, rowid;`

	deleteAgentKey = `DELETE FROM agent_keys WHERE agent_id = ?;`
)

// localAgentKeyRepository is the SQLite implementation of
// [LocalAgentKeyRepository].
type localAgentKeyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalAgentKeyRepository constructs a [LocalAgentKeyRepository].
func NewLocalAgentKeyRepository(db *DB, log *logger.Logger) LocalAgentKeyRepository {
	return &localAgentKeyRepository{db: db, logger: log}
}

func (r *localAgentKeyRepository) SaveAgentKey(ctx context.Context, key models.LocalAgentKey) error {
	if _, err := r.db.ExecContext(ctx, saveAgentKey, key.ID, key.PubKey[:], key.SealedSeed); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localAgentKeyRepository.SaveAgentKey").
			Str("agent_id", key.ID).
			Msg("error saving agent key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localAgentKeyRepository) FindAgentKey(ctx context.Context, agentID string) (models.LocalAgentKey, error) {
	key, err := scanAgentKey(r.db.QueryRowContext(ctx, findAgentKey, agentID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalAgentKey{}, ErrAgentKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localAgentKeyRepository.FindAgentKey").
			Str("agent_id", agentID).
			Msg("error loading agent key")
		return models.LocalAgentKey{}, err
	}
	return key, nil
}

func (r *localAgentKeyRepository) ListAgentKeys(ctx context.Context) ([]models.LocalAgentKey, error) {
	rows, err := r.db.QueryContext(ctx, listAgentKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []models.LocalAgentKey
	for rows.Next() {
		key, err := scanAgentKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return keys, nil
}

func (r *localAgentKeyRepository) DeleteAgentKey(ctx context.Context, agentID string) error {
	res, err := r.db.ExecContext(ctx, deleteAgentKey, agentID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrAgentKeyNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgentKey(row rowScanner) (models.LocalAgentKey, error) {
	var (
		key    models.LocalAgentKey
		pubKey []byte
	)
	if err := row.Scan(&key.ID, &pubKey, &key.SealedSeed, &key.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return key, err
		}
		return key, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var err error
	if key.PubKey, err = models.Key32FromBytes(pubKey); err != nil {
		return models.LocalAgentKey{}, fmt.Errorf("%w: pubkey of %q: %w", ErrCorruptRow, key.ID, err)
	}
	return key, nil
}
