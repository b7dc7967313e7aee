package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/migrations"
)

const (
	maxRetries    = 3
	retryBaseWait = 50 * time.Millisecond
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps *sql.DB with the driver specific error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            migrations.Dialect
	logger             *logger.Logger
}

// Migrate applies the migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// withRetry runs op and retries it while the classifier reports a
// retryable failure (serialization failure, deadlock, lost connection).
// op must be safe to run again, i.e. a whole transaction.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxRetries-1 {
			break
		}

		logger.FromContext(ctx).Warn().Err(err).
			Int("attempt", attempt+1).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBaseWait << attempt):
		}
	}
	return err
}
