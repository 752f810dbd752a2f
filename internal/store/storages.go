package store

import (
	"context"
	"fmt"

	"github.com/rostersync/go-roster-sync/internal/config"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/migrations"
)

// Storages aggregates every repository backed by the local SQLite database.
type Storages struct {
	KeyValue     KeyValueRepository
	Fingerprints FingerprintStore
	Jobs         JobQueue

	db *DB
}

// NewStorages opens the local database, applies pending schema migrations,
// and wires all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("apply local migrations: %w", err)
	}

	kv := NewKeyValueRepository(db, log)

	return &Storages{
		KeyValue:     kv,
		Fingerprints: NewFingerprintStore(kv, log),
		Jobs:         NewJobQueue(db, log),
		db:           db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
