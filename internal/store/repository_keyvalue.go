package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/rostersync/go-roster-sync/internal/logger"
)

type keyValueRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyValueRepository constructs the SQLite-backed [KeyValueRepository]
// over the kv_entries table.
func NewKeyValueRepository(db *DB, log *logger.Logger) KeyValueRepository {
	return &keyValueRepository{db: db, logger: log}
}

// Get implements KeyValueRepository. The read runs in its own transaction
// so it never observes a half-applied Set from another collection.
func (r *keyValueRepository) Get(ctx context.Context, collection, key string) ([]byte, error) {
	query, args, err := sq.
		Select("value").
		From("kv_entries").
		Where(sq.Eq{"collection": collection, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kv select query: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin kv read transaction: %w", err)
	}
	defer tx.Rollback()

	var value []byte
	err = tx.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read kv entry %s/%s: %w", collection, key, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit kv read transaction: %w", err)
	}

	return value, nil
}

// Set implements KeyValueRepository using an upsert so the replace is atomic
// at the row level.
func (r *keyValueRepository) Set(ctx context.Context, collection, key string, value []byte) error {
	query, args, err := sq.
		Insert("kv_entries").
		Columns("collection", "key", "value").
		Values(collection, key, value).
		Suffix("ON CONFLICT(collection, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv upsert query: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin kv write transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write kv entry %s/%s: %w", collection, key, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit kv write transaction: %w", err)
	}

	r.logger.Debug().Str("collection", collection).Str("key", key).Msg("kv entry written")

	return nil
}
