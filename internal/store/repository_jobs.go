package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/models"
)

type jobQueueRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJobQueue constructs the SQLite-backed [JobQueue] over the sync_jobs
// table.
func NewJobQueue(db *DB, log *logger.Logger) JobQueue {
	return &jobQueueRepository{db: db, logger: log}
}

// Enqueue implements JobQueue. The message is serialized as JSON and stored
// under a fresh UUID; the row is the unit of durability for the
// configuration sync path.
func (r *jobQueueRepository) Enqueue(ctx context.Context, msg models.SyncMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode sync job message: %w", err)
	}

	jobID := uuid.NewString()
	query, args, err := sq.
		Insert("sync_jobs").
		Columns("id", "message", "attempts", "created_at").
		Values(jobID, payload, 0, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build job insert query: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin job enqueue transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("enqueue sync job: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit job enqueue transaction: %w", err)
	}

	r.logger.Debug().Str("job_id", jobID).Str("sync_type", string(msg.Type)).Msg("sync job enqueued")

	return nil
}

// Pending implements JobQueue, returning the oldest jobs first. A
// non-positive limit yields no jobs instead of wrapping into an unbounded
// LIMIT clause.
func (r *jobQueueRepository) Pending(ctx context.Context, limit int) ([]models.SyncJob, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := sq.
		Select("id", "message", "attempts", "created_at").
		From("sync_jobs").
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending jobs query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select pending jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.SyncJob
	for rows.Next() {
		var (
			job     models.SyncJob
			payload []byte
		)
		if err = rows.Scan(&job.ID, &payload, &job.Attempts, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending job: %w", err)
		}
		if err = json.Unmarshal(payload, &job.Message); err != nil {
			return nil, fmt.Errorf("decode sync job %s: %w", job.ID, err)
		}
		jobs = append(jobs, job)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending jobs: %w", err)
	}

	return jobs, nil
}

// Delete implements JobQueue.
func (r *jobQueueRepository) Delete(ctx context.Context, jobID string) error {
	query, args, err := sq.
		Delete("sync_jobs").
		Where(sq.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build job delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete sync job %s: %w", jobID, err)
	}

	return requireRowAffected(res, jobID)
}

// MarkAttempt implements JobQueue.
func (r *jobQueueRepository) MarkAttempt(ctx context.Context, jobID string) error {
	query, args, err := sq.
		Update("sync_jobs").
		Set("attempts", sq.Expr("attempts + 1")).
		Where(sq.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build job attempt query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark attempt for sync job %s: %w", jobID, err)
	}

	return requireRowAffected(res, jobID)
}

func requireRowAffected(res sql.Result, jobID string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows for job %s: %w", jobID, err)
	}
	if affected == 0 {
		return fmt.Errorf("job %s: %w", jobID, ErrJobNotFound)
	}
	return nil
}
