// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/rostersync/go-roster-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueRepository is the durable key-value store consumed by the
// fingerprint layer. Every access runs inside its own database transaction
// so concurrent readers of independent collections never observe partial
// writes.
type KeyValueRepository interface {
	// Get returns the value stored under collection/key.
	// Returns [ErrKeyNotFound] when the slot was never written.
	Get(ctx context.Context, collection, key string) ([]byte, error)

	// Set durably records value under collection/key, atomically replacing
	// any prior value.
	Set(ctx context.Context, collection, key string, value []byte) error
}

// FingerprintStore is the durable single-slot cache of "last delivered
// payload" per sync type.
type FingerprintStore interface {
	// LastFingerprint returns the payload bytes recorded for syncType by the
	// last successful delivery, or nil when nothing was ever recorded.
	// Absence is a valid result, not an error.
	LastFingerprint(ctx context.Context, syncType models.SyncType) ([]byte, error)

	// SaveFingerprint records payload as the new fingerprint for syncType.
	// Called only after the corresponding delivery was confirmed successful;
	// same-slot writes are serialized by the caller.
	SaveFingerprint(ctx context.Context, syncType models.SyncType, payload []byte) error
}

// JobQueue is the durable delivery queue used by the configuration sync
// path. Enqueued jobs survive restarts and are delivered at least once by
// the job-queue worker.
type JobQueue interface {
	// Enqueue durably stores msg for later delivery.
	Enqueue(ctx context.Context, msg models.SyncMessage) error

	// Pending returns up to limit jobs ordered by enqueue time. A
	// non-positive limit yields no jobs.
	Pending(ctx context.Context, limit int) ([]models.SyncJob, error)

	// Delete removes a delivered job from the queue.
	Delete(ctx context.Context, jobID string) error

	// MarkAttempt increments the attempt counter of a job whose delivery
	// failed.
	MarkAttempt(ctx context.Context, jobID string) error
}
