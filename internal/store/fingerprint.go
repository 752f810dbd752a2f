// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/models"
)

// fingerprintCollection is the kv_entries collection holding one slot per
// sync type.
const fingerprintCollection = "sync_fingerprints"

type fingerprintStore struct {
	kv     KeyValueRepository
	logger *logger.Logger
}

// NewFingerprintStore constructs a [FingerprintStore] on top of the durable
// key-value repository. Slots for different sync types are independent rows;
// writes to the same slot are serialized by the debounced trigger, so no
// extra locking is needed here.
func NewFingerprintStore(kv KeyValueRepository, log *logger.Logger) FingerprintStore {
	return &fingerprintStore{kv: kv, logger: log}
}

// LastFingerprint implements FingerprintStore. A missing slot is reported as
// a nil payload, never as an error.
func (s *fingerprintStore) LastFingerprint(ctx context.Context, syncType models.SyncType) ([]byte, error) {
	value, err := s.kv.Get(ctx, fingerprintCollection, string(syncType))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read fingerprint for %s: %w", syncType, err)
	}

	return value, nil
}

// SaveFingerprint implements FingerprintStore.
func (s *fingerprintStore) SaveFingerprint(ctx context.Context, syncType models.SyncType, payload []byte) error {
	if err := s.kv.Set(ctx, fingerprintCollection, string(syncType), payload); err != nil {
		return fmt.Errorf("save fingerprint for %s: %w", syncType, err)
	}

	s.logger.Debug().Str("sync_type", string(syncType)).Int("size", len(payload)).Msg("fingerprint updated")

	return nil
}
