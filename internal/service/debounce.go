// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/internal/store"
	"github.com/rostersync/go-roster-sync/models"
)

// DebouncedTrigger serializes sync attempts per sync type and drops
// triggers that arrive while an attempt is already in flight. Dropping is
// deliberate: triggers fire often enough that the next natural one retries,
// and queuing would grow without bound under rapid-fire events.
//
// The per-type flag is guarded by a mutex held only across the state
// transition, never across payload building, fingerprint reads, or
// delivery. Different sync types proceed fully independently.
type DebouncedTrigger struct {
	fingerprints store.FingerprintStore
	logger       *logger.Logger

	mu       sync.Mutex
	inFlight map[models.SyncType]bool
}

// NewDebouncedTrigger constructs a trigger over the given fingerprint store.
func NewDebouncedTrigger(fingerprints store.FingerprintStore, log *logger.Logger) *DebouncedTrigger {
	return &DebouncedTrigger{
		fingerprints: fingerprints,
		logger:       log,
		inFlight:     make(map[models.SyncType]bool),
	}
}

// RequestSync runs one debounced sync attempt for syncType.
//
// If another attempt for the same type is in flight the request is dropped
// silently and reports success. Otherwise the candidate payload is built
// and compared byte for byte against the last delivered fingerprint; an
// identical candidate skips delivery entirely. A changed candidate is
// handed to deliver, and only a successful delivery updates the
// fingerprint, so a failed attempt retries with the same or newer candidate
// on the next trigger.
//
// The in-flight flag is cleared on every exit path; a stuck flag would be a
// correctness bug.
func (t *DebouncedTrigger) RequestSync(
	ctx context.Context,
	syncType models.SyncType,
	build func() ([]byte, error),
	deliver func(ctx context.Context, payload []byte) error,
) error {
	if !t.begin(syncType) {
		t.logger.Debug().Str("sync_type", string(syncType)).Msg("sync already in flight, trigger dropped")
		return nil
	}
	defer t.end(syncType)

	candidate, err := build()
	if err != nil {
		t.logger.Error().Err(err).Str("sync_type", string(syncType)).Msg("failed to build sync payload")
		return fmt.Errorf("%w: %s", ErrBuildPayload, err)
	}

	last, err := t.fingerprints.LastFingerprint(ctx, syncType)
	if err != nil {
		return fmt.Errorf("read last fingerprint: %w", err)
	}
	if last != nil && bytes.Equal(candidate, last) {
		t.logger.Debug().Str("sync_type", string(syncType)).Msg("payload unchanged since last delivery, sync skipped")
		return nil
	}

	if err = deliver(ctx, candidate); err != nil {
		t.logger.Error().Err(err).Str("sync_type", string(syncType)).Msg("sync delivery failed")
		return fmt.Errorf("deliver %s sync: %w", syncType, err)
	}

	if err = t.fingerprints.SaveFingerprint(ctx, syncType, candidate); err != nil {
		return fmt.Errorf("record delivered fingerprint: %w", err)
	}

	return nil
}

// begin attempts the IDLE to IN_FLIGHT transition. It reports false when
// syncType was already in flight.
func (t *DebouncedTrigger) begin(syncType models.SyncType) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight[syncType] {
		return false
	}
	t.inFlight[syncType] = true
	return true
}

func (t *DebouncedTrigger) end(syncType models.SyncType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.inFlight[syncType] = false
}
