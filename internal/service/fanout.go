// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rostersync/go-roster-sync/internal/adapter"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/models"
)

// SendBatched chunks entities into batches of at most maxSize, builds one
// outbound message per batch, and delivers all batches concurrently. It
// resolves only after every delivery resolved: nil when all succeeded,
// otherwise the first error encountered. A failing batch never aborts its
// siblings; partial delivery is accepted. An empty entity set resolves
// immediately as success with zero sends.
func SendBatched[T any](
	ctx context.Context,
	transport adapter.Transport,
	log *logger.Logger,
	entities []T,
	maxSize int,
	build func(batch []T) (models.SyncMessage, error),
) error {
	batches, err := Chunk(entities, maxSize)
	if err != nil {
		return err
	}

	// A plain errgroup (no derived context) never cancels siblings; it only
	// remembers the first error and waits for everyone.
	var g errgroup.Group
	for batch := range batches {
		g.Go(func() error {
			msg, err := build(batch)
			if err != nil {
				log.Error().Err(err).Int("batch_size", len(batch)).Msg("failed to build batch message")
				return fmt.Errorf("%w: %s", ErrBuildPayload, err)
			}

			if err = transport.Deliver(ctx, msg); err != nil {
				log.Error().Err(err).Str("message_id", msg.ID).Msg("batch delivery failed")
				return fmt.Errorf("deliver batch %s: %w", msg.ID, err)
			}

			log.Debug().Str("message_id", msg.ID).Int("batch_size", len(batch)).Msg("batch delivered")
			return nil
		})
	}

	return g.Wait()
}
