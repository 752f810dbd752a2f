// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rostersync/go-roster-sync/internal/adapter"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/internal/store"
	"github.com/rostersync/go-roster-sync/internal/utils"
	"github.com/rostersync/go-roster-sync/models"
)

type syncCoordinator struct {
	roster    RosterProvider
	settings  SettingsProvider
	readiness ReadinessGate
	trigger   *DebouncedTrigger
	transport adapter.Transport
	jobs      store.JobQueue
	ids       *utils.UUIDGenerator
	batchSize int
	logger    *logger.Logger
}

// NewSyncCoordinator wires the public sync operations over their
// collaborators. The coordinator owns no durable state; it composes the
// trigger, the fan-out sender, and the job queue per call.
func NewSyncCoordinator(
	roster RosterProvider,
	settings SettingsProvider,
	readiness ReadinessGate,
	trigger *DebouncedTrigger,
	transport adapter.Transport,
	jobs store.JobQueue,
	batchSize int,
	log *logger.Logger,
) SyncCoordinator {
	return &syncCoordinator{
		roster:    roster,
		settings:  settings,
		readiness: readiness,
		trigger:   trigger,
		transport: transport,
		jobs:      jobs,
		ids:       utils.NewUUIDGenerator(),
		batchSize: batchSize,
		logger:    log,
	}
}

// SyncLocalContactIfChanged implements SyncCoordinator.
func (c *syncCoordinator) SyncLocalContactIfChanged(ctx context.Context) error {
	return c.trigger.RequestSync(ctx, models.SyncTypeContacts,
		func() ([]byte, error) {
			local, err := c.roster.LocalContact(ctx)
			if err != nil {
				return nil, fmt.Errorf("load local contact: %w", err)
			}
			return encodeContacts([]models.Contact{local})
		},
		func(ctx context.Context, payload []byte) error {
			return c.transport.Deliver(ctx, c.newMessage(models.SyncTypeContacts, payload))
		},
	)
}

// SyncContact implements SyncCoordinator. A contact outside the roster or
// without an established friend relationship resolves as a no-op.
func (c *syncCoordinator) SyncContact(ctx context.Context, id string) error {
	contact, err := c.roster.Contact(ctx, id)
	if errors.Is(err, ErrContactNotFound) {
		c.logger.Debug().Str("contact_id", id).Msg("contact not in roster, sync skipped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load contact %s: %w", id, err)
	}
	if !contact.IsFriend {
		c.logger.Debug().Str("contact_id", id).Msg("no friend relationship, sync skipped")
		return nil
	}

	return c.sendContacts(ctx, []models.Contact{contact})
}

// SyncAllContacts implements SyncCoordinator.
func (c *syncCoordinator) SyncAllContacts(ctx context.Context) error {
	contacts, err := c.roster.Contacts(ctx)
	if err != nil {
		return fmt.Errorf("enumerate contacts: %w", err)
	}

	eligible := make([]models.Contact, 0, len(contacts))
	for _, contact := range contacts {
		if contact.Visible && !contact.ForceHidden && contact.IsFriend {
			eligible = append(eligible, contact)
		}
	}

	c.logger.Debug().Int("total", len(contacts)).Int("eligible", len(eligible)).Msg("syncing contact roster")

	return c.sendContacts(ctx, eligible)
}

// SyncAllClosedGroups implements SyncCoordinator.
func (c *syncCoordinator) SyncAllClosedGroups(ctx context.Context) error {
	groups, err := c.roster.Groups(ctx)
	if err != nil {
		return fmt.Errorf("enumerate groups: %w", err)
	}

	eligible := make([]models.Group, 0, len(groups))
	for _, group := range groups {
		if group.Kind == models.GroupKindClosed && group.Member && group.Visible && !group.ForceHidden {
			eligible = append(eligible, group)
		}
	}

	c.logger.Debug().Int("total", len(groups)).Int("eligible", len(eligible)).Msg("syncing closed groups")

	return SendBatched(ctx, c.transport, c.logger, eligible, c.batchSize,
		func(batch []models.Group) (models.SyncMessage, error) {
			payload, err := encodeGroups(batch)
			if err != nil {
				return models.SyncMessage{}, err
			}
			return c.newMessage(models.SyncTypeContacts, payload), nil
		},
	)
}

// SyncAllCommunityGroups implements SyncCoordinator. The whole community
// set travels as one message, so no batching is involved.
func (c *syncCoordinator) SyncAllCommunityGroups(ctx context.Context) error {
	groups, err := c.roster.Groups(ctx)
	if err != nil {
		return fmt.Errorf("enumerate groups: %w", err)
	}

	communities := make([]models.Group, 0, len(groups))
	for _, group := range groups {
		if group.Kind == models.GroupKindCommunity {
			communities = append(communities, group)
		}
	}

	payload, err := encodeGroups(communities)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildPayload, err)
	}

	if err = c.transport.Deliver(ctx, c.newMessage(models.SyncTypeContacts, payload)); err != nil {
		return fmt.Errorf("deliver community groups sync: %w", err)
	}

	return nil
}

// PushConfiguration implements SyncCoordinator. Durability comes from the
// job queue, not from fingerprinting: the snapshot always reflects the
// settings at enqueue time.
func (c *syncCoordinator) PushConfiguration(ctx context.Context) error {
	if !c.readiness.Ready() {
		c.logger.Debug().Msg("app not ready, configuration push skipped")
		return nil
	}
	registered, err := c.settings.IsRegistered(ctx)
	if err != nil {
		return fmt.Errorf("read registration state: %w", err)
	}
	if !registered {
		c.logger.Debug().Msg("device not registered, configuration push skipped")
		return nil
	}

	snapshot, err := c.settings.Configuration(ctx)
	if err != nil {
		return fmt.Errorf("read configuration snapshot: %w", err)
	}

	payload, err := encodeConfiguration(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildPayload, err)
	}

	if err = c.jobs.Enqueue(ctx, c.newMessage(models.SyncTypeConfiguration, payload)); err != nil {
		return fmt.Errorf("enqueue configuration push: %w", err)
	}

	return nil
}

func (c *syncCoordinator) sendContacts(ctx context.Context, contacts []models.Contact) error {
	return SendBatched(ctx, c.transport, c.logger, contacts, c.batchSize,
		func(batch []models.Contact) (models.SyncMessage, error) {
			payload, err := encodeContacts(batch)
			if err != nil {
				return models.SyncMessage{}, err
			}
			return c.newMessage(models.SyncTypeContacts, payload), nil
		},
	)
}

func (c *syncCoordinator) newMessage(syncType models.SyncType, payload []byte) models.SyncMessage {
	return models.SyncMessage{
		ID:      c.ids.Generate(),
		Type:    syncType,
		Payload: payload,
	}
}
