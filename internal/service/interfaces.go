// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/rostersync/go-roster-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/providers_mock.go -package=mock

// RosterProvider is the read-only data source for contact and group records.
type RosterProvider interface {
	// Contacts returns every peer entity known to the local device.
	Contacts(ctx context.Context) ([]models.Contact, error)

	// Contact returns the single peer entity identified by id.
	// Returns [ErrContactNotFound] when no such record exists.
	Contact(ctx context.Context, id string) (models.Contact, error)

	// Groups returns every group entity known to the local device, closed
	// and community alike.
	Groups(ctx context.Context) ([]models.Group, error)

	// LocalContact returns the contact record describing the local identity.
	LocalContact(ctx context.Context) (models.Contact, error)
}

// SettingsProvider exposes the user settings and registration state consumed
// by the configuration sync path.
type SettingsProvider interface {
	// Configuration returns the current settings snapshot.
	Configuration(ctx context.Context) (models.ConfigurationSnapshot, error)

	// IsRegistered reports whether the local device completed registration.
	IsRegistered(ctx context.Context) (bool, error)
}

// ReadinessGate reports whether the client runtime finished starting up.
// Implemented by [app.State].
type ReadinessGate interface {
	Ready() bool
}

// SyncCoordinator is the public face of the sync core. Every operation
// eventually resolves; operations gated by a failed precondition resolve
// immediately as a benign no-op, not as an error.
type SyncCoordinator interface {
	// SyncLocalContactIfChanged pushes the local contact record to the
	// user's other devices through the debounced "contacts" trigger.
	// Byte-identical repeats of the last delivered payload are skipped.
	SyncLocalContactIfChanged(ctx context.Context) error

	// SyncContact pushes the single contact identified by id, but only when
	// an established friend relationship exists; otherwise it is a no-op.
	SyncContact(ctx context.Context, id string) error

	// SyncAllContacts pushes every eligible contact (visible, not force
	// hidden, friend) as a sequence of batched messages.
	SyncAllContacts(ctx context.Context) error

	// SyncAllClosedGroups pushes every eligible closed group (visible, not
	// force hidden, member) as a sequence of batched messages.
	SyncAllClosedGroups(ctx context.Context) error

	// SyncAllCommunityGroups pushes one message representing every
	// community group; the set travels unbatched.
	SyncAllCommunityGroups(ctx context.Context) error

	// PushConfiguration enqueues the current settings snapshot on the
	// durable job queue. Gated on readiness and registration.
	PushConfiguration(ctx context.Context) error
}
