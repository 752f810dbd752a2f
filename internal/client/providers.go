// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rostersync/go-roster-sync/internal/service"
	"github.com/rostersync/go-roster-sync/internal/store"
	"github.com/rostersync/go-roster-sync/models"
)

const (
	rosterCollection   = "roster"
	settingsCollection = "settings"

	contactsKey      = "contacts"
	groupsKey        = "groups"
	localContactKey  = "local_contact"
	configurationKey = "configuration"
	registeredKey    = "registered"
)

// LocalRoster persists the device's contact and group records in the local
// key-value store and serves them back to the sync coordinator. Each list
// travels as one JSON document; roster sizes on a single device stay small
// enough that per-entity rows would buy nothing.
type LocalRoster struct {
	kv store.KeyValueRepository
}

// NewLocalRoster returns a roster provider over the given repository.
func NewLocalRoster(kv store.KeyValueRepository) *LocalRoster {
	return &LocalRoster{kv: kv}
}

// Contacts implements [service.RosterProvider]. A device that never stored a
// roster yields an empty list.
func (r *LocalRoster) Contacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.load(ctx, contactsKey, &contacts); err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	return contacts, nil
}

// Contact implements [service.RosterProvider].
func (r *LocalRoster) Contact(ctx context.Context, id string) (models.Contact, error) {
	contacts, err := r.Contacts(ctx)
	if err != nil {
		return models.Contact{}, err
	}

	for _, contact := range contacts {
		if contact.ID == id {
			return contact, nil
		}
	}
	return models.Contact{}, service.ErrContactNotFound
}

// Groups implements [service.RosterProvider].
func (r *LocalRoster) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := r.load(ctx, groupsKey, &groups); err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	return groups, nil
}

// LocalContact implements [service.RosterProvider].
func (r *LocalRoster) LocalContact(ctx context.Context) (models.Contact, error) {
	var contact models.Contact
	if err := r.load(ctx, localContactKey, &contact); err != nil {
		return models.Contact{}, fmt.Errorf("load local contact: %w", err)
	}
	return contact, nil
}

// SaveContacts replaces the stored contact roster.
func (r *LocalRoster) SaveContacts(ctx context.Context, contacts []models.Contact) error {
	return r.save(ctx, contactsKey, contacts)
}

// SaveGroups replaces the stored group list.
func (r *LocalRoster) SaveGroups(ctx context.Context, groups []models.Group) error {
	return r.save(ctx, groupsKey, groups)
}

// SaveLocalContact replaces the stored local identity record.
func (r *LocalRoster) SaveLocalContact(ctx context.Context, contact models.Contact) error {
	return r.save(ctx, localContactKey, contact)
}

func (r *LocalRoster) load(ctx context.Context, key string, out any) error {
	raw, err := r.kv.Get(ctx, rosterCollection, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (r *LocalRoster) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Set(ctx, rosterCollection, key, raw)
}

// LocalSettings persists the user settings snapshot and the device
// registration flag in the local key-value store.
type LocalSettings struct {
	kv store.KeyValueRepository
}

// NewLocalSettings returns a settings provider over the given repository.
func NewLocalSettings(kv store.KeyValueRepository) *LocalSettings {
	return &LocalSettings{kv: kv}
}

// Configuration implements [service.SettingsProvider]. A device without a
// stored snapshot yields the all-disabled zero snapshot.
func (s *LocalSettings) Configuration(ctx context.Context) (models.ConfigurationSnapshot, error) {
	raw, err := s.kv.Get(ctx, settingsCollection, configurationKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.ConfigurationSnapshot{}, nil
	}
	if err != nil {
		return models.ConfigurationSnapshot{}, fmt.Errorf("load configuration: %w", err)
	}

	var snapshot models.ConfigurationSnapshot
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		return models.ConfigurationSnapshot{}, fmt.Errorf("decode configuration: %w", err)
	}
	return snapshot, nil
}

// IsRegistered implements [service.SettingsProvider]. A device that never
// stored the flag reports not registered; lookup failures surface as errors
// so a storage outage is never mistaken for an unregistered device.
func (s *LocalSettings) IsRegistered(ctx context.Context) (bool, error) {
	raw, err := s.kv.Get(ctx, settingsCollection, registeredKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load registration state: %w", err)
	}
	return string(raw) == "true", nil
}

// SaveConfiguration replaces the stored settings snapshot.
func (s *LocalSettings) SaveConfiguration(ctx context.Context, snapshot models.ConfigurationSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	return s.kv.Set(ctx, settingsCollection, configurationKey, raw)
}

// SetRegistered records whether the device completed registration.
func (s *LocalSettings) SetRegistered(ctx context.Context, registered bool) error {
	value := []byte("false")
	if registered {
		value = []byte("true")
	}
	return s.kv.Set(ctx, settingsCollection, registeredKey, value)
}
