// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostersync/go-roster-sync/internal/service"
	"github.com/rostersync/go-roster-sync/internal/store"
	"github.com/rostersync/go-roster-sync/models"
)

type memoryKV struct {
	entries map[string][]byte
	getErr  error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{entries: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, collection, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	value, ok := m.entries[collection+"/"+key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKV) Set(_ context.Context, collection, key string, value []byte) error {
	m.entries[collection+"/"+key] = value
	return nil
}

func TestLocalRoster_EmptyDeviceYieldsEmptyLists(t *testing.T) {
	roster := NewLocalRoster(newMemoryKV())
	ctx := context.Background()

	contacts, err := roster.Contacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	groups, err := roster.Groups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestLocalRoster_SaveAndLoadContacts(t *testing.T) {
	roster := NewLocalRoster(newMemoryKV())
	ctx := context.Background()

	saved := []models.Contact{
		{ID: "c1", Name: "Alice", IsFriend: true, Visible: true},
		{ID: "c2", Name: "Bob", Visible: true},
	}
	require.NoError(t, roster.SaveContacts(ctx, saved))

	loaded, err := roster.Contacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLocalRoster_ContactLookup(t *testing.T) {
	roster := NewLocalRoster(newMemoryKV())
	ctx := context.Background()

	require.NoError(t, roster.SaveContacts(ctx, []models.Contact{
		{ID: "c1", Name: "Alice", IsFriend: true, Visible: true},
	}))

	contact, err := roster.Contact(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", contact.Name)

	_, err = roster.Contact(ctx, "unknown")
	assert.ErrorIs(t, err, service.ErrContactNotFound)
}

func TestLocalRoster_LocalContactRoundTrip(t *testing.T) {
	roster := NewLocalRoster(newMemoryKV())
	ctx := context.Background()

	local := models.Contact{ID: "self", Name: "Me", ProfileKey: []byte{1, 2, 3}}
	require.NoError(t, roster.SaveLocalContact(ctx, local))

	loaded, err := roster.LocalContact(ctx)
	require.NoError(t, err)
	assert.Equal(t, local, loaded)
}

func TestLocalSettings_DefaultsAndRoundTrip(t *testing.T) {
	settings := NewLocalSettings(newMemoryKV())
	ctx := context.Background()

	snapshot, err := settings.Configuration(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ConfigurationSnapshot{}, snapshot)

	want := models.ConfigurationSnapshot{ReadReceipts: true, LinkPreviews: true}
	require.NoError(t, settings.SaveConfiguration(ctx, want))

	snapshot, err = settings.Configuration(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, snapshot)
}

func TestLocalSettings_Registration(t *testing.T) {
	settings := NewLocalSettings(newMemoryKV())
	ctx := context.Background()

	registered, err := settings.IsRegistered(ctx)
	require.NoError(t, err)
	assert.False(t, registered)

	require.NoError(t, settings.SetRegistered(ctx, true))
	registered, err = settings.IsRegistered(ctx)
	require.NoError(t, err)
	assert.True(t, registered)

	require.NoError(t, settings.SetRegistered(ctx, false))
	registered, err = settings.IsRegistered(ctx)
	require.NoError(t, err)
	assert.False(t, registered)
}

func TestLocalSettings_RegistrationLookupError(t *testing.T) {
	kv := newMemoryKV()
	kv.getErr = errors.New("database locked")
	settings := NewLocalSettings(kv)

	_, err := settings.IsRegistered(context.Background())
	assert.ErrorIs(t, err, kv.getErr)
}
