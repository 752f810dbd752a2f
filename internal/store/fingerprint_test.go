// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/models"
)

// fakeKV is an in-memory KeyValueRepository for fingerprint tests.
type fakeKV struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{entries: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, collection, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	value, ok := f.entries[collection+"/"+key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (f *fakeKV) Set(_ context.Context, collection, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[collection+"/"+key] = value
	return nil
}

func TestLastFingerprint_MissingSlotIsNotAnError(t *testing.T) {
	fs := NewFingerprintStore(newFakeKV(), logger.Nop())

	payload, err := fs.LastFingerprint(context.Background(), models.SyncTypeContacts)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestSaveFingerprint_RoundTrip(t *testing.T) {
	fs := NewFingerprintStore(newFakeKV(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, fs.SaveFingerprint(ctx, models.SyncTypeContacts, []byte("delivered")))

	payload, err := fs.LastFingerprint(ctx, models.SyncTypeContacts)
	require.NoError(t, err)
	assert.Equal(t, []byte("delivered"), payload)
}

func TestFingerprint_SlotsAreIndependent(t *testing.T) {
	fs := NewFingerprintStore(newFakeKV(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, fs.SaveFingerprint(ctx, models.SyncTypeContacts, []byte("contacts")))
	require.NoError(t, fs.SaveFingerprint(ctx, models.SyncTypeConfiguration, []byte("config")))

	contacts, err := fs.LastFingerprint(ctx, models.SyncTypeContacts)
	require.NoError(t, err)
	config, err := fs.LastFingerprint(ctx, models.SyncTypeConfiguration)
	require.NoError(t, err)

	assert.Equal(t, []byte("contacts"), contacts)
	assert.Equal(t, []byte("config"), config)
}

func TestLastFingerprint_PropagatesStorageError(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = assert.AnError
	fs := NewFingerprintStore(kv, logger.Nop())

	_, err := fs.LastFingerprint(context.Background(), models.SyncTypeContacts)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
