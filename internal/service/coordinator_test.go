// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/internal/mock"
	"github.com/rostersync/go-roster-sync/models"
)

type coordinatorMocks struct {
	roster       *mock.MockRosterProvider
	settings     *mock.MockSettingsProvider
	readiness    *mock.MockReadinessGate
	fingerprints *mock.MockFingerprintStore
	transport    *mock.MockTransport
	jobs         *mock.MockJobQueue
}

func newTestCoordinator(ctrl *gomock.Controller, batchSize int) (SyncCoordinator, coordinatorMocks) {
	m := coordinatorMocks{
		roster:       mock.NewMockRosterProvider(ctrl),
		settings:     mock.NewMockSettingsProvider(ctrl),
		readiness:    mock.NewMockReadinessGate(ctrl),
		fingerprints: mock.NewMockFingerprintStore(ctrl),
		transport:    mock.NewMockTransport(ctrl),
		jobs:         mock.NewMockJobQueue(ctrl),
	}

	trigger := NewDebouncedTrigger(m.fingerprints, logger.Nop())
	coordinator := NewSyncCoordinator(
		m.roster, m.settings, m.readiness, trigger, m.transport, m.jobs, batchSize, logger.Nop(),
	)
	return coordinator, m
}

func decodeContactIDs(t *testing.T, payload []byte) []string {
	t.Helper()

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(payload, &contacts))

	ids := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		ids = append(ids, contact.ID)
	}
	return ids
}

func decodeGroupIDs(t *testing.T, payload []byte) []string {
	t.Helper()

	var groups []models.Group
	require.NoError(t, json.Unmarshal(payload, &groups))

	ids := make([]string, 0, len(groups))
	for _, group := range groups {
		ids = append(ids, group.ID)
	}
	return ids
}

func TestSyncAllContacts_OnlyEligibleDispatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 10)

	roster := []models.Contact{
		{ID: "c1", IsFriend: true, Visible: true},
		{ID: "c2", IsFriend: false, Visible: true},                   // not a friend
		{ID: "c3", IsFriend: true, Visible: false},                   // not visible
		{ID: "c4", IsFriend: true, Visible: true, ForceHidden: true}, // force hidden
		{ID: "c5", IsFriend: true, Visible: true},
	}
	m.roster.EXPECT().Contacts(gomock.Any()).Return(roster, nil)

	m.transport.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg models.SyncMessage) error {
			assert.Equal(t, models.SyncTypeContacts, msg.Type)
			assert.NotEmpty(t, msg.ID)
			assert.Equal(t, []string{"c1", "c5"}, decodeContactIDs(t, msg.Payload))
			return nil
		})

	require.NoError(t, coordinator.SyncAllContacts(context.Background()))
}

func TestSyncAllContacts_BatchesByConfiguredSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	roster := make([]models.Contact, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		roster = append(roster, models.Contact{ID: id, IsFriend: true, Visible: true})
	}
	m.roster.EXPECT().Contacts(gomock.Any()).Return(roster, nil)

	var mu sync.Mutex
	var sizes []int
	m.transport.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		Times(3).
		DoAndReturn(func(_ context.Context, msg models.SyncMessage) error {
			mu.Lock()
			sizes = append(sizes, len(decodeContactIDs(t, msg.Payload)))
			mu.Unlock()
			return nil
		})

	require.NoError(t, coordinator.SyncAllContacts(context.Background()))
	assert.ElementsMatch(t, []int{3, 3, 1}, sizes)
}

func TestSyncContact_NotInRosterIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	m.roster.EXPECT().
		Contact(gomock.Any(), "missing").
		Return(models.Contact{}, ErrContactNotFound)
	// zero Deliver expectations

	require.NoError(t, coordinator.SyncContact(context.Background(), "missing"))
}

func TestSyncContact_NonFriendIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	m.roster.EXPECT().
		Contact(gomock.Any(), "c1").
		Return(models.Contact{ID: "c1", IsFriend: false, Visible: true}, nil)

	require.NoError(t, coordinator.SyncContact(context.Background(), "c1"))
}

func TestSyncContact_FriendIsDelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	m.roster.EXPECT().
		Contact(gomock.Any(), "c1").
		Return(models.Contact{ID: "c1", Name: "Alice", IsFriend: true, Visible: true}, nil)

	m.transport.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg models.SyncMessage) error {
			assert.Equal(t, []string{"c1"}, decodeContactIDs(t, msg.Payload))
			return nil
		})

	require.NoError(t, coordinator.SyncContact(context.Background(), "c1"))
}

func TestSyncAllClosedGroups_FiltersAndBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	groups := []models.Group{
		{ID: "g1", Kind: models.GroupKindClosed, Member: true, Visible: true},
		{ID: "g2", Kind: models.GroupKindClosed, Member: false, Visible: true},     // left the group
		{ID: "g3", Kind: models.GroupKindCommunity, Member: true, Visible: true},   // wrong kind
		{ID: "g4", Kind: models.GroupKindClosed, Member: true, Visible: false},     // not visible
		{ID: "g5", Kind: models.GroupKindClosed, Member: true, Visible: true, ForceHidden: true},
		{ID: "g6", Kind: models.GroupKindClosed, Member: true, Visible: true},
		{ID: "g7", Kind: models.GroupKindClosed, Member: true, Visible: true},
		{ID: "g8", Kind: models.GroupKindClosed, Member: true, Visible: true},
	}
	m.roster.EXPECT().Groups(gomock.Any()).Return(groups, nil)

	var mu sync.Mutex
	var batches [][]string
	m.transport.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, msg models.SyncMessage) error {
			mu.Lock()
			batches = append(batches, decodeGroupIDs(t, msg.Payload))
			mu.Unlock()
			return nil
		})

	require.NoError(t, coordinator.SyncAllClosedGroups(context.Background()))

	var all []string
	for _, batch := range batches {
		all = append(all, batch...)
	}
	assert.ElementsMatch(t, []string{"g1", "g6", "g7", "g8"}, all)
}

func TestSyncAllCommunityGroups_SingleUnbatchedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// batch size 1 must not split the community set
	coordinator, m := newTestCoordinator(ctrl, 1)

	groups := []models.Group{
		{ID: "g1", Kind: models.GroupKindCommunity},
		{ID: "g2", Kind: models.GroupKindClosed, Member: true, Visible: true},
		{ID: "g3", Kind: models.GroupKindCommunity},
		{ID: "g4", Kind: models.GroupKindCommunity},
	}
	m.roster.EXPECT().Groups(gomock.Any()).Return(groups, nil)

	m.transport.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, msg models.SyncMessage) error {
			assert.Equal(t, []string{"g1", "g3", "g4"}, decodeGroupIDs(t, msg.Payload))
			return nil
		})

	require.NoError(t, coordinator.SyncAllCommunityGroups(context.Background()))
}

func TestSyncLocalContactIfChanged_SecondIdenticalPushSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	local := models.Contact{ID: "self", Name: "Me", IsFriend: true, Visible: true}
	m.roster.EXPECT().LocalContact(gomock.Any()).Return(local, nil).Times(2)

	var recorded []byte
	m.fingerprints.EXPECT().
		LastFingerprint(gomock.Any(), models.SyncTypeContacts).
		DoAndReturn(func(_ context.Context, _ models.SyncType) ([]byte, error) {
			return recorded, nil
		}).
		Times(2)
	m.fingerprints.EXPECT().
		SaveFingerprint(gomock.Any(), models.SyncTypeContacts, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.SyncType, payload []byte) error {
			recorded = payload
			return nil
		}).
		Times(1)

	m.transport.EXPECT().
		Deliver(gomock.Any(), gomock.Any()).
		Times(1).
		Return(nil)

	require.NoError(t, coordinator.SyncLocalContactIfChanged(context.Background()))
	// identical roster state serializes to identical bytes, so this skips
	require.NoError(t, coordinator.SyncLocalContactIfChanged(context.Background()))
}

func TestPushConfiguration_SkippedWhenNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	m.readiness.EXPECT().Ready().Return(false)
	// zero Enqueue expectations

	require.NoError(t, coordinator.PushConfiguration(context.Background()))
}

func TestPushConfiguration_SkippedWhenNotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	m.readiness.EXPECT().Ready().Return(true)
	m.settings.EXPECT().IsRegistered(gomock.Any()).Return(false, nil)

	require.NoError(t, coordinator.PushConfiguration(context.Background()))
}

func TestPushConfiguration_RegistrationLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	boom := errors.New("database locked")
	m.readiness.EXPECT().Ready().Return(true)
	m.settings.EXPECT().IsRegistered(gomock.Any()).Return(false, boom)
	// a storage outage surfaces as an error, never as a silent skip

	err := coordinator.PushConfiguration(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestPushConfiguration_EnqueuesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coordinator, m := newTestCoordinator(ctrl, 3)

	snapshot := models.ConfigurationSnapshot{
		ReadReceipts:     true,
		TypingIndicators: true,
	}

	m.readiness.EXPECT().Ready().Return(true)
	m.settings.EXPECT().IsRegistered(gomock.Any()).Return(true, nil)
	m.settings.EXPECT().Configuration(gomock.Any()).Return(snapshot, nil)

	m.jobs.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg models.SyncMessage) error {
			assert.Equal(t, models.SyncTypeConfiguration, msg.Type)

			var got models.ConfigurationSnapshot
			require.NoError(t, json.Unmarshal(msg.Payload, &got))
			assert.Equal(t, snapshot, got)
			return nil
		})

	require.NoError(t, coordinator.PushConfiguration(context.Background()))
}
