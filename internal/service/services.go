package service

import (
	"github.com/rostersync/go-roster-sync/internal/adapter"
	"github.com/rostersync/go-roster-sync/internal/config"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/internal/store"
)

// Services aggregates the sync core built over the injected collaborators.
type Services struct {
	Trigger     *DebouncedTrigger
	Coordinator SyncCoordinator
}

// NewServices wires the debounced trigger and the coordinator from the
// storage layer, the transport, and the data providers.
func NewServices(
	storages *store.Storages,
	transport adapter.Transport,
	roster RosterProvider,
	settings SettingsProvider,
	readiness ReadinessGate,
	cfg config.Sync,
	log *logger.Logger,
) *Services {
	trigger := NewDebouncedTrigger(storages.Fingerprints, log)

	return &Services{
		Trigger: trigger,
		Coordinator: NewSyncCoordinator(
			roster,
			settings,
			readiness,
			trigger,
			transport,
			storages.Jobs,
			cfg.BatchSize,
			log,
		),
	}
}
