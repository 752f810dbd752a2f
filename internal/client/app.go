// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rostersync/go-roster-sync/internal/adapter"
	"github.com/rostersync/go-roster-sync/internal/app"
	"github.com/rostersync/go-roster-sync/internal/config"
	"github.com/rostersync/go-roster-sync/internal/events"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/internal/service"
	"github.com/rostersync/go-roster-sync/internal/store"
	"github.com/rostersync/go-roster-sync/internal/workers"
)

// App owns the full client process lifecycle: storage, transport, the sync
// core, and the background workers that feed it.
type App struct {
	cfg      *config.StructuredConfig
	storages *store.Storages
	bus      *events.Bus
	state    *app.State
	roster   *LocalRoster
	settings *LocalSettings
	services *service.Services
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wires every layer from configuration down to the workers. The
// returned app is inert until Run is called.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	transport, err := adapter.NewHTTPTransport(cfg.Transport, log)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	roster := NewLocalRoster(storages.KeyValue)
	settings := NewLocalSettings(storages.KeyValue)
	state := app.NewState()

	services := service.NewServices(storages, transport, roster, settings, state, cfg.Sync, log)

	bus := events.NewBus()
	workerPool := workers.New(
		workers.NewJobQueueWorker(storages.Jobs, transport, cfg.Sync.DrainInterval, log),
		workers.NewEventListener(bus, services.Coordinator, log),
	)

	return &App{
		cfg:      cfg,
		storages: storages,
		bus:      bus,
		state:    state,
		roster:   roster,
		settings: settings,
		services: services,
		workers:  workerPool,
		logger:   log,
	}, nil
}

// Bus returns the notification bus the embedding runtime publishes roster
// and profile key events on.
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Roster returns the local roster storage.
func (a *App) Roster() *LocalRoster {
	return a.roster
}

// Settings returns the local settings storage.
func (a *App) Settings() *LocalSettings {
	return a.settings
}

// Coordinator returns the sync operations surface.
func (a *App) Coordinator() service.SyncCoordinator {
	return a.services.Coordinator
}

// Run starts the workers, marks the runtime ready, performs one initial
// full sync pass, and then blocks until SIGINT or SIGTERM. Shutdown stops
// the workers and closes storage.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.workers.Start(ctx)
	a.state.SetReady()
	a.logger.Info().Msg("roster sync client started")

	a.initialSync(ctx)

	<-ctx.Done()
	a.logger.Info().Msg("shutdown signal received")

	a.workers.Stop()
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}

	a.logger.Info().Msg("roster sync client stopped")
	return nil
}

// initialSync pushes the current state once at startup. Failures are
// logged and left for the triggered and scheduled paths to retry; startup
// never aborts over an unreachable server.
func (a *App) initialSync(ctx context.Context) {
	coordinator := a.services.Coordinator

	if err := coordinator.SyncAllContacts(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial contact sync failed")
	}
	if err := coordinator.SyncAllClosedGroups(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial closed group sync failed")
	}
	if err := coordinator.SyncAllCommunityGroups(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial community group sync failed")
	}
	if err := coordinator.PushConfiguration(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial configuration push failed")
	}
}
