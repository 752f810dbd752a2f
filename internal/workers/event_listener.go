// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"

	"github.com/rostersync/go-roster-sync/internal/events"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/internal/service"
)

type eventListener struct {
	bus         *events.Bus
	coordinator service.SyncCoordinator
	logger      *logger.Logger

	mu   sync.Mutex
	subs []*events.Subscription
	wg   sync.WaitGroup
}

// NewEventListener creates the worker that bridges runtime notifications to
// the sync coordinator. Both roster changes and profile key rotations feed
// the same debounced "contacts" sync, so rapid bursts collapse into at most
// one in-flight attempt.
func NewEventListener(bus *events.Bus, coordinator service.SyncCoordinator, log *logger.Logger) Worker {
	return &eventListener{bus: bus, coordinator: coordinator, logger: log}
}

// Start implements Worker. Handlers run on the publisher's goroutine and
// must return quickly, so each trigger hands the actual sync attempt to its
// own goroutine.
func (l *eventListener) Start(ctx context.Context) {
	handler := func() {
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			if err := l.coordinator.SyncLocalContactIfChanged(ctx); err != nil {
				l.logger.Warn().Err(err).Msg("triggered contact sync failed")
			}
		}()
	}

	l.mu.Lock()
	l.subs = append(l.subs,
		l.bus.Subscribe(events.EventRosterChanged, handler),
		l.bus.Subscribe(events.EventProfileKeyChanged, handler),
	)
	l.mu.Unlock()
}

// Stop implements Worker. It detaches from the bus and waits for any
// in-flight triggered syncs to finish.
func (l *eventListener) Stop() {
	l.mu.Lock()
	subs := l.subs
	l.subs = nil
	l.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
	l.wg.Wait()
}
