// SPDX-License-Identifier: Apache-2.0

// Package events implements the in-process notification source the sync
// coordinator subscribes to.
//
// Subscribers receive an explicit [Subscription] handle and must call its
// Unsubscribe method at teardown; there is no implicit cleanup. Handlers run
// synchronously on the publisher's goroutine while the bus lock is held, so
// they must hand work off and return quickly, and must not subscribe or
// unsubscribe from inside a handler.
package events

import "sync"

// EventType names one notification category fired by the client runtime.
type EventType int

const (
	// EventRosterChanged fires when a contact or group record was added,
	// removed, or edited locally.
	EventRosterChanged EventType = iota

	// EventProfileKeyChanged fires when the local profile key was rotated.
	EventProfileKeyChanged
)

// Handler is invoked once per published event it is subscribed to.
type Handler func()

// Subscription is the handle returned by [Bus.Subscribe]. Unsubscribe is
// idempotent and safe to call concurrently with Publish.
type Subscription struct {
	bus   *Bus
	event EventType
	id    int64
}

// Unsubscribe removes the handler from the bus. It blocks until any
// in-flight Publish has finished delivering; after it returns the handler
// will not be invoked again.
func (s *Subscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if handlers, ok := s.bus.handlers[s.event]; ok {
		delete(handlers, s.id)
	}
}

// Bus is a minimal typed publish/subscribe hub.
type Bus struct {
	mu       sync.RWMutex
	nextID   int64
	handlers map[EventType]map[int64]Handler
}

// NewBus constructs an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType]map[int64]Handler)}
}

// Subscribe registers handler for event and returns its subscription handle.
func (b *Bus) Subscribe(event EventType, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	if b.handlers[event] == nil {
		b.handlers[event] = make(map[int64]Handler)
	}
	b.handlers[event][b.nextID] = handler

	return &Subscription{bus: b, event: event, id: b.nextID}
}

// Publish invokes every handler currently subscribed to event. Handlers run
// on the caller's goroutine with the bus read lock held, which is what lets
// Unsubscribe promise that no invocation survives its return.
func (b *Bus) Publish(event EventType) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers[event] {
		h()
	}
}
