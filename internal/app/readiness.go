// SPDX-License-Identifier: Apache-2.0

// Package app holds shared application-lifecycle state consulted by the
// sync coordinator and its workers.
package app

import "sync/atomic"

// State tracks whether the client runtime has finished its startup sequence.
// Sync operations gated on readiness treat a not-ready state as a benign
// no-op, never as an error.
type State struct {
	ready atomic.Bool
}

// NewState returns a State that reports not ready until SetReady is called.
func NewState() *State {
	return &State{}
}

// SetReady marks the startup sequence as complete. Safe to call from any
// goroutine; subsequent calls are no-ops.
func (s *State) SetReady() {
	s.ready.Store(true)
}

// Ready reports whether the client finished starting up.
func (s *State) Ready() bool {
	return s.ready.Load()
}
