// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport-layer abstraction used to deliver
// outbound sync messages to the user's other devices.
//
// The primary abstraction is [Transport], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPTransport]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrTooLarge] for 413, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/rostersync/go-roster-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport delivers one outbound sync unit. A call resolves exactly once:
// nil for confirmed delivery, an error for any failure. The transport owns
// its own timeout policy; the coordinator never retries a Deliver call
// itself, it only leaves state so the next natural trigger can.
type Transport interface {
	// Deliver sends msg (including its optional attachment) to the message
	// endpoint. Returns nil only when the endpoint confirmed receipt.
	Deliver(ctx context.Context, msg models.SyncMessage) error
}
