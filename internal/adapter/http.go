package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/rostersync/go-roster-sync/internal/config"
	"github.com/rostersync/go-roster-sync/internal/logger"
	"github.com/rostersync/go-roster-sync/models"
)

type httpTransport struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPTransport constructs a [Transport] that posts sync messages to the
// configured delivery endpoint.
func NewHTTPTransport(cfg config.Transport, log *logger.Logger) (Transport, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("transport base URL is required")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpTransport{client: cli, logger: log}, nil
}

// Deliver implements Transport. The message, attachment included, travels as
// one JSON document; the endpoint confirms receipt with a 2xx status.
func (h *httpTransport) Deliver(ctx context.Context, msg models.SyncMessage) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/api/sync/messages")
	if err != nil {
		return fmt.Errorf("deliver sync message %s: %w", msg.ID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("deliver sync message %s: %w", msg.ID, err)
	}

	h.logger.Debug().
		Str("message_id", msg.ID).
		Str("sync_type", string(msg.Type)).
		Int("payload_size", len(msg.Payload)).
		Msg("sync message delivered")

	return nil
}
