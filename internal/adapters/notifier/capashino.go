package notifier

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/go-resty/resty/v2"
)

type notificationRequest struct {
	Message        string `json:"message"`
	ReferenceID    string `json:"reference_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

// CapashinoClient delivers notifications through the Capashino service.
// Delivery is confirmed only by a 201 response.
type CapashinoClient struct {
	client *resty.Client
	logger infrastructure.Logger
}

func NewCapashinoClient(cfg config.NotifierConfig, logger infrastructure.Logger) *CapashinoClient {
	client := resty.New()

	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("X-API-Key", cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &CapashinoClient{
		client: client,
		logger: logger,
	}
}

func (c *CapashinoClient) Notify(ctx context.Context, idempotencyKey, referenceID, message string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(notificationRequest{
			Message:        message,
			ReferenceID:    referenceID,
			IdempotencyKey: idempotencyKey,
		}).
		Post("/api/notifications")
	if err != nil {
		return fmt.Errorf("failed to reach notification service: %w", err)
	}

	if resp.StatusCode() != http.StatusCreated {
		c.logger.Error().
			Int("status_code", resp.StatusCode()).
			Str("reference_id", referenceID).
			Str("body", string(resp.Body())).
			Msg("notification service rejected the request")

		return fmt.Errorf("notification service responded with status %d", resp.StatusCode())
	}

	return nil
}
