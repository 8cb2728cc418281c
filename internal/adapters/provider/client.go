package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/shared/backoff"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

const (
	apiKeyHeader         = "x-api-key"
	idempotencyKeyHeader = "x-idempotency-key"
)

// retryStatuses lists the HTTP statuses treated as transient in addition to
// every 5xx.
var retryStatuses = map[int]struct{}{
	http.StatusRequestTimeout:  {},
	http.StatusTooManyRequests: {},
}

// Client talks to the upstream events provider over HTTP. Transport errors
// and transient statuses are retried with exponential backoff before the
// failure is surfaced as a classified domain error.
type Client struct {
	client         *resty.Client
	circuitBreaker *gobreaker.CircuitBreaker
	strategy       backoff.Strategy
	metrics        infrastructure.Metrics
	logger         infrastructure.Logger
	config         config.ProviderConfig
}

func NewClient(
	cfg config.ProviderConfig,
	strategy backoff.Strategy,
	metrics infrastructure.Metrics,
	logger infrastructure.Logger,
) *Client {
	client := resty.New()

	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader(apiKeyHeader, cfg.APIKey).
		SetHeader("Accept", "application/json")

	client.SetTransport(&http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
	})

	cbSettings := gobreaker.Settings{
		Name:        "events-provider",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info().
				Str("name", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	return &Client{
		client:         client,
		circuitBreaker: gobreaker.NewCircuitBreaker(cbSettings),
		strategy:       strategy,
		metrics:        metrics,
		logger:         logger,
		config:         cfg,
	}
}

// FetchEvents returns the first page of events changed on or after the given
// date (YYYY-MM-DD).
func (c *Client) FetchEvents(ctx context.Context, changedAfter string) (*domain.EventsPage, error) {
	page := &domain.EventsPage{}

	err := c.requestWithRetry(ctx, "fetch_events", func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetQueryParam("changed_at", changedAfter).
			SetResult(page).
			Get("/api/events/")
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FetchEventsPage follows an absolute pagination URL returned by a previous
// page.
func (c *Client) FetchEventsPage(ctx context.Context, pageURL string) (*domain.EventsPage, error) {
	page := &domain.EventsPage{}

	err := c.requestWithRetry(ctx, "fetch_events_page", func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetResult(page).
			Get(pageURL)
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FetchFreeSeats lists the currently unoccupied seats for an event. Lookups
// run through the circuit breaker since seat checks precede every
// registration and amplify provider outages.
func (c *Client) FetchFreeSeats(ctx context.Context, eventID string) ([]string, error) {
	result, err := c.circuitBreaker.Execute(func() (any, error) {
		var body struct {
			Seats []string `json:"seats"`
		}

		err := c.requestWithRetry(ctx, "fetch_free_seats", func() (*resty.Response, error) {
			return c.client.R().
				SetContext(ctx).
				SetResult(&body).
				Get(fmt.Sprintf("/api/events/%s/seats/", eventID))
		})
		if err != nil {
			return nil, err
		}

		return body.Seats, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			c.logger.Warn().Str("event_id", eventID).Msg("circuit breaker is open")

			return nil, &domain.ProviderTemporaryError{Status: 0, Cause: err}
		}

		return nil, err
	}

	return result.([]string), nil
}

// Register books a seat and returns the provider-issued ticket id. Every
// attempt carries the idempotency key, so a retried POST whose first try
// actually committed upstream cannot double book. A caller that has no key
// gets a generated one, shared across the retries of this call.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest, idempotencyKey string) (string, error) {
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	var body struct {
		TicketID string `json:"ticket_id"`
	}

	err := c.requestWithRetry(ctx, "register", func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetBody(req).
			SetResult(&body).
			SetHeader(idempotencyKeyHeader, idempotencyKey).
			Post(fmt.Sprintf("/api/events/%s/register/", req.EventID))
	})
	if err != nil {
		return "", err
	}

	if body.TicketID == "" {
		return "", &domain.ProviderUnexpectedResponseError{Reason: "registration response has no ticket_id"}
	}

	return body.TicketID, nil
}

// Unregister cancels a booking at the provider.
func (c *Client) Unregister(ctx context.Context, eventID, ticketID string) error {
	var body struct {
		Success bool `json:"success"`
	}

	err := c.requestWithRetry(ctx, "unregister", func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetBody(map[string]string{"ticket_id": ticketID}).
			SetResult(&body).
			Delete(fmt.Sprintf("/api/events/%s/unregister/", eventID))
	})
	if err != nil {
		return err
	}

	if !body.Success {
		return &domain.ProviderUnexpectedResponseError{Reason: "unregistration was not confirmed"}
	}

	return nil
}

// CheckAvailability probes the provider root without retries, used by health
// reporting.
func (c *Client) CheckAvailability(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return &domain.ProviderTemporaryError{Status: 0, Cause: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return &domain.ProviderPermanentError{Status: resp.StatusCode(), Message: resp.Status()}
	}

	return nil
}

// requestWithRetry performs the request up to MaxRetries times, sleeping per
// the backoff strategy between attempts. Only transport errors and transient
// statuses are retried.
func (c *Client) requestWithRetry(ctx context.Context, operation string, do func() (*resty.Response, error)) error {
	var lastErr error

	attempts := c.config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.strategy.Backoff(attempt)

			c.logger.Warn().
				Str("operation", operation).
				Int("attempt", attempt).
				Dur("delay", delay).
				Err(lastErr).
				Msg("retrying provider request")

			select {
			case <-ctx.Done():
				return &domain.ProviderTemporaryError{Status: 0, Cause: ctx.Err()}
			case <-time.After(delay):
			}
		}

		startTime := time.Now()

		resp, err := do()
		if err != nil {
			lastErr = &domain.ProviderTemporaryError{Status: 0, Cause: err}
			continue
		}

		c.metrics.RecordProviderRequest(ctx, operation, resp.StatusCode(), time.Since(startTime))

		status := resp.StatusCode()

		if status < http.StatusMultipleChoices {
			return nil
		}

		if _, retryable := retryStatuses[status]; retryable || status >= http.StatusInternalServerError {
			lastErr = &domain.ProviderTemporaryError{Status: status}
			continue
		}

		return &domain.ProviderPermanentError{Status: status, Message: strings.TrimSpace(string(resp.Body()))}
	}

	return lastErr
}
