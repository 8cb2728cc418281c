//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
)

//counterfeiter:generate -o ../mocks/provider_client.go . ProviderClient

// ProviderClient talks to the upstream events provider. All methods retry
// transport failures and retryable statuses before classifying the error.
type ProviderClient interface {
	// FetchEvents returns the first page of events changed on or after the
	// given date (YYYY-MM-DD).
	FetchEvents(ctx context.Context, changedAfter string) (*domain.EventsPage, error)

	// FetchEventsPage follows a pagination URL returned in a previous page.
	FetchEventsPage(ctx context.Context, pageURL string) (*domain.EventsPage, error)

	// FetchFreeSeats lists the currently unoccupied seats for an event.
	FetchFreeSeats(ctx context.Context, eventID string) ([]string, error)

	// Register books a seat and returns the provider-issued ticket id. The
	// idempotency key shields against double booking on retried requests.
	Register(ctx context.Context, req domain.RegisterRequest, idempotencyKey string) (string, error)

	// Unregister cancels a booking at the provider.
	Unregister(ctx context.Context, eventID, ticketID string) error

	// CheckAvailability probes the provider for health reporting.
	CheckAvailability(ctx context.Context) error
}
