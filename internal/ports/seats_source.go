//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/google/uuid"
)

//counterfeiter:generate -o ../mocks/seats_source.go . SeatsSource

// SeatsSource answers free-seat lookups, possibly from a short-lived cache.
type SeatsSource interface {
	FreeSeats(ctx context.Context, eventID uuid.UUID) ([]string, error)
}
