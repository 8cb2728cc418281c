//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
)

//counterfeiter:generate -o ../mocks/catalogue_syncer.go . CatalogueSyncer

// CatalogueSyncer pulls changed events from the provider into local storage.
// A non-empty forcedChangedAt (ISO date) overrides the stored watermark as
// the provider filter for this run only.
type CatalogueSyncer interface {
	Sync(ctx context.Context, forcedChangedAt string) (domain.SyncResult, error)
}
