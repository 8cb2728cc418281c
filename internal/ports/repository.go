//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type (
	//counterfeiter:generate -o ../mocks/transactor.go . Transactor

	// Transactor runs fn inside a database transaction, committing on nil
	// and rolling back on error or panic.
	Transactor interface {
		WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	}

	//counterfeiter:generate -o ../mocks/event_repository.go . EventRepository

	EventRepository interface {
		Find(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)

		// FindWithPlace joins the venue into the returned event.
		FindWithPlace(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)

		// List returns one catalogue page plus the total row count for the filter.
		List(ctx context.Context, filter domain.EventListFilter) ([]domain.Event, int, error)

		// UpsertInTx inserts or updates an event by id, preserving created_at
		// on updates.
		UpsertInTx(ctx context.Context, tx *sqlx.Tx, event *domain.Event) error
	}

	//counterfeiter:generate -o ../mocks/place_repository.go . PlaceRepository

	PlaceRepository interface {
		UpsertInTx(ctx context.Context, tx *sqlx.Tx, place *domain.Place) error
	}

	//counterfeiter:generate -o ../mocks/ticket_repository.go . TicketRepository

	TicketRepository interface {
		FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)
		SaveInTx(ctx context.Context, tx *sqlx.Tx, ticket *domain.Ticket) error
		DeleteByTicketID(ctx context.Context, ticketID uuid.UUID) error
	}

	//counterfeiter:generate -o ../mocks/outbox_repository.go . OutboxRepository

	// OutboxRepository handles outbox records for reliable notification delivery.
	OutboxRepository interface {
		// CreateInTx enqueues a pending record within the caller's transaction.
		CreateInTx(ctx context.Context, tx *sqlx.Tx, record *domain.OutboxRecord) error

		// ClaimPendingInTx locks up to limit pending records for the caller's
		// transaction, skipping rows claimed by concurrent workers. Records are
		// returned oldest first.
		ClaimPendingInTx(ctx context.Context, tx *sqlx.Tx, limit int) ([]domain.OutboxRecord, error)

		MarkSentInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error

		IncrementRetryInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error

		// MarkFailedInTx moves a record to the terminal failed status.
		MarkFailedInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error

		// DeleteSentBefore trims delivered records older than the cutoff and
		// reports how many rows were removed.
		DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
	}

	//counterfeiter:generate -o ../mocks/idempotency_repository.go . IdempotencyRepository

	IdempotencyRepository interface {
		// Find returns a nil record and no error when the key is absent.
		Find(ctx context.Context, key string) (*domain.IdempotencyRecord, error)

		// SaveInTx inserts a new record. Inserting an existing key returns
		// domain.ErrDuplicateKey.
		SaveInTx(ctx context.Context, tx *sqlx.Tx, record *domain.IdempotencyRecord) error

		// DeleteExpired removes records whose expiry has passed and reports
		// how many rows were removed.
		DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	}

	//counterfeiter:generate -o ../mocks/sync_metadata_repository.go . SyncMetadataRepository

	// SyncMetadataRepository owns the singleton watermark row. Its status
	// column acts as a cooperative lock between concurrent sync runs.
	SyncMetadataRepository interface {
		// AcquireLock flips the row to in_progress and returns the current
		// metadata. It returns domain.ErrSyncInProgress when another run holds
		// the lock, unless the holder's heartbeat is older than staleAfter.
		AcquireLock(ctx context.Context, staleAfter time.Duration) (*domain.SyncMetadata, error)

		// ReleaseLock records the outcome of a run. lastChangedAt is only
		// advanced on success and never moves backwards.
		ReleaseLock(ctx context.Context, status domain.SyncStatus, lastSyncAt time.Time, lastChangedAt *time.Time) error

		Get(ctx context.Context) (*domain.SyncMetadata, error)

		// Reset forces the row back to pending, abandoning any held lock.
		Reset(ctx context.Context) error
	}
)
