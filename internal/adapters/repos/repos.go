package repos

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	placesTable          = "places"
	eventsTable          = "events"
	ticketsTable         = "tickets"
	outboxTable          = "outbox"
	idempotencyKeysTable = "idempotency_keys"
	syncMetadataTable    = "sync_metadata"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Transactor runs a function inside a single database transaction.
type Transactor struct {
	conn *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{
		conn: db,
	}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
func (t *Transactor) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := t.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
