package repos

import (
	"context"
	"fmt"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/jmoiron/sqlx"
)

type PlaceRepository struct {
	conn *sqlx.DB
}

func NewPlaceRepository(db *sqlx.DB) *PlaceRepository {
	return &PlaceRepository{
		conn: db,
	}
}

// UpsertInTx inserts or updates a venue by id. created_at is preserved on
// updates.
func (r *PlaceRepository) UpsertInTx(ctx context.Context, tx *sqlx.Tx, place *domain.Place) error {
	query, args, err := psql.Insert(placesTable).
		Columns("id", "name", "city", "address", "seats_pattern", "created_at", "changed_at").
		Values(place.ID.String(), place.Name, place.City, place.Address, place.SeatsPattern,
			place.CreatedAt, place.ChangedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			address = EXCLUDED.address,
			seats_pattern = EXCLUDED.seats_pattern,
			changed_at = EXCLUDED.changed_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert place: %w", err)
	}

	return nil
}
