package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type (
	EventRepository struct {
		conn *sqlx.DB
	}

	eventRow struct {
		ID                   string     `db:"id"`
		Name                 string     `db:"name"`
		PlaceID              string     `db:"place_id"`
		EventTime            time.Time  `db:"event_time"`
		RegistrationDeadline time.Time  `db:"registration_deadline"`
		Status               string     `db:"status"`
		NumberOfVisitors     int        `db:"number_of_visitors"`
		CreatedAt            time.Time  `db:"created_at"`
		ChangedAt            time.Time  `db:"changed_at"`
		StatusChangedAt      *time.Time `db:"status_changed_at"`
	}

	eventWithPlaceRow struct {
		eventRow

		PlaceName         string    `db:"place_name"`
		PlaceCity         string    `db:"place_city"`
		PlaceAddress      string    `db:"place_address"`
		PlaceSeatsPattern string    `db:"place_seats_pattern"`
		PlaceCreatedAt    time.Time `db:"place_created_at"`
		PlaceChangedAt    time.Time `db:"place_changed_at"`
	}
)

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{
		conn: db,
	}
}

func (r *EventRepository) Find(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	query, args, err := psql.Select("id", "name", "place_id", "event_time", "registration_deadline",
		"status", "number_of_visitors", "created_at", "changed_at", "status_changed_at").
		From(eventsTable).
		Where(sq.Eq{"id": eventID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row eventRow
	if err := r.conn.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	return convertRowToDomainEvent(row)
}

// FindWithPlace joins the venue into the returned event.
func (r *EventRepository) FindWithPlace(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	query, args, err := psql.Select(
		"e.id", "e.name", "e.place_id", "e.event_time", "e.registration_deadline",
		"e.status", "e.number_of_visitors", "e.created_at", "e.changed_at", "e.status_changed_at",
		"p.name AS place_name", "p.city AS place_city", "p.address AS place_address",
		"p.seats_pattern AS place_seats_pattern", "p.created_at AS place_created_at",
		"p.changed_at AS place_changed_at").
		From(eventsTable + " e").
		Join(placesTable + " p ON p.id = e.place_id").
		Where(sq.Eq{"e.id": eventID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row eventWithPlaceRow
	if err := r.conn.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to query event with place: %w", err)
	}

	return convertRowToDomainEventWithPlace(row)
}

// List returns one catalogue page plus the total row count for the filter.
func (r *EventRepository) List(ctx context.Context, filter domain.EventListFilter) ([]domain.Event, int, error) {
	criteria := sq.And{}
	if filter.DateFrom != nil {
		criteria = append(criteria, sq.GtOrEq{"e.event_time": *filter.DateFrom})
	}

	countBuilder := psql.Select("COUNT(*)").
		From(eventsTable + " e")
	if len(criteria) > 0 {
		countBuilder = countBuilder.Where(criteria)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	builder := psql.Select(
		"e.id", "e.name", "e.place_id", "e.event_time", "e.registration_deadline",
		"e.status", "e.number_of_visitors", "e.created_at", "e.changed_at", "e.status_changed_at",
		"p.name AS place_name", "p.city AS place_city", "p.address AS place_address",
		"p.seats_pattern AS place_seats_pattern", "p.created_at AS place_created_at",
		"p.changed_at AS place_changed_at").
		From(eventsTable + " e").
		Join(placesTable + " p ON p.id = e.place_id").
		OrderBy("e.event_time ASC", "e.id ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))
	if len(criteria) > 0 {
		builder = builder.Where(criteria)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build select query: %w", err)
	}

	var rows []eventWithPlaceRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		event, err := convertRowToDomainEventWithPlace(row)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, *event)
	}

	return events, total, nil
}

// UpsertInTx inserts or updates an event by id. created_at is preserved on
// updates.
func (r *EventRepository) UpsertInTx(ctx context.Context, tx *sqlx.Tx, event *domain.Event) error {
	query, args, err := psql.Insert(eventsTable).
		Columns("id", "name", "place_id", "event_time", "registration_deadline",
			"status", "number_of_visitors", "created_at", "changed_at", "status_changed_at").
		Values(event.ID.String(), event.Name, event.PlaceID.String(), event.EventTime,
			event.RegistrationDeadline, string(event.Status), event.NumberOfVisitors,
			event.CreatedAt, event.ChangedAt, event.StatusChangedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			place_id = EXCLUDED.place_id,
			event_time = EXCLUDED.event_time,
			registration_deadline = EXCLUDED.registration_deadline,
			status = EXCLUDED.status,
			number_of_visitors = EXCLUDED.number_of_visitors,
			changed_at = EXCLUDED.changed_at,
			status_changed_at = EXCLUDED.status_changed_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert event: %w", err)
	}

	return nil
}

func convertRowToDomainEvent(row eventRow) (*domain.Event, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse id: %w", err)
	}

	placeID, err := uuid.Parse(row.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse place_id: %w", err)
	}

	return &domain.Event{
		ID:                   id,
		Name:                 row.Name,
		PlaceID:              placeID,
		EventTime:            row.EventTime,
		RegistrationDeadline: row.RegistrationDeadline,
		Status:               domain.EventStatus(row.Status),
		NumberOfVisitors:     row.NumberOfVisitors,
		CreatedAt:            row.CreatedAt,
		ChangedAt:            row.ChangedAt,
		StatusChangedAt:      row.StatusChangedAt,
	}, nil
}

func convertRowToDomainEventWithPlace(row eventWithPlaceRow) (*domain.Event, error) {
	event, err := convertRowToDomainEvent(row.eventRow)
	if err != nil {
		return nil, err
	}

	event.Place = &domain.Place{
		ID:           event.PlaceID,
		Name:         row.PlaceName,
		City:         row.PlaceCity,
		Address:      row.PlaceAddress,
		SeatsPattern: row.PlaceSeatsPattern,
		CreatedAt:    row.PlaceCreatedAt,
		ChangedAt:    row.PlaceChangedAt,
	}

	return event, nil
}
