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
	TicketRepository struct {
		conn *sqlx.DB
	}

	ticketRow struct {
		ID           int64     `db:"id"`
		TicketID     string    `db:"ticket_id"`
		EventID      string    `db:"event_id"`
		Seat         string    `db:"seat"`
		FirstName    string    `db:"first_name"`
		LastName     string    `db:"last_name"`
		Email        string    `db:"email"`
		RegisteredAt time.Time `db:"registered_at"`
	}
)

func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{
		conn: db,
	}
}

func (r *TicketRepository) FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	query, args, err := psql.Select("id", "ticket_id", "event_id", "seat",
		"first_name", "last_name", "email", "registered_at").
		From(ticketsTable).
		Where(sq.Eq{"ticket_id": ticketID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row ticketRow
	if err := r.conn.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}

		return nil, fmt.Errorf("failed to query ticket: %w", err)
	}

	return convertRowToTicket(row)
}

func (r *TicketRepository) SaveInTx(ctx context.Context, tx *sqlx.Tx, ticket *domain.Ticket) error {
	query, args, err := psql.Insert(ticketsTable).
		Columns("ticket_id", "event_id", "seat", "first_name", "last_name", "email", "registered_at").
		Values(ticket.TicketID.String(), ticket.EventID.String(), ticket.Seat,
			ticket.FirstName, ticket.LastName, ticket.Email, ticket.RegisteredAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := tx.GetContext(ctx, &ticket.ID, query, args...); err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) DeleteByTicketID(ctx context.Context, ticketID uuid.UUID) error {
	query, args, err := psql.Delete(ticketsTable).
		Where(sq.Eq{"ticket_id": ticketID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func convertRowToTicket(row ticketRow) (*domain.Ticket, error) {
	ticketID, err := uuid.Parse(row.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket_id: %w", err)
	}

	eventID, err := uuid.Parse(row.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event_id: %w", err)
	}

	return &domain.Ticket{
		ID:           row.ID,
		TicketID:     ticketID,
		EventID:      eventID,
		Seat:         row.Seat,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		RegisteredAt: row.RegisteredAt,
	}, nil
}
