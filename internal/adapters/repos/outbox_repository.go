package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type (
	OutboxRepository struct {
		conn *sqlx.DB
	}

	outboxRow struct {
		ID         string    `db:"id"`
		EventType  string    `db:"event_type"`
		Payload    []byte    `db:"payload"`
		Status     string    `db:"status"`
		RetryCount int       `db:"retry_count"`
		CreatedAt  time.Time `db:"created_at"`
		UpdatedAt  time.Time `db:"updated_at"`
	}
)

func NewOutboxRepository(db *sqlx.DB) *OutboxRepository {
	return &OutboxRepository{
		conn: db,
	}
}

// CreateInTx enqueues a pending record within the caller's transaction.
func (r *OutboxRepository) CreateInTx(ctx context.Context, tx *sqlx.Tx, record *domain.OutboxRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Status == "" {
		record.Status = domain.OutboxStatusPending
	}

	payloadJSON, err := json.Marshal(record.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query, args, err := psql.Insert(outboxTable).
		Columns("id", "event_type", "payload", "status", "retry_count").
		Values(record.ID.String(), string(record.EventType), payloadJSON,
			string(record.Status), record.RetryCount).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save outbox record: %w", err)
	}

	return nil
}

// ClaimPendingInTx locks up to limit pending records for the caller's
// transaction. Rows already locked by concurrent workers are skipped.
func (r *OutboxRepository) ClaimPendingInTx(ctx context.Context, tx *sqlx.Tx, limit int) ([]domain.OutboxRecord, error) {
	query, args, err := psql.Select("id", "event_type", "payload", "status", "retry_count",
		"created_at", "updated_at").
		From(outboxTable).
		Where(sq.Eq{"status": string(domain.OutboxStatusPending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var rows []outboxRow
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to claim pending outbox records: %w", err)
	}

	records := make([]domain.OutboxRecord, 0, len(rows))
	for _, row := range rows {
		record, err := convertRowToOutboxRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, nil
}

func (r *OutboxRepository) MarkSentInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	return r.updateStatusInTx(ctx, tx, id, domain.OutboxStatusSent)
}

func (r *OutboxRepository) IncrementRetryInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	query, args, err := psql.Update(outboxTable).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("status", string(domain.OutboxStatusPending)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to increment outbox retry count: %w", err)
	}

	return nil
}

// MarkFailedInTx moves a record to the terminal failed status.
func (r *OutboxRepository) MarkFailedInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	return r.updateStatusInTx(ctx, tx, id, domain.OutboxStatusFailed)
}

// DeleteSentBefore trims delivered records older than the cutoff.
func (r *OutboxRepository) DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := psql.Delete(outboxTable).
		Where(sq.And{
			sq.Eq{"status": string(domain.OutboxStatusSent)},
			sq.Lt{"created_at": cutoff},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sent outbox records: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (r *OutboxRepository) updateStatusInTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status domain.OutboxStatus) error {
	query, args, err := psql.Update(outboxTable).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update outbox status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("outbox record not found: %s", id)
	}

	return nil
}

func convertRowToOutboxRecord(row outboxRow) (*domain.OutboxRecord, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse id: %w", err)
	}

	var payload domain.TicketCreatedPayload
	if err := json.Unmarshal(row.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &domain.OutboxRecord{
		ID:         id,
		EventType:  domain.OutboxEventType(row.EventType),
		Payload:    payload,
		Status:     domain.OutboxStatus(row.Status),
		RetryCount: row.RetryCount,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}
