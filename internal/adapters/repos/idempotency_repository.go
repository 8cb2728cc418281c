package repos

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type (
	IdempotencyRepository struct {
		conn *sqlx.DB
	}

	idempotencyRow struct {
		Key          string    `db:"key"`
		ResponseData []byte    `db:"response_data"`
		CreatedAt    time.Time `db:"created_at"`
		ExpiresAt    time.Time `db:"expires_at"`
	}
)

func NewIdempotencyRepository(db *sqlx.DB) *IdempotencyRepository {
	return &IdempotencyRepository{
		conn: db,
	}
}

// Find returns a nil record and no error when the key is absent.
func (r *IdempotencyRepository) Find(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	query, args, err := psql.Select("key", "response_data", "created_at", "expires_at").
		From(idempotencyKeysTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row idempotencyRow
	if err := r.conn.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to query idempotency key: %w", err)
	}

	var data domain.IdempotencyData
	if err := json.Unmarshal(row.ResponseData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response data: %w", err)
	}

	return &domain.IdempotencyRecord{
		Key:          row.Key,
		ResponseData: data,
		CreatedAt:    row.CreatedAt,
		ExpiresAt:    row.ExpiresAt,
	}, nil
}

// SaveInTx inserts a new record. Inserting an existing key returns
// domain.ErrDuplicateKey.
func (r *IdempotencyRepository) SaveInTx(ctx context.Context, tx *sqlx.Tx, record *domain.IdempotencyRecord) error {
	dataJSON, err := json.Marshal(record.ResponseData)
	if err != nil {
		return fmt.Errorf("failed to marshal response data: %w", err)
	}

	query, args, err := psql.Insert(idempotencyKeysTable).
		Columns("key", "response_data", "expires_at").
		Values(record.Key, dataJSON, record.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateKey
		}

		return fmt.Errorf("failed to save idempotency key: %w", err)
	}

	return nil
}

// DeleteExpired removes records whose expiry has passed.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Delete(idempotencyKeysTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired idempotency keys: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
