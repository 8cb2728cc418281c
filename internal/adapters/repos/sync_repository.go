package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/jmoiron/sqlx"
)

// syncMetadataID pins the singleton row.
const syncMetadataID = 1

type (
	SyncMetadataRepository struct {
		conn *sqlx.DB
	}

	syncMetadataRow struct {
		ID            int        `db:"id"`
		LastSyncAt    *time.Time `db:"last_sync_at"`
		LastChangedAt *time.Time `db:"last_changed_at"`
		SyncStatus    string     `db:"sync_status"`
		CreatedAt     time.Time  `db:"created_at"`
		UpdatedAt     time.Time  `db:"updated_at"`
	}
)

func NewSyncMetadataRepository(db *sqlx.DB) *SyncMetadataRepository {
	return &SyncMetadataRepository{
		conn: db,
	}
}

// AcquireLock flips the singleton row to in_progress and returns the
// metadata as it was before acquisition. A concurrent holder causes
// domain.ErrSyncInProgress unless its heartbeat is older than staleAfter.
func (r *SyncMetadataRepository) AcquireLock(ctx context.Context, staleAfter time.Duration) (*domain.SyncMetadata, error) {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := psql.Select("id", "last_sync_at", "last_changed_at", "sync_status",
		"created_at", "updated_at").
		From(syncMetadataTable).
		Where(sq.Eq{"id": syncMetadataID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row syncMetadataRow

	err = tx.GetContext(ctx, &row, query, args...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := r.insertInProgressInTx(ctx, tx); err != nil {
			return nil, err
		}

		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}

		return &domain.SyncMetadata{SyncStatus: domain.SyncStatusPending}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to query sync metadata: %w", err)
	}

	meta := convertRowToSyncMetadata(row)

	if meta.SyncStatus == domain.SyncStatusInProgress && time.Since(meta.UpdatedAt) < staleAfter {
		return nil, domain.ErrSyncInProgress
	}

	updateQuery, updateArgs, err := psql.Update(syncMetadataTable).
		Set("sync_status", string(domain.SyncStatusInProgress)).
		Set("last_sync_at", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": syncMetadataID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return meta, nil
}

// ReleaseLock records the outcome of a run. The watermark only moves
// forward, a stale value passed after a concurrent takeover cannot rewind it.
func (r *SyncMetadataRepository) ReleaseLock(ctx context.Context, status domain.SyncStatus, lastSyncAt time.Time, lastChangedAt *time.Time) error {
	query, args, err := releaseLockQuery(status, lastSyncAt, lastChangedAt)
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}

	return nil
}

func (r *SyncMetadataRepository) Get(ctx context.Context) (*domain.SyncMetadata, error) {
	query, args, err := psql.Select("id", "last_sync_at", "last_changed_at", "sync_status",
		"created_at", "updated_at").
		From(syncMetadataTable).
		Where(sq.Eq{"id": syncMetadataID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var row syncMetadataRow
	if err := r.conn.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to query sync metadata: %w", err)
	}

	return convertRowToSyncMetadata(row), nil
}

// Reset forces the row back to pending, abandoning any held lock.
func (r *SyncMetadataRepository) Reset(ctx context.Context) error {
	query, args, err := psql.Update(syncMetadataTable).
		Set("sync_status", string(domain.SyncStatusPending)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": syncMetadataID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to reset sync metadata: %w", err)
	}

	return nil
}

// releaseLockQuery builds the release update. GREATEST over the stored
// column keeps the watermark monotonic, a failed run omits it entirely.
func releaseLockQuery(status domain.SyncStatus, lastSyncAt time.Time, lastChangedAt *time.Time) (string, []interface{}, error) {
	builder := psql.Update(syncMetadataTable).
		Set("sync_status", string(status)).
		Set("last_sync_at", lastSyncAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": syncMetadataID})

	if lastChangedAt != nil {
		builder = builder.Set("last_changed_at",
			sq.Expr("GREATEST(COALESCE(last_changed_at, 'epoch'::timestamptz), ?)", *lastChangedAt))
	}

	return builder.ToSql()
}

func (r *SyncMetadataRepository) insertInProgressInTx(ctx context.Context, tx *sqlx.Tx) error {
	query, args, err := psql.Insert(syncMetadataTable).
		Columns("id", "sync_status", "last_sync_at").
		Values(syncMetadataID, string(domain.SyncStatusInProgress), sq.Expr("NOW()")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create sync metadata: %w", err)
	}

	return nil
}

func convertRowToSyncMetadata(row syncMetadataRow) *domain.SyncMetadata {
	return &domain.SyncMetadata{
		LastSyncAt:    row.LastSyncAt,
		LastChangedAt: row.LastChangedAt,
		SyncStatus:    domain.SyncStatus(row.SyncStatus),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
