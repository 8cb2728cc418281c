package service

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/provider"
	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SyncService pulls changed events from the provider into local storage.
// Runs are mutually exclusive through the sync metadata lock, and the
// changed_at watermark only ever moves forward.
type SyncService struct {
	client     ports.ProviderClient
	transactor ports.Transactor
	events     ports.EventRepository
	places     ports.PlaceRepository
	syncMeta   ports.SyncMetadataRepository
	metrics    infrastructure.Metrics
	logger     infrastructure.Logger
	cfg        config.SyncConfig
}

func NewSyncService(
	client ports.ProviderClient,
	transactor ports.Transactor,
	events ports.EventRepository,
	places ports.PlaceRepository,
	syncMeta ports.SyncMetadataRepository,
	metrics infrastructure.Metrics,
	logger infrastructure.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		client:     client,
		transactor: transactor,
		events:     events,
		places:     places,
		syncMeta:   syncMeta,
		metrics:    metrics,
		logger:     logger,
		cfg:        cfg,
	}
}

// Sync performs one incremental pull. The provider filter only has date
// granularity, so events already seen on the watermark day come back again
// and are dropped by the full-timestamp comparison. A non-empty
// forcedChangedAt replaces the watermark as the filter date; the de-dup
// comparison still runs against the stored watermark.
func (s *SyncService) Sync(ctx context.Context, forcedChangedAt string) (domain.SyncResult, error) {
	meta, err := s.syncMeta.AcquireLock(ctx, s.cfg.StaleLockThreshold)
	if err != nil {
		return domain.SyncResult{}, err
	}

	startTime := time.Now()

	result, err := s.pull(ctx, meta, forcedChangedAt)
	if err != nil {
		s.metrics.RecordSyncRun(ctx, time.Since(startTime), result.Processed, false)

		if releaseErr := s.syncMeta.ReleaseLock(ctx, domain.SyncStatusFailed, time.Now(), nil); releaseErr != nil {
			s.logger.Error().Err(releaseErr).Msg("failed to release sync lock after failure")
		}

		return domain.SyncResult{}, err
	}

	if err := s.syncMeta.ReleaseLock(ctx, domain.SyncStatusSuccess, time.Now(), result.LastChangedAt); err != nil {
		return domain.SyncResult{}, fmt.Errorf("failed to release sync lock: %w", err)
	}

	s.metrics.RecordSyncRun(ctx, time.Since(startTime), result.Processed, true)

	s.logger.Info().
		Int("processed", result.Processed).
		Int("skipped", result.Skipped).
		Msg("catalogue sync completed")

	return result, nil
}

// Status returns the current watermark row.
func (s *SyncService) Status(ctx context.Context) (*domain.SyncMetadata, error) {
	return s.syncMeta.Get(ctx)
}

// Reset abandons a held lock, for recovery after a crashed run.
func (s *SyncService) Reset(ctx context.Context) error {
	return s.syncMeta.Reset(ctx)
}

// pull walks the full provider listing and upserts everything newer than
// the watermark in one transaction, so a failed run leaves no partial state.
func (s *SyncService) pull(ctx context.Context, meta *domain.SyncMetadata, forcedChangedAt string) (domain.SyncResult, error) {
	changedAfter := s.cfg.InitialChangedAt
	switch {
	case forcedChangedAt != "":
		changedAfter = forcedChangedAt
	case meta.LastChangedAt != nil:
		changedAfter = meta.LastChangedAt.Format("2006-01-02")
	}

	var result domain.SyncResult

	err := s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		paginator := provider.NewPaginator(s.client, changedAfter)

		for {
			providerEvent, err := paginator.Next(ctx)
			if err != nil {
				return err
			}

			if providerEvent == nil {
				return nil
			}

			if meta.LastChangedAt != nil && !providerEvent.ChangedAt.After(*meta.LastChangedAt) {
				result.Skipped++
				continue
			}

			if err := s.upsertEvent(ctx, tx, providerEvent); err != nil {
				return err
			}

			result.Processed++

			if result.LastChangedAt == nil || providerEvent.ChangedAt.After(*result.LastChangedAt) {
				changedAt := providerEvent.ChangedAt
				result.LastChangedAt = &changedAt
			}
		}
	})
	if err != nil {
		return result, err
	}

	return result, nil
}

func (s *SyncService) upsertEvent(ctx context.Context, tx *sqlx.Tx, providerEvent *domain.ProviderEvent) error {
	place, err := convertProviderPlace(providerEvent.Place)
	if err != nil {
		return err
	}

	event, err := convertProviderEvent(providerEvent)
	if err != nil {
		return err
	}

	if err := s.places.UpsertInTx(ctx, tx, place); err != nil {
		return err
	}

	return s.events.UpsertInTx(ctx, tx, event)
}

func convertProviderPlace(p domain.ProviderPlace) (*domain.Place, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, &domain.ProviderUnexpectedResponseError{Reason: fmt.Sprintf("invalid place id %q", p.ID)}
	}

	return &domain.Place{
		ID:           id,
		Name:         p.Name,
		City:         p.City,
		Address:      p.Address,
		SeatsPattern: p.SeatsPattern,
		CreatedAt:    p.CreatedAt,
		ChangedAt:    p.ChangedAt,
	}, nil
}

func convertProviderEvent(e *domain.ProviderEvent) (*domain.Event, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, &domain.ProviderUnexpectedResponseError{Reason: fmt.Sprintf("invalid event id %q", e.ID)}
	}

	placeID, err := uuid.Parse(e.Place.ID)
	if err != nil {
		return nil, &domain.ProviderUnexpectedResponseError{Reason: fmt.Sprintf("invalid place id %q", e.Place.ID)}
	}

	return &domain.Event{
		ID:                   id,
		Name:                 e.Name,
		PlaceID:              placeID,
		EventTime:            e.EventTime,
		RegistrationDeadline: e.RegistrationDeadline,
		Status:               domain.EventStatus(e.Status),
		NumberOfVisitors:     e.NumberOfVisitors,
		CreatedAt:            e.CreatedAt,
		ChangedAt:            e.ChangedAt,
		StatusChangedAt:      e.StatusChangedAt,
	}, nil
}
