package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/robfig/cron/v3"
)

// Ensure Scheduler implements the BackgroundProcessor interface
var _ ports.BackgroundProcessor = (*Scheduler)(nil)

// Scheduler runs the catalogue sync on a cron schedule. An overlapping run
// is not an error, the sync lock simply turns it into a no-op.
type Scheduler struct {
	syncer ports.CatalogueSyncer
	logger infrastructure.Logger
	cfg    config.SyncConfig
}

func NewScheduler(syncer ports.CatalogueSyncer, logger infrastructure.Logger, cfg config.SyncConfig) *Scheduler {
	return &Scheduler{
		syncer: syncer,
		logger: logger,
		cfg:    cfg,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	runner := cron.New()

	_, err := runner.AddFunc(s.cfg.Schedule, func() {
		result, err := s.syncer.Sync(ctx, "")
		switch {
		case errors.Is(err, domain.ErrSyncInProgress):
			s.logger.Info().Msg("scheduled sync skipped, another run is in progress")
		case err != nil:
			s.logger.Error().Err(err).Msg("scheduled sync failed")
		default:
			s.logger.Info().
				Int("processed", result.Processed).
				Int("skipped", result.Skipped).
				Msg("scheduled sync completed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}

	s.logger.Info().Str("schedule", s.cfg.Schedule).Msg("starting sync scheduler")

	runner.Start()

	<-ctx.Done()

	s.logger.Info().Msg("sync scheduler shutting down")

	stopCtx := runner.Stop()
	<-stopCtx.Done()

	return ctx.Err()
}
