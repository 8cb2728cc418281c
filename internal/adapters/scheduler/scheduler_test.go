package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/mocks"
)

func TestScheduler_RunsSyncOnSchedule(t *testing.T) {
	t.Parallel()

	syncer := &mocks.FakeCatalogueSyncer{}

	s := NewScheduler(syncer, infrastructure.NewTestLogger(), config.SyncConfig{
		Schedule: "@every 10ms",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, syncer.SyncCallCount(), 1)
}

func TestScheduler_ToleratesRunsAlreadyInFlight(t *testing.T) {
	t.Parallel()

	syncer := &mocks.FakeCatalogueSyncer{}
	syncer.SyncReturns(domain.SyncResult{}, domain.ErrSyncInProgress)

	s := NewScheduler(syncer, infrastructure.NewTestLogger(), config.SyncConfig{
		Schedule: "@every 10ms",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, syncer.SyncCallCount(), 1)
}

func TestScheduler_RejectsInvalidSchedule(t *testing.T) {
	t.Parallel()

	s := NewScheduler(&mocks.FakeCatalogueSyncer{}, infrastructure.NewTestLogger(), config.SyncConfig{
		Schedule: "not a cron expression",
	})

	err := s.Start(context.Background())

	require.Error(t, err)
}
