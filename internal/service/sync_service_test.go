package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/mocks"
)

type (
	SyncServiceTestSuite struct {
		suite.Suite
		mocks   *syncMockDependencies
		service *SyncService
	}

	syncMockDependencies struct {
		client     *mocks.FakeProviderClient
		transactor *mocks.FakeTransactor
		eventRepo  *mocks.FakeEventRepository
		placeRepo  *mocks.FakePlaceRepository
		syncMeta   *mocks.FakeSyncMetadataRepository
	}
)

func TestSyncServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.mocks = &syncMockDependencies{
		client:     &mocks.FakeProviderClient{},
		transactor: &mocks.FakeTransactor{},
		eventRepo:  &mocks.FakeEventRepository{},
		placeRepo:  &mocks.FakePlaceRepository{},
		syncMeta:   &mocks.FakeSyncMetadataRepository{},
	}

	s.mocks.transactor.WithinTxStub = func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	}

	s.service = NewSyncService(
		s.mocks.client,
		s.mocks.transactor,
		s.mocks.eventRepo,
		s.mocks.placeRepo,
		s.mocks.syncMeta,
		&infrastructure.NoOpMetrics{},
		infrastructure.NewTestLogger(),
		config.SyncConfig{
			Schedule:           "@daily",
			InitialChangedAt:   "2000-01-01",
			StaleLockThreshold: 30 * time.Minute,
		},
	)
}

func (s *SyncServiceTestSuite) TestSync_FirstRun_UsesInitialWatermark() {
	t := s.T()

	s.mocks.syncMeta.AcquireLockReturns(&domain.SyncMetadata{SyncStatus: domain.SyncStatusPending}, nil)

	changedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	page := &domain.EventsPage{
		Results: []domain.ProviderEvent{
			s.providerEvent(changedAt),
			s.providerEvent(changedAt.Add(time.Hour)),
		},
	}
	s.mocks.client.FetchEventsReturns(page, nil)

	result, err := s.service.Sync(t.Context(), "")

	s.Require().NoError(err)
	s.Require().Equal(2, result.Processed)
	s.Require().Equal(0, result.Skipped)
	s.Require().NotNil(result.LastChangedAt)
	s.Require().True(result.LastChangedAt.Equal(changedAt.Add(time.Hour)))

	_, changedAfter := s.mocks.client.FetchEventsArgsForCall(0)
	s.Require().Equal("2000-01-01", changedAfter)

	s.Require().Equal(2, s.mocks.placeRepo.UpsertInTxCallCount())
	s.Require().Equal(2, s.mocks.eventRepo.UpsertInTxCallCount())

	_, status, _, lastChangedAt := s.mocks.syncMeta.ReleaseLockArgsForCall(0)
	s.Require().Equal(domain.SyncStatusSuccess, status)
	s.Require().NotNil(lastChangedAt)
	s.Require().True(lastChangedAt.Equal(changedAt.Add(time.Hour)))
}

func (s *SyncServiceTestSuite) TestSync_SkipsEventsAtOrBelowWatermark() {
	t := s.T()

	watermark := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mocks.syncMeta.AcquireLockReturns(&domain.SyncMetadata{
		SyncStatus:    domain.SyncStatusSuccess,
		LastChangedAt: &watermark,
	}, nil)

	page := &domain.EventsPage{
		Results: []domain.ProviderEvent{
			s.providerEvent(watermark),
			s.providerEvent(watermark.Add(-time.Hour)),
			s.providerEvent(watermark.Add(time.Hour)),
		},
	}
	s.mocks.client.FetchEventsReturns(page, nil)

	result, err := s.service.Sync(t.Context(), "")

	s.Require().NoError(err)
	s.Require().Equal(1, result.Processed)
	s.Require().Equal(2, result.Skipped)
	s.Require().Equal(1, s.mocks.eventRepo.UpsertInTxCallCount())

	// The provider filter only has day granularity.
	_, changedAfter := s.mocks.client.FetchEventsArgsForCall(0)
	s.Require().Equal("2025-06-01", changedAfter)
}

func (s *SyncServiceTestSuite) TestSync_ForcedChangedAtOverridesWatermark() {
	t := s.T()

	watermark := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mocks.syncMeta.AcquireLockReturns(&domain.SyncMetadata{
		SyncStatus:    domain.SyncStatusSuccess,
		LastChangedAt: &watermark,
	}, nil)

	page := &domain.EventsPage{
		Results: []domain.ProviderEvent{
			s.providerEvent(watermark.Add(-time.Hour)),
			s.providerEvent(watermark.Add(time.Hour)),
		},
	}
	s.mocks.client.FetchEventsReturns(page, nil)

	result, err := s.service.Sync(t.Context(), "2020-01-01")

	s.Require().NoError(err)

	// The forced date replaces the watermark as the provider filter.
	_, changedAfter := s.mocks.client.FetchEventsArgsForCall(0)
	s.Require().Equal("2020-01-01", changedAfter)

	// The de-dup comparison still runs against the stored watermark.
	s.Require().Equal(1, result.Processed)
	s.Require().Equal(1, result.Skipped)
}

func (s *SyncServiceTestSuite) TestSync_FollowsPagination() {
	t := s.T()

	s.mocks.syncMeta.AcquireLockReturns(&domain.SyncMetadata{SyncStatus: domain.SyncStatusPending}, nil)

	nextURL := "https://provider.test/api/events/?page=2"
	changedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.mocks.client.FetchEventsReturns(&domain.EventsPage{
		Next:    &nextURL,
		Results: []domain.ProviderEvent{s.providerEvent(changedAt)},
	}, nil)
	s.mocks.client.FetchEventsPageReturns(&domain.EventsPage{
		Results: []domain.ProviderEvent{s.providerEvent(changedAt.Add(time.Minute))},
	}, nil)

	result, err := s.service.Sync(t.Context(), "")

	s.Require().NoError(err)
	s.Require().Equal(2, result.Processed)
	s.Require().Equal(1, s.mocks.client.FetchEventsPageCallCount())

	_, pageURL := s.mocks.client.FetchEventsPageArgsForCall(0)
	s.Require().Equal(nextURL, pageURL)
}

func (s *SyncServiceTestSuite) TestSync_LockHeld_ReturnsSyncInProgress() {
	t := s.T()

	s.mocks.syncMeta.AcquireLockReturns(nil, domain.ErrSyncInProgress)

	_, err := s.service.Sync(t.Context(), "")

	s.Require().ErrorIs(err, domain.ErrSyncInProgress)
	s.Require().Zero(s.mocks.transactor.WithinTxCallCount())
	s.Require().Zero(s.mocks.syncMeta.ReleaseLockCallCount())
}

func (s *SyncServiceTestSuite) TestSync_PullFailure_ReleasesLockAsFailed() {
	t := s.T()

	s.mocks.syncMeta.AcquireLockReturns(&domain.SyncMetadata{SyncStatus: domain.SyncStatusPending}, nil)
	s.mocks.client.FetchEventsReturns(nil, errors.New("provider exploded"))

	_, err := s.service.Sync(t.Context(), "")

	s.Require().Error(err)

	_, status, _, lastChangedAt := s.mocks.syncMeta.ReleaseLockArgsForCall(0)
	s.Require().Equal(domain.SyncStatusFailed, status)
	s.Require().Nil(lastChangedAt)
}

func (s *SyncServiceTestSuite) TestSync_MalformedEventID_Fails() {
	t := s.T()

	s.mocks.syncMeta.AcquireLockReturns(&domain.SyncMetadata{SyncStatus: domain.SyncStatusPending}, nil)

	event := s.providerEvent(time.Now())
	event.ID = "not-a-uuid"
	s.mocks.client.FetchEventsReturns(&domain.EventsPage{
		Results: []domain.ProviderEvent{event},
	}, nil)

	_, err := s.service.Sync(t.Context(), "")

	var unexpected *domain.ProviderUnexpectedResponseError
	s.Require().ErrorAs(err, &unexpected)
}

func (s *SyncServiceTestSuite) providerEvent(changedAt time.Time) domain.ProviderEvent {
	return domain.ProviderEvent{
		ID:   uuid.NewString(),
		Name: "Go Conference",
		Place: domain.ProviderPlace{
			ID:           uuid.NewString(),
			Name:         "Main Hall",
			City:         "Berlin",
			Address:      "Alexanderplatz 1",
			SeatsPattern: "A1-A10",
			ChangedAt:    changedAt,
			CreatedAt:    changedAt,
		},
		EventTime:            changedAt.AddDate(0, 1, 0),
		RegistrationDeadline: changedAt.AddDate(0, 0, 20),
		Status:               string(domain.EventStatusPublished),
		NumberOfVisitors:     0,
		ChangedAt:            changedAt,
		CreatedAt:            changedAt,
	}
}
