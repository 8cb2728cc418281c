package outbox

import (
	"context"
	"errors"
	"fmt"
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
	WorkerTestSuite struct {
		suite.Suite
		mocks  *workerMockDependencies
		worker *Worker
	}

	workerMockDependencies struct {
		transactor  *mocks.FakeTransactor
		outboxRepo  *mocks.FakeOutboxRepository
		idempotency *mocks.FakeIdempotencyRepository
		notifier    *mocks.FakeNotifier
	}
)

func TestWorkerTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) SetupTest() {
	s.mocks = &workerMockDependencies{
		transactor:  &mocks.FakeTransactor{},
		outboxRepo:  &mocks.FakeOutboxRepository{},
		idempotency: &mocks.FakeIdempotencyRepository{},
		notifier:    &mocks.FakeNotifier{},
	}

	s.mocks.transactor.WithinTxStub = func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	}

	s.worker = NewWorker(
		s.mocks.transactor,
		s.mocks.outboxRepo,
		s.mocks.idempotency,
		s.mocks.notifier,
		&infrastructure.NoOpMetrics{},
		infrastructure.NewTestLogger(),
		config.OutboxConfig{
			BatchSize:    10,
			PollInterval: 10 * time.Millisecond,
			MaxRetries:   5,
			DaysToKeep:   7,
		},
		config.IdempotencyConfig{TTLDays: 7},
	)
}

func (s *WorkerTestSuite) TestProcessBatch_DeliversPendingRecord() {
	t := s.T()

	record := s.pendingRecord(0)
	s.mocks.outboxRepo.ClaimPendingInTxReturns([]domain.OutboxRecord{record}, nil)

	err := s.worker.ProcessBatch(t.Context())

	s.Require().NoError(err)
	s.Require().Equal(1, s.mocks.notifier.NotifyCallCount())

	_, idempotencyKey, referenceID, message := s.mocks.notifier.NotifyArgsForCall(0)
	s.Require().Equal(fmt.Sprintf("outbox_%s", record.ID), idempotencyKey)
	s.Require().Equal(record.Payload.TicketID, referenceID)
	s.Require().Contains(message, record.Payload.TicketID)

	s.Require().Equal(1, s.mocks.outboxRepo.MarkSentInTxCallCount())
	s.Require().Zero(s.mocks.outboxRepo.IncrementRetryInTxCallCount())
}

func (s *WorkerTestSuite) TestProcessBatch_DeliveryFailure_IncrementsRetry() {
	t := s.T()

	record := s.pendingRecord(2)
	s.mocks.outboxRepo.ClaimPendingInTxReturns([]domain.OutboxRecord{record}, nil)
	s.mocks.notifier.NotifyReturns(errors.New("notification service down"))

	err := s.worker.ProcessBatch(t.Context())

	s.Require().NoError(err)
	s.Require().Equal(1, s.mocks.outboxRepo.IncrementRetryInTxCallCount())
	s.Require().Zero(s.mocks.outboxRepo.MarkSentInTxCallCount())
	s.Require().Zero(s.mocks.outboxRepo.MarkFailedInTxCallCount())
}

func (s *WorkerTestSuite) TestProcessBatch_RetryBudgetExhausted_FailsWithoutDelivery() {
	t := s.T()

	record := s.pendingRecord(5)
	s.mocks.outboxRepo.ClaimPendingInTxReturns([]domain.OutboxRecord{record}, nil)

	err := s.worker.ProcessBatch(t.Context())

	s.Require().NoError(err)
	s.Require().Zero(s.mocks.notifier.NotifyCallCount())
	s.Require().Equal(1, s.mocks.outboxRepo.MarkFailedInTxCallCount())

	_, _, failedID := s.mocks.outboxRepo.MarkFailedInTxArgsForCall(0)
	s.Require().Equal(record.ID, failedID)
}

func (s *WorkerTestSuite) TestProcessBatch_EmptyBatch() {
	t := s.T()

	err := s.worker.ProcessBatch(t.Context())

	s.Require().NoError(err)
	s.Require().Zero(s.mocks.notifier.NotifyCallCount())
}

func (s *WorkerTestSuite) TestStart_StopsOnContextCancellation() {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.worker.Start(ctx)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.Require().ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.FailNow("worker did not stop after context cancellation")
	}
}

func (s *WorkerTestSuite) TestStart_RunsCleanupEachTick() {
	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()

	_ = s.worker.Start(ctx)

	s.Require().GreaterOrEqual(s.mocks.outboxRepo.DeleteSentBeforeCallCount(), 1)
	s.Require().GreaterOrEqual(s.mocks.idempotency.DeleteExpiredCallCount(), 1)
}

func (s *WorkerTestSuite) pendingRecord(retryCount int) domain.OutboxRecord {
	return domain.OutboxRecord{
		ID:        uuid.New(),
		EventType: domain.OutboxEventTicketCreated,
		Payload: domain.TicketCreatedPayload{
			EventID:   uuid.NewString(),
			FirstName: "Ivan",
			LastName:  "Petrov",
			Email:     "ivan.petrov@example.com",
			Seat:      "A1",
			TicketID:  uuid.NewString(),
		},
		Status:     domain.OutboxStatusPending,
		RetryCount: retryCount,
		CreatedAt:  time.Now().Add(-time.Minute),
	}
}
