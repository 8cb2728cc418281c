package service

import (
	"context"
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
	TicketServiceTestSuite struct {
		suite.Suite
		mocks   *ticketMockDependencies
		service *TicketService
	}

	ticketMockDependencies struct {
		client      *mocks.FakeProviderClient
		syncer      *mocks.FakeCatalogueSyncer
		seats       *mocks.FakeSeatsSource
		transactor  *mocks.FakeTransactor
		eventRepo   *mocks.FakeEventRepository
		ticketRepo  *mocks.FakeTicketRepository
		outboxRepo  *mocks.FakeOutboxRepository
		idempotency *mocks.FakeIdempotencyRepository
	}
)

func TestTicketServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TicketServiceTestSuite))
}

func (s *TicketServiceTestSuite) SetupTest() {
	s.mocks = &ticketMockDependencies{
		client:      &mocks.FakeProviderClient{},
		syncer:      &mocks.FakeCatalogueSyncer{},
		seats:       &mocks.FakeSeatsSource{},
		transactor:  &mocks.FakeTransactor{},
		eventRepo:   &mocks.FakeEventRepository{},
		ticketRepo:  &mocks.FakeTicketRepository{},
		outboxRepo:  &mocks.FakeOutboxRepository{},
		idempotency: &mocks.FakeIdempotencyRepository{},
	}

	s.mocks.transactor.WithinTxStub = func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	}

	s.service = NewTicketService(
		s.mocks.client,
		s.mocks.syncer,
		s.mocks.seats,
		s.mocks.transactor,
		s.mocks.eventRepo,
		s.mocks.ticketRepo,
		s.mocks.outboxRepo,
		s.mocks.idempotency,
		&infrastructure.NoOpMetrics{},
		infrastructure.NewTestLogger(),
		config.IdempotencyConfig{TTLDays: 7},
	)
}

func (s *TicketServiceTestSuite) TestCreate_RegistersAndPersistsAtomically() {
	t := s.T()

	input := s.createInput()
	issued := uuid.New()

	s.mocks.eventRepo.FindReturns(s.publishedEvent(input.EventID), nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1", "A2"}, nil)
	s.mocks.client.RegisterReturns(issued.String(), nil)

	ticketID, err := s.service.Create(t.Context(), input)

	s.Require().NoError(err)
	s.Require().Equal(issued, ticketID)

	s.Require().Equal(1, s.mocks.syncer.SyncCallCount())

	_, req, idempotencyKey := s.mocks.client.RegisterArgsForCall(0)
	s.Require().Equal(input.EventID.String(), req.EventID)
	s.Require().Equal(input.Seat, req.Seat)
	s.Require().Equal(input.IdempotencyKey, idempotencyKey)

	s.Require().Equal(1, s.mocks.ticketRepo.SaveInTxCallCount())
	_, _, ticket := s.mocks.ticketRepo.SaveInTxArgsForCall(0)
	s.Require().Equal(issued, ticket.TicketID)
	s.Require().Equal(input.EventID, ticket.EventID)
	s.Require().Equal(input.Seat, ticket.Seat)

	s.Require().Equal(1, s.mocks.outboxRepo.CreateInTxCallCount())
	_, _, record := s.mocks.outboxRepo.CreateInTxArgsForCall(0)
	s.Require().Equal(domain.OutboxEventTicketCreated, record.EventType)
	s.Require().Equal(issued.String(), record.Payload.TicketID)

	s.Require().Equal(1, s.mocks.idempotency.SaveInTxCallCount())
	_, _, memo := s.mocks.idempotency.SaveInTxArgsForCall(0)
	s.Require().Equal(input.IdempotencyKey, memo.Key)
	s.Require().Equal(issued.String(), memo.ResponseData.TicketID)
}

func (s *TicketServiceTestSuite) TestCreate_WithoutKey_SkipsIdempotencyMemo() {
	t := s.T()

	input := s.createInput()
	input.IdempotencyKey = ""
	issued := uuid.New()

	s.mocks.eventRepo.FindReturns(s.publishedEvent(input.EventID), nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1"}, nil)
	s.mocks.client.RegisterReturns(issued.String(), nil)

	_, err := s.service.Create(t.Context(), input)

	s.Require().NoError(err)
	s.Require().Zero(s.mocks.idempotency.FindCallCount())
	s.Require().Zero(s.mocks.idempotency.SaveInTxCallCount())
}

func (s *TicketServiceTestSuite) TestCreate_WithoutKey_DerivesProviderKey() {
	t := s.T()

	input := s.createInput()
	input.IdempotencyKey = ""
	issued := uuid.New()

	s.mocks.eventRepo.FindReturns(s.publishedEvent(input.EventID), nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1"}, nil)
	s.mocks.client.RegisterReturns(issued.String(), nil)

	_, err := s.service.Create(t.Context(), input)

	s.Require().NoError(err)

	// A key-less registration still books with a provider idempotency key,
	// stable across identical requests.
	_, _, providerKey := s.mocks.client.RegisterArgsForCall(0)
	s.Require().NotEmpty(providerKey)
	s.Require().Equal(input.ProviderIdempotencyKey(), providerKey)

	other := input
	other.Seat = "A2"
	s.Require().NotEqual(other.ProviderIdempotencyKey(), providerKey)
}

func (s *TicketServiceTestSuite) TestCreate_ReplaysMatchingIdempotencyKey() {
	t := s.T()

	input := s.createInput()
	memoized := uuid.New()

	s.mocks.idempotency.FindReturns(&domain.IdempotencyRecord{
		Key:          input.IdempotencyKey,
		ResponseData: s.memoData(input, memoized.String()),
	}, nil)

	ticketID, err := s.service.Create(t.Context(), input)

	s.Require().NoError(err)
	s.Require().Equal(memoized, ticketID)

	// Replays never reach the provider or local persistence.
	s.Require().Zero(s.mocks.syncer.SyncCallCount())
	s.Require().Zero(s.mocks.client.RegisterCallCount())
	s.Require().Zero(s.mocks.ticketRepo.SaveInTxCallCount())
}

func (s *TicketServiceTestSuite) TestCreate_ConflictingIdempotencyKey() {
	t := s.T()

	input := s.createInput()

	data := s.memoData(input, uuid.NewString())
	data.Seat = "B7"
	s.mocks.idempotency.FindReturns(&domain.IdempotencyRecord{
		Key:          input.IdempotencyKey,
		ResponseData: data,
	}, nil)

	_, err := s.service.Create(t.Context(), input)

	s.Require().ErrorIs(err, domain.ErrIdempotencyConflict)
	s.Require().Zero(s.mocks.client.RegisterCallCount())
}

func (s *TicketServiceTestSuite) TestCreate_CorruptIdempotencyRecord() {
	t := s.T()

	input := s.createInput()

	s.mocks.idempotency.FindReturns(&domain.IdempotencyRecord{
		Key:          input.IdempotencyKey,
		ResponseData: s.memoData(input, ""),
	}, nil)

	_, err := s.service.Create(t.Context(), input)

	s.Require().ErrorIs(err, domain.ErrIdempotencyCorrupt)
}

func (s *TicketServiceTestSuite) TestCreate_SyncInProgressIsTolerated() {
	t := s.T()

	input := s.createInput()
	issued := uuid.New()

	s.mocks.syncer.SyncReturns(domain.SyncResult{}, domain.ErrSyncInProgress)
	s.mocks.eventRepo.FindReturns(s.publishedEvent(input.EventID), nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1"}, nil)
	s.mocks.client.RegisterReturns(issued.String(), nil)

	ticketID, err := s.service.Create(t.Context(), input)

	s.Require().NoError(err)
	s.Require().Equal(issued, ticketID)
}

func (s *TicketServiceTestSuite) TestCreate_SyncFailureBlocksRegistration() {
	t := s.T()

	input := s.createInput()

	s.mocks.syncer.SyncReturns(domain.SyncResult{}, &domain.ProviderTemporaryError{Status: 503})

	_, err := s.service.Create(t.Context(), input)

	s.Require().ErrorIs(err, domain.ErrFailedSyncEvent)
	s.Require().Zero(s.mocks.eventRepo.FindCallCount())
}

func (s *TicketServiceTestSuite) TestCreate_EventNotPublished() {
	t := s.T()

	input := s.createInput()
	event := s.publishedEvent(input.EventID)
	event.Status = domain.EventStatusDraft
	s.mocks.eventRepo.FindReturns(event, nil)

	_, err := s.service.Create(t.Context(), input)

	s.Require().ErrorIs(err, domain.ErrEventNotPublished)
}

func (s *TicketServiceTestSuite) TestCreate_DeadlinePassed() {
	t := s.T()

	input := s.createInput()
	event := s.publishedEvent(input.EventID)
	event.RegistrationDeadline = time.Now().Add(-time.Hour)
	s.mocks.eventRepo.FindReturns(event, nil)

	_, err := s.service.Create(t.Context(), input)

	s.Require().ErrorIs(err, domain.ErrEventPassed)
	s.Require().Zero(s.mocks.seats.FreeSeatsCallCount())
}

func (s *TicketServiceTestSuite) TestCreate_SeatNotInFreeList() {
	t := s.T()

	input := s.createInput()

	s.mocks.eventRepo.FindReturns(s.publishedEvent(input.EventID), nil)
	s.mocks.seats.FreeSeatsReturns([]string{"B1", "B2"}, nil)

	_, err := s.service.Create(t.Context(), input)

	var seatErr *domain.SeatUnavailableError
	s.Require().ErrorAs(err, &seatErr)
	s.Require().Equal(input.Seat, seatErr.Seat)
	s.Require().Zero(s.mocks.client.RegisterCallCount())
}

func (s *TicketServiceTestSuite) TestCreate_ProviderRejection_ReadsAsSeatTaken() {
	t := s.T()

	input := s.createInput()

	s.mocks.eventRepo.FindReturns(s.publishedEvent(input.EventID), nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1"}, nil)
	s.mocks.client.RegisterReturns("", &domain.ProviderPermanentError{Status: 400, Message: "seat is taken"})

	_, err := s.service.Create(t.Context(), input)

	var seatErr *domain.SeatUnavailableError
	s.Require().ErrorAs(err, &seatErr)
	s.Require().Equal("возможно, место уже занято", seatErr.Reason)
	s.Require().Zero(s.mocks.ticketRepo.SaveInTxCallCount())
}

func (s *TicketServiceTestSuite) TestCreate_MalformedTicketIDFromProvider() {
	t := s.T()

	input := s.createInput()

	s.mocks.eventRepo.FindReturns(s.publishedEvent(input.EventID), nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1"}, nil)
	s.mocks.client.RegisterReturns("garbage", nil)

	_, err := s.service.Create(t.Context(), input)

	var unexpected *domain.ProviderUnexpectedResponseError
	s.Require().ErrorAs(err, &unexpected)
}

func (s *TicketServiceTestSuite) TestCancel_ReleasesSeatAndDeletesTicket() {
	t := s.T()

	ticketID := uuid.New()
	eventID := uuid.New()

	s.mocks.ticketRepo.FindByTicketIDReturns(&domain.Ticket{
		TicketID: ticketID,
		EventID:  eventID,
		Seat:     "A1",
	}, nil)
	s.mocks.eventRepo.FindReturns(s.publishedEvent(eventID), nil)

	err := s.service.Cancel(t.Context(), ticketID)

	s.Require().NoError(err)

	_, unregEventID, unregTicketID := s.mocks.client.UnregisterArgsForCall(0)
	s.Require().Equal(eventID.String(), unregEventID)
	s.Require().Equal(ticketID.String(), unregTicketID)

	s.Require().Equal(1, s.mocks.ticketRepo.DeleteByTicketIDCallCount())
}

func (s *TicketServiceTestSuite) TestCancel_DeadlinePassed() {
	t := s.T()

	ticketID := uuid.New()
	eventID := uuid.New()

	s.mocks.ticketRepo.FindByTicketIDReturns(&domain.Ticket{
		TicketID: ticketID,
		EventID:  eventID,
	}, nil)

	event := s.publishedEvent(eventID)
	event.RegistrationDeadline = time.Now().Add(-time.Minute)
	s.mocks.eventRepo.FindReturns(event, nil)

	err := s.service.Cancel(t.Context(), ticketID)

	s.Require().ErrorIs(err, domain.ErrEventPassed)
	s.Require().Zero(s.mocks.client.UnregisterCallCount())
	s.Require().Zero(s.mocks.ticketRepo.DeleteByTicketIDCallCount())
}

func (s *TicketServiceTestSuite) TestCancel_UnknownTicket() {
	t := s.T()

	s.mocks.ticketRepo.FindByTicketIDReturns(nil, domain.ErrTicketNotFound)

	err := s.service.Cancel(t.Context(), uuid.New())

	s.Require().ErrorIs(err, domain.ErrTicketNotFound)
}

func (s *TicketServiceTestSuite) createInput() domain.CreateTicketInput {
	return domain.CreateTicketInput{
		EventID:        uuid.New(),
		FirstName:      "Ivan",
		LastName:       "Petrov",
		Email:          "ivan.petrov@example.com",
		Seat:           "A1",
		IdempotencyKey: "client-key-1",
	}
}

func (s *TicketServiceTestSuite) publishedEvent(eventID uuid.UUID) *domain.Event {
	return &domain.Event{
		ID:                   eventID,
		Name:                 "Go Conference",
		PlaceID:              uuid.New(),
		EventTime:            time.Now().AddDate(0, 1, 0),
		RegistrationDeadline: time.Now().AddDate(0, 0, 14),
		Status:               domain.EventStatusPublished,
	}
}

func (s *TicketServiceTestSuite) memoData(input domain.CreateTicketInput, ticketID string) domain.IdempotencyData {
	return domain.IdempotencyData{
		EventID:   input.EventID.String(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Seat:      input.Seat,
		TicketID:  ticketID,
	}
}
