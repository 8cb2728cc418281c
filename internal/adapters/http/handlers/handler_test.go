package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/mocks"
	"github.com/architeacher/svc-ticket-aggregator/internal/service"
)

type (
	HandlerTestSuite struct {
		suite.Suite
		mocks  *handlerMockDependencies
		router http.Handler
	}

	handlerMockDependencies struct {
		client      *mocks.FakeProviderClient
		syncer      *mocks.FakeCatalogueSyncer
		seats       *mocks.FakeSeatsSource
		transactor  *mocks.FakeTransactor
		eventRepo   *mocks.FakeEventRepository
		ticketRepo  *mocks.FakeTicketRepository
		outboxRepo  *mocks.FakeOutboxRepository
		idempotency *mocks.FakeIdempotencyRepository
		syncMeta    *mocks.FakeSyncMetadataRepository
		health      *mocks.FakeHealthChecker
	}
)

func TestHandlerTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.mocks = &handlerMockDependencies{
		client:      &mocks.FakeProviderClient{},
		syncer:      &mocks.FakeCatalogueSyncer{},
		seats:       &mocks.FakeSeatsSource{},
		transactor:  &mocks.FakeTransactor{},
		eventRepo:   &mocks.FakeEventRepository{},
		ticketRepo:  &mocks.FakeTicketRepository{},
		outboxRepo:  &mocks.FakeOutboxRepository{},
		idempotency: &mocks.FakeIdempotencyRepository{},
		syncMeta:    &mocks.FakeSyncMetadataRepository{},
		health:      &mocks.FakeHealthChecker{},
	}

	s.mocks.transactor.WithinTxStub = func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	}

	logger := infrastructure.NewTestLogger()
	metrics := &infrastructure.NoOpMetrics{}

	catalog := service.NewCatalogService(s.mocks.eventRepo, s.mocks.seats)

	tickets := service.NewTicketService(
		s.mocks.client,
		s.mocks.syncer,
		s.mocks.seats,
		s.mocks.transactor,
		s.mocks.eventRepo,
		s.mocks.ticketRepo,
		s.mocks.outboxRepo,
		s.mocks.idempotency,
		metrics,
		logger,
		config.IdempotencyConfig{TTLDays: 7},
	)

	sync := service.NewSyncService(
		s.mocks.client,
		s.mocks.transactor,
		s.mocks.eventRepo,
		&mocks.FakePlaceRepository{},
		s.mocks.syncMeta,
		metrics,
		logger,
		config.SyncConfig{InitialChangedAt: "2000-01-01", StaleLockThreshold: 30 * time.Minute},
	)

	handler := NewRequestHandler(catalog, tickets, sync, s.mocks.health, logger)
	s.router = NewRouter(handler, logger, metrics)
}

func (s *HandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	return recorder
}

func (s *HandlerTestSuite) TestListEvents_PaginationLinks() {
	s.mocks.eventRepo.ListReturns([]domain.Event{s.catalogueEvent()}, 3, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/events/?page=2&page_size=1", nil))

	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp EventListResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().Equal(3, resp.Count)
	s.Require().Len(resp.Results, 1)

	s.Require().NotNil(resp.Next)
	s.Require().Contains(*resp.Next, "page=3")
	s.Require().NotNil(resp.Previous)
	s.Require().Contains(*resp.Previous, "page=1")
}

func (s *HandlerTestSuite) TestListEvents_LastPageHasNoNext() {
	s.mocks.eventRepo.ListReturns([]domain.Event{s.catalogueEvent()}, 1, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/events/", nil))

	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp EventListResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().Nil(resp.Next)
	s.Require().Nil(resp.Previous)
}

func (s *HandlerTestSuite) TestListEvents_InvalidPage() {
	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/events/?page=0", nil))

	s.Require().Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestListEvents_DateFilterIsForwarded() {
	s.mocks.eventRepo.ListReturns(nil, 0, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/events/?date_from=2025-06-01", nil))

	s.Require().Equal(http.StatusOK, recorder.Code)

	_, filter := s.mocks.eventRepo.ListArgsForCall(0)
	s.Require().NotNil(filter.DateFrom)
	s.Require().Equal("2025-06-01", filter.DateFrom.Format("2006-01-02"))
}

func (s *HandlerTestSuite) TestGetEventDetails_UnknownEvent() {
	s.mocks.eventRepo.FindWithPlaceReturns(nil, domain.ErrEventNotFound)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/events/"+uuid.NewString(), nil))

	s.Require().Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestGetEventDetails_InvalidID() {
	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil))

	s.Require().Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestGetEventSeats() {
	event := s.catalogueEvent()
	s.mocks.eventRepo.FindReturns(&event, nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1", "A2"}, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/events/"+event.ID.String()+"/seats", nil))

	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp SeatsResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().Equal([]string{"A1", "A2"}, resp.AvailableSeats)
}

func (s *HandlerTestSuite) TestCreateTicket_Succeeds() {
	event := s.catalogueEvent()
	issued := uuid.New()

	s.mocks.eventRepo.FindReturns(&event, nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1"}, nil)
	s.mocks.client.RegisterReturns(issued.String(), nil)

	body := `{
		"event_id": "` + event.ID.String() + `",
		"first_name": "Ivan",
		"last_name": "Petrov",
		"email": "ivan.petrov@example.com",
		"seat": "A1",
		"idempotency_key": "body-key"
	}`

	recorder := s.serve(httptest.NewRequest(http.MethodPost, "/api/tickets/", strings.NewReader(body)))

	s.Require().Equal(http.StatusCreated, recorder.Code)

	var resp CreateTicketResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().Equal(issued.String(), resp.TicketID)
}

func (s *HandlerTestSuite) TestCreateTicket_HeaderKeyWinsOverBody() {
	event := s.catalogueEvent()

	s.mocks.eventRepo.FindReturns(&event, nil)
	s.mocks.seats.FreeSeatsReturns([]string{"A1"}, nil)
	s.mocks.client.RegisterReturns(uuid.NewString(), nil)

	body := `{
		"event_id": "` + event.ID.String() + `",
		"first_name": "Ivan",
		"last_name": "Petrov",
		"email": "ivan.petrov@example.com",
		"seat": "A1",
		"idempotency_key": "body-key"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/tickets/", strings.NewReader(body))
	req.Header.Set("x-idempotency-key", "header-key")

	recorder := s.serve(req)

	s.Require().Equal(http.StatusCreated, recorder.Code)

	_, key := s.mocks.idempotency.FindArgsForCall(0)
	s.Require().Equal("header-key", key)
}

func (s *HandlerTestSuite) TestCreateTicket_ValidationFailure() {
	body := `{
		"event_id": "` + uuid.NewString() + `",
		"first_name": "Iv",
		"last_name": "Petrov",
		"email": "not-an-email",
		"seat": "A1"
	}`

	recorder := s.serve(httptest.NewRequest(http.MethodPost, "/api/tickets/", strings.NewReader(body)))

	s.Require().Equal(http.StatusBadRequest, recorder.Code)
	s.Require().Zero(s.mocks.syncer.SyncCallCount())
}

func (s *HandlerTestSuite) TestCreateTicket_SeatUnavailable() {
	event := s.catalogueEvent()

	s.mocks.eventRepo.FindReturns(&event, nil)
	s.mocks.seats.FreeSeatsReturns([]string{"B2"}, nil)

	body := `{
		"event_id": "` + event.ID.String() + `",
		"first_name": "Ivan",
		"last_name": "Petrov",
		"email": "ivan.petrov@example.com",
		"seat": "A1"
	}`

	recorder := s.serve(httptest.NewRequest(http.MethodPost, "/api/tickets/", strings.NewReader(body)))

	s.Require().Equal(http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().Equal("seat_unavailable", resp.Code)
}

func (s *HandlerTestSuite) TestCancelTicket() {
	event := s.catalogueEvent()
	ticketID := uuid.New()

	s.mocks.ticketRepo.FindByTicketIDReturns(&domain.Ticket{
		TicketID: ticketID,
		EventID:  event.ID,
	}, nil)
	s.mocks.eventRepo.FindReturns(&event, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodDelete, "/api/tickets/"+ticketID.String(), nil))

	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp CancelTicketResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().True(resp.Success)
}

func (s *HandlerTestSuite) TestTriggerSync_ReportsRunInFlight() {
	s.mocks.syncMeta.GetReturns(&domain.SyncMetadata{SyncStatus: domain.SyncStatusInProgress}, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodPost, "/api/sync/trigger", nil))

	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Require().Contains(recorder.Body.String(), "in progress")
	s.Require().Zero(s.mocks.syncMeta.AcquireLockCallCount())
}

func (s *HandlerTestSuite) TestTriggerSync_ForwardsChangedAfterOverride() {
	s.mocks.syncMeta.AcquireLockReturns(&domain.SyncMetadata{SyncStatus: domain.SyncStatusPending}, nil)
	s.mocks.client.FetchEventsReturns(&domain.EventsPage{}, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodPost, "/api/sync/trigger?changed_after=2024-01-01", nil))

	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Require().Contains(recorder.Body.String(), "sync_started")

	// The pull runs in the background.
	s.Require().Eventually(func() bool {
		return s.mocks.client.FetchEventsCallCount() == 1
	}, time.Second, 10*time.Millisecond)

	_, changedAfter := s.mocks.client.FetchEventsArgsForCall(0)
	s.Require().Equal("2024-01-01", changedAfter)
}

func (s *HandlerTestSuite) TestTriggerSync_RejectsMalformedChangedAfter() {
	recorder := s.serve(httptest.NewRequest(http.MethodPost, "/api/sync/trigger?changed_after=January+2024", nil))

	s.Require().Equal(http.StatusBadRequest, recorder.Code)
	s.Require().Zero(s.mocks.syncMeta.AcquireLockCallCount())
}

func (s *HandlerTestSuite) TestSyncStatus() {
	lastSync := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mocks.syncMeta.GetReturns(&domain.SyncMetadata{
		SyncStatus: domain.SyncStatusSuccess,
		LastSyncAt: &lastSync,
	}, nil)

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/sync/status", nil))

	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp SyncStatusResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().Equal(string(domain.SyncStatusSuccess), resp.Status)
	s.Require().NotNil(resp.LastSyncAt)
}

func (s *HandlerTestSuite) TestHealthCheck_FaultMapsToServiceUnavailable() {
	s.mocks.health.CheckHealthReturns(domain.HealthStatus{
		Status: domain.ProviderStatusFault,
		Dependencies: map[string]domain.ProviderStatus{
			"storage":  domain.ProviderStatusOK,
			"provider": domain.ProviderStatusFault,
		},
	})

	recorder := s.serve(httptest.NewRequest(http.MethodGet, "/api/health", nil))

	s.Require().Equal(http.StatusServiceUnavailable, recorder.Code)
}

func (s *HandlerTestSuite) catalogueEvent() domain.Event {
	placeID := uuid.New()

	return domain.Event{
		ID:                   uuid.New(),
		Name:                 "Go Conference",
		PlaceID:              placeID,
		EventTime:            time.Now().AddDate(0, 1, 0),
		RegistrationDeadline: time.Now().AddDate(0, 0, 14),
		Status:               domain.EventStatusPublished,
		Place: &domain.Place{
			ID:   placeID,
			Name: "Main Hall",
			City: "Berlin",
		},
	}
}
