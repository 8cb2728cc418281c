package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TicketService registers visitors for events through the provider and
// records the result locally together with the outbox notification, all in
// one transaction.
type TicketService struct {
	client      ports.ProviderClient
	syncer      ports.CatalogueSyncer
	seats       ports.SeatsSource
	transactor  ports.Transactor
	events      ports.EventRepository
	tickets     ports.TicketRepository
	outbox      ports.OutboxRepository
	idempotency ports.IdempotencyRepository
	metrics     infrastructure.Metrics
	logger      infrastructure.Logger
	cfg         config.IdempotencyConfig
}

func NewTicketService(
	client ports.ProviderClient,
	syncer ports.CatalogueSyncer,
	seats ports.SeatsSource,
	transactor ports.Transactor,
	events ports.EventRepository,
	tickets ports.TicketRepository,
	outbox ports.OutboxRepository,
	idempotency ports.IdempotencyRepository,
	metrics infrastructure.Metrics,
	logger infrastructure.Logger,
	cfg config.IdempotencyConfig,
) *TicketService {
	return &TicketService{
		client:      client,
		syncer:      syncer,
		seats:       seats,
		transactor:  transactor,
		events:      events,
		tickets:     tickets,
		outbox:      outbox,
		idempotency: idempotency,
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
	}
}

// Create registers a visitor and returns the provider-issued ticket id.
// A replayed idempotency key short-circuits to the memoized ticket when the
// inputs match, and conflicts when they do not.
func (s *TicketService) Create(ctx context.Context, input domain.CreateTicketInput) (ticketID uuid.UUID, err error) {
	defer func() {
		s.metrics.RecordTicketRegistration(ctx, err == nil, errorKind(err))
	}()

	if input.IdempotencyKey != "" {
		memoized, found, err := s.replayIdempotencyKey(ctx, input)
		if err != nil {
			return uuid.Nil, err
		}

		if found {
			return memoized, nil
		}
	}

	if err := s.refreshCatalogue(ctx); err != nil {
		return uuid.Nil, err
	}

	event, err := s.events.Find(ctx, input.EventID)
	if err != nil {
		return uuid.Nil, err
	}

	if event.Status != domain.EventStatusPublished {
		return uuid.Nil, domain.ErrEventNotPublished
	}

	if event.RegistrationDeadline.Before(time.Now()) {
		return uuid.Nil, domain.ErrEventPassed
	}

	if err := s.ensureSeatFree(ctx, input); err != nil {
		return uuid.Nil, err
	}

	issuedID, err := s.register(ctx, input)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.persistRegistration(ctx, input, issuedID); err != nil {
		return uuid.Nil, err
	}

	return issuedID, nil
}

// Cancel releases the seat at the provider and removes the local ticket.
func (s *TicketService) Cancel(ctx context.Context, ticketID uuid.UUID) error {
	ticket, err := s.tickets.FindByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}

	event, err := s.events.Find(ctx, ticket.EventID)
	if err != nil {
		return err
	}

	if event.RegistrationDeadline.Before(time.Now()) {
		return domain.ErrEventPassed
	}

	if err := s.client.Unregister(ctx, ticket.EventID.String(), ticketID.String()); err != nil {
		return err
	}

	return s.tickets.DeleteByTicketID(ctx, ticketID)
}

// replayIdempotencyKey resolves a reused key. found is false when the key
// has never been seen.
func (s *TicketService) replayIdempotencyKey(ctx context.Context, input domain.CreateTicketInput) (uuid.UUID, bool, error) {
	record, err := s.idempotency.Find(ctx, input.IdempotencyKey)
	if err != nil {
		return uuid.Nil, false, err
	}

	if record == nil {
		return uuid.Nil, false, nil
	}

	if !record.ResponseData.MatchesFingerprint(input.Fingerprint()) {
		s.logger.Warn().
			Str("idempotency_key", input.IdempotencyKey).
			Msg("idempotency key replayed with different inputs")

		return uuid.Nil, false, domain.ErrIdempotencyConflict
	}

	memoized, err := uuid.Parse(record.ResponseData.TicketID)
	if err != nil || memoized == uuid.Nil {
		s.logger.Error().
			Str("idempotency_key", input.IdempotencyKey).
			Msg("idempotency record has no usable ticket id")

		return uuid.Nil, false, domain.ErrIdempotencyCorrupt
	}

	return memoized, true, nil
}

// refreshCatalogue runs a sync so registration decisions use fresh event
// data. A run already in flight is good enough.
func (s *TicketService) refreshCatalogue(ctx context.Context) error {
	_, err := s.syncer.Sync(ctx, "")
	if err != nil && !errors.Is(err, domain.ErrSyncInProgress) {
		s.logger.Error().Err(err).Msg("catalogue refresh before registration failed")

		return domain.ErrFailedSyncEvent
	}

	return nil
}

func (s *TicketService) ensureSeatFree(ctx context.Context, input domain.CreateTicketInput) error {
	free, err := s.seats.FreeSeats(ctx, input.EventID)
	if err != nil {
		return err
	}

	if !slices.Contains(free, input.Seat) {
		return &domain.SeatUnavailableError{Seat: input.Seat}
	}

	return nil
}

// register books the seat at the provider. A definitive provider rejection
// most likely means the seat was taken between the free-seats check and the
// booking.
func (s *TicketService) register(ctx context.Context, input domain.CreateTicketInput) (uuid.UUID, error) {
	req := domain.RegisterRequest{
		EventID:   input.EventID.String(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Seat:      input.Seat,
	}

	issued, err := s.client.Register(ctx, req, input.ProviderIdempotencyKey())
	if err != nil {
		var permanent *domain.ProviderPermanentError
		if errors.As(err, &permanent) {
			return uuid.Nil, &domain.SeatUnavailableError{Seat: input.Seat, Reason: "возможно, место уже занято"}
		}

		return uuid.Nil, err
	}

	issuedID, err := uuid.Parse(issued)
	if err != nil {
		return uuid.Nil, &domain.ProviderUnexpectedResponseError{Reason: fmt.Sprintf("invalid ticket id %q", issued)}
	}

	return issuedID, nil
}

// persistRegistration stores the ticket, the outbox notification and the
// idempotency memo atomically.
func (s *TicketService) persistRegistration(ctx context.Context, input domain.CreateTicketInput, issuedID uuid.UUID) error {
	payload := domain.TicketCreatedPayload{
		EventID:   input.EventID.String(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Seat:      input.Seat,
		TicketID:  issuedID.String(),
	}

	return s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		ticket := &domain.Ticket{
			TicketID:     issuedID,
			EventID:      input.EventID,
			Seat:         input.Seat,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			RegisteredAt: time.Now(),
		}

		if err := s.tickets.SaveInTx(ctx, tx, ticket); err != nil {
			return err
		}

		record := &domain.OutboxRecord{
			EventType: domain.OutboxEventTicketCreated,
			Payload:   payload,
		}

		if err := s.outbox.CreateInTx(ctx, tx, record); err != nil {
			return err
		}

		if input.IdempotencyKey == "" {
			return nil
		}

		memo := &domain.IdempotencyRecord{
			Key: input.IdempotencyKey,
			ResponseData: domain.IdempotencyData{
				EventID:   payload.EventID,
				FirstName: payload.FirstName,
				LastName:  payload.LastName,
				Email:     payload.Email,
				Seat:      payload.Seat,
				TicketID:  payload.TicketID,
			},
			ExpiresAt: time.Now().AddDate(0, 0, s.cfg.TTLDays),
		}

		return s.idempotency.SaveInTx(ctx, tx, memo)
	})
}

func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, domain.ErrEventNotPublished):
		return "event_not_published"
	case errors.Is(err, domain.ErrEventPassed):
		return "event_passed"
	case errors.Is(err, domain.ErrIdempotencyConflict):
		return "idempotency_conflict"
	case errors.Is(err, domain.ErrFailedSyncEvent):
		return "sync_failed"
	default:
		var seatErr *domain.SeatUnavailableError
		if errors.As(err, &seatErr) {
			return "seat_unavailable"
		}

		if domain.IsProviderError(err) {
			return "provider_error"
		}

		return "internal"
	}
}
