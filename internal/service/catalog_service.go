package service

import (
	"context"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/google/uuid"
)

// CatalogService serves the locally mirrored event catalogue.
type CatalogService struct {
	events ports.EventRepository
	seats  ports.SeatsSource
}

func NewCatalogService(events ports.EventRepository, seats ports.SeatsSource) *CatalogService {
	return &CatalogService{
		events: events,
		seats:  seats,
	}
}

// ListEvents returns one catalogue page and the total match count.
func (s *CatalogService) ListEvents(ctx context.Context, filter domain.EventListFilter) ([]domain.Event, int, error) {
	return s.events.List(ctx, filter)
}

// GetEvent returns a single event with its venue.
func (s *CatalogService) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	return s.events.FindWithPlace(ctx, eventID)
}

// FreeSeats lists the free seats of a published event.
func (s *CatalogService) FreeSeats(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	event, err := s.events.Find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != domain.EventStatusPublished {
		return nil, domain.ErrEventNotPublished
	}

	return s.seats.FreeSeats(ctx, eventID)
}
