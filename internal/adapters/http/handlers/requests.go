package handlers

import (
	"fmt"
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/google/uuid"
)

const (
	minNameLength = 3
	maxNameLength = 100

	minSeatLength = 2
	maxSeatLength = 10

	minIdempotencyKeyLength = 1
	maxIdempotencyKeyLength = 255

	defaultPageSize = 20
	maxPageSize     = 100
)

type (
	// CreateTicketRequest is the body of POST /api/tickets. The idempotency
	// key may alternatively come in through the x-idempotency-key header,
	// which wins over the body field.
	CreateTicketRequest struct {
		EventID        string `json:"event_id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Email          string `json:"email"`
		Seat           string `json:"seat"`
		IdempotencyKey string `json:"idempotency_key,omitempty"`
	}

	CreateTicketResponse struct {
		TicketID string `json:"ticket_id"`
	}

	CancelTicketResponse struct {
		Success bool `json:"success"`
	}

	PlaceOut struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		City string `json:"city"`
	}

	PlaceDetailOut struct {
		PlaceOut

		Address      string `json:"address"`
		SeatsPattern string `json:"seats_pattern"`
	}

	EventOut struct {
		ID                   string    `json:"id"`
		Name                 string    `json:"name"`
		Place                PlaceOut  `json:"place"`
		EventTime            time.Time `json:"event_time"`
		RegistrationDeadline time.Time `json:"registration_deadline"`
		Status               string    `json:"status"`
		NumberOfVisitors     int       `json:"number_of_visitors"`
	}

	EventDetailOut struct {
		ID                   string         `json:"id"`
		Name                 string         `json:"name"`
		Place                PlaceDetailOut `json:"place"`
		EventTime            time.Time      `json:"event_time"`
		RegistrationDeadline time.Time      `json:"registration_deadline"`
		Status               string         `json:"status"`
		NumberOfVisitors     int            `json:"number_of_visitors"`
	}

	EventListResponse struct {
		Count    int        `json:"count"`
		Next     *string    `json:"next"`
		Previous *string    `json:"previous"`
		Results  []EventOut `json:"results"`
	}

	SeatsResponse struct {
		EventID        string   `json:"event_id"`
		AvailableSeats []string `json:"available_seats"`
	}

	SyncStatusResponse struct {
		Status        string     `json:"status"`
		LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
		LastChangedAt *time.Time `json:"last_changed_at,omitempty"`
	}

	ErrorResponse struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details,omitempty"`
	}
)

// Validate checks field constraints and converts the request into a domain
// input.
func (r CreateTicketRequest) Validate() (domain.CreateTicketInput, error) {
	eventID, err := uuid.Parse(r.EventID)
	if err != nil {
		return domain.CreateTicketInput{}, fmt.Errorf("event_id must be a valid UUID")
	}

	if l := len(r.FirstName); l < minNameLength || l > maxNameLength {
		return domain.CreateTicketInput{}, fmt.Errorf("first_name must be between %d and %d characters", minNameLength, maxNameLength)
	}

	if l := len(r.LastName); l < minNameLength || l > maxNameLength {
		return domain.CreateTicketInput{}, fmt.Errorf("last_name must be between %d and %d characters", minNameLength, maxNameLength)
	}

	if _, err := mail.ParseAddress(r.Email); err != nil {
		return domain.CreateTicketInput{}, fmt.Errorf("email must be a valid address")
	}

	if l := len(r.Seat); l < minSeatLength || l > maxSeatLength {
		return domain.CreateTicketInput{}, fmt.Errorf("seat must be between %d and %d characters", minSeatLength, maxSeatLength)
	}

	if r.IdempotencyKey != "" {
		if l := len(r.IdempotencyKey); l < minIdempotencyKeyLength || l > maxIdempotencyKeyLength {
			return domain.CreateTicketInput{}, fmt.Errorf("idempotency key must be between %d and %d characters", minIdempotencyKeyLength, maxIdempotencyKeyLength)
		}
	}

	return domain.CreateTicketInput{
		EventID:        eventID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Seat:           r.Seat,
		IdempotencyKey: r.IdempotencyKey,
	}, nil
}

// parseListFilter reads pagination and date filtering query parameters.
func parseListFilter(r *http.Request) (domain.EventListFilter, error) {
	filter := domain.EventListFilter{
		Page:     1,
		PageSize: defaultPageSize,
	}

	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return filter, fmt.Errorf("page must be a positive integer")
		}
		filter.Page = page
	}

	if raw := query.Get("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 || pageSize > maxPageSize {
			return filter, fmt.Errorf("page_size must be between 1 and %d", maxPageSize)
		}
		filter.PageSize = pageSize
	}

	if raw := query.Get("date_from"); raw != "" {
		dateFrom, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, fmt.Errorf("date_from must be an ISO date (YYYY-MM-DD)")
		}
		filter.DateFrom = &dateFrom
	}

	return filter, nil
}

func convertEventToOut(event domain.Event) EventOut {
	out := EventOut{
		ID:                   event.ID.String(),
		Name:                 event.Name,
		EventTime:            event.EventTime,
		RegistrationDeadline: event.RegistrationDeadline,
		Status:               string(event.Status),
		NumberOfVisitors:     event.NumberOfVisitors,
	}

	if event.Place != nil {
		out.Place = PlaceOut{
			ID:   event.Place.ID.String(),
			Name: event.Place.Name,
			City: event.Place.City,
		}
	}

	return out
}

func convertEventToDetailOut(event domain.Event) EventDetailOut {
	out := EventDetailOut{
		ID:                   event.ID.String(),
		Name:                 event.Name,
		EventTime:            event.EventTime,
		RegistrationDeadline: event.RegistrationDeadline,
		Status:               string(event.Status),
		NumberOfVisitors:     event.NumberOfVisitors,
	}

	if event.Place != nil {
		out.Place = PlaceDetailOut{
			PlaceOut: PlaceOut{
				ID:   event.Place.ID.String(),
				Name: event.Place.Name,
				City: event.Place.City,
			},
			Address:      event.Place.Address,
			SeatsPattern: event.Place.SeatsPattern,
		}
	}

	return out
}
