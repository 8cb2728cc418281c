package domain

import (
	"time"
)

type (
	// EventsPage is one page of the provider's /api/events/ listing.
	EventsPage struct {
		Next     *string         `json:"next"`
		Previous *string         `json:"previous"`
		Results  []ProviderEvent `json:"results"`
	}

	// ProviderEvent is the wire form of an event as the provider serves it.
	ProviderEvent struct {
		ID                   string        `json:"id"`
		Name                 string        `json:"name"`
		Place                ProviderPlace `json:"place"`
		EventTime            time.Time     `json:"event_time"`
		RegistrationDeadline time.Time     `json:"registration_deadline"`
		Status               string        `json:"status"`
		NumberOfVisitors     int           `json:"number_of_visitors"`
		ChangedAt            time.Time     `json:"changed_at"`
		CreatedAt            time.Time     `json:"created_at"`
		StatusChangedAt      *time.Time    `json:"status_changed_at,omitempty"`
	}

	ProviderPlace struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		City         string    `json:"city"`
		Address      string    `json:"address"`
		SeatsPattern string    `json:"seats_pattern"`
		ChangedAt    time.Time `json:"changed_at"`
		CreatedAt    time.Time `json:"created_at"`
	}

	// RegisterRequest is the body of the provider's register endpoint.
	RegisterRequest struct {
		EventID   string `json:"event_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Seat      string `json:"seat"`
	}

	ProviderStatus string
)

const (
	ProviderStatusOK    ProviderStatus = "ok"
	ProviderStatusFault ProviderStatus = "fault"
)
