package domain

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Place is a venue mirrored from the events provider. Rows are owned by
	// the sync engine and never deleted locally.
	Place struct {
		ID           uuid.UUID
		Name         string
		City         string
		Address      string
		SeatsPattern string
		CreatedAt    time.Time
		ChangedAt    time.Time
	}

	// Event is a catalogue entry mirrored from the events provider.
	Event struct {
		ID                   uuid.UUID
		Name                 string
		PlaceID              uuid.UUID
		EventTime            time.Time
		RegistrationDeadline time.Time
		Status               EventStatus
		NumberOfVisitors     int
		CreatedAt            time.Time
		ChangedAt            time.Time
		StatusChangedAt      *time.Time

		// Place is populated by queries that join the venue in.
		Place *Place
	}

	// EventStatus is an open enum: unknown provider statuses are stored
	// verbatim, only Published gates registration.
	EventStatus string

	// EventListFilter narrows and pages the catalogue listing.
	EventListFilter struct {
		DateFrom *time.Time
		Page     int
		PageSize int
	}
)

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

// RegistrationOpen reports whether the event accepts registrations at the
// given instant. The local answer is advisory, the provider stays
// authoritative for seat conflicts.
func (e *Event) RegistrationOpen(now time.Time) bool {
	return e.Status == EventStatusPublished && e.RegistrationDeadline.After(now)
}
