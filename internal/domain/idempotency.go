package domain

import (
	"time"
)

type (
	// IdempotencyRecord memoizes the response of a keyed registration. The
	// stored data is immutable for the lifetime of the key.
	IdempotencyRecord struct {
		Key          string
		ResponseData IdempotencyData
		CreatedAt    time.Time
		ExpiresAt    time.Time
	}

	// IdempotencyData is the registration fingerprint plus the resulting
	// ticket id, kept so replays can detect conflicting inputs.
	IdempotencyData struct {
		EventID   string `json:"event_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Seat      string `json:"seat"`
		TicketID  string `json:"ticket_id"`
	}
)

// MatchesFingerprint reports whether the stored request inputs equal the
// replayed ones.
func (d IdempotencyData) MatchesFingerprint(fp TicketFingerprint) bool {
	return d.EventID == fp.EventID &&
		d.FirstName == fp.FirstName &&
		d.LastName == fp.LastName &&
		d.Email == fp.Email &&
		d.Seat == fp.Seat
}
