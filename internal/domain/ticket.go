package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// Ticket is a registration brokered to the provider and persisted locally.
	Ticket struct {
		ID           int64
		TicketID     uuid.UUID
		EventID      uuid.UUID
		Seat         string
		FirstName    string
		LastName     string
		Email        string
		RegisteredAt time.Time
	}

	// TicketFingerprint is the full input of a registration request. It is the
	// unit of comparison for idempotent replays: a key reused with a different
	// fingerprint is a conflict.
	TicketFingerprint struct {
		EventID   string `json:"event_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Seat      string `json:"seat"`
	}

	// CreateTicketInput carries a validated registration request into the
	// ticket pipeline.
	CreateTicketInput struct {
		EventID        uuid.UUID
		FirstName      string
		LastName       string
		Email          string
		Seat           string
		IdempotencyKey string
	}
)

func (in CreateTicketInput) Fingerprint() TicketFingerprint {
	return TicketFingerprint{
		EventID:   in.EventID.String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Seat:      in.Seat,
	}
}

// ProviderIdempotencyKey is the key sent along with the provider register
// call. The caller-supplied key wins; without one the key is derived from
// the fingerprint so a retried booking of the same request cannot double
// book.
func (in CreateTicketInput) ProviderIdempotencyKey() string {
	if in.IdempotencyKey != "" {
		return in.IdempotencyKey
	}

	fp := in.Fingerprint()
	sum := sha256.Sum256([]byte(strings.Join([]string{
		fp.EventID, fp.FirstName, fp.LastName, fp.Email, fp.Seat,
	}, "\x1f")))

	return hex.EncodeToString(sum[:])
}
