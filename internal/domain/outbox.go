package domain

import (
	"time"

	"github.com/google/uuid"
)

type (
	OutboxStatus string

	OutboxEventType string

	// OutboxRecord is a durable notification task written inside the
	// registration transaction and drained by the outbox worker.
	OutboxRecord struct {
		ID         uuid.UUID
		EventType  OutboxEventType
		Payload    TicketCreatedPayload
		Status     OutboxStatus
		RetryCount int
		CreatedAt  time.Time
		UpdatedAt  time.Time
	}

	// TicketCreatedPayload is the registration fingerprint plus the ticket id
	// assigned by the provider.
	TicketCreatedPayload struct {
		EventID   string `json:"event_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Seat      string `json:"seat"`
		TicketID  string `json:"ticket_id"`
	}
)

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"

	OutboxEventTicketCreated OutboxEventType = "ticket_created"
)
