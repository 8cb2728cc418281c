package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventNotPublished   = errors.New("event is not published")
	ErrEventPassed         = errors.New("registration deadline has passed")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrIdempotencyConflict = errors.New("idempotency key reused with a different payload")
	ErrIdempotencyCorrupt  = errors.New("idempotency record is missing a ticket id")
	ErrDuplicateKey        = errors.New("idempotency key already exists")
	ErrFailedSyncEvent     = errors.New("failed to sync events before registration")
	ErrSyncInProgress      = errors.New("sync is already in progress")
	ErrInternal            = errors.New("internal server error")
)

type (
	// ProviderTemporaryError signals a transient provider failure: retries
	// were exhausted on transport errors or retryable statuses. Status is 0
	// when the failure never produced an HTTP response.
	ProviderTemporaryError struct {
		Status int
		Cause  error
	}

	// ProviderPermanentError is a non-retryable upstream HTTP error.
	ProviderPermanentError struct {
		Status  int
		Message string
	}

	// ProviderUnexpectedResponseError marks a 2xx provider body that is
	// missing required fields.
	ProviderUnexpectedResponseError struct {
		Reason string
	}

	// SeatUnavailableError is produced when the requested seat is not in the
	// provider's free list, or the provider rejected the registration.
	SeatUnavailableError struct {
		Seat   string
		Reason string
	}
)

func (e *ProviderTemporaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("temporary provider error (status %d): %v", e.Status, e.Cause)
	}

	return fmt.Sprintf("temporary provider error (status %d)", e.Status)
}

func (e *ProviderTemporaryError) Unwrap() error {
	return e.Cause
}

func (e *ProviderPermanentError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.Status, e.Message)
}

func (e *ProviderUnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected provider response: %s", e.Reason)
}

func (e *SeatUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("seat %s unavailable: %s", e.Seat, e.Reason)
	}

	return fmt.Sprintf("seat %s unavailable", e.Seat)
}

// IsProviderError reports whether err originates from the provider client,
// regardless of classification.
func IsProviderError(err error) bool {
	var (
		temporary  *ProviderTemporaryError
		permanent  *ProviderPermanentError
		unexpected *ProviderUnexpectedResponseError
	)

	return errors.As(err, &temporary) || errors.As(err, &permanent) || errors.As(err, &unexpected)
}
