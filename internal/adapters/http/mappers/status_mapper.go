package mappers

import (
	"errors"
	"net/http"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
)

// MapDomainError translates a domain error into an HTTP status and a stable
// machine-readable code. Domain errors never carry HTTP semantics
// themselves.
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "event_not_found"
	case errors.Is(err, domain.ErrEventNotPublished):
		return http.StatusBadRequest, "event_not_published"
	case errors.Is(err, domain.ErrEventPassed):
		return http.StatusConflict, "event_passed"
	case errors.Is(err, domain.ErrTicketNotFound):
		return http.StatusNotFound, "ticket_not_found"
	case errors.Is(err, domain.ErrIdempotencyConflict):
		return http.StatusConflict, "idempotency_conflict"
	case errors.Is(err, domain.ErrIdempotencyCorrupt):
		return http.StatusConflict, "idempotency_corrupt"
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, "idempotency_conflict"
	case errors.Is(err, domain.ErrFailedSyncEvent):
		return http.StatusBadGateway, "failed_sync"
	case errors.Is(err, domain.ErrSyncInProgress):
		return http.StatusConflict, "sync_in_progress"
	}

	var seatErr *domain.SeatUnavailableError
	if errors.As(err, &seatErr) {
		return http.StatusBadRequest, "seat_unavailable"
	}

	var temporaryErr *domain.ProviderTemporaryError
	if errors.As(err, &temporaryErr) {
		return http.StatusServiceUnavailable, "provider_unavailable"
	}

	var permanentErr *domain.ProviderPermanentError
	if errors.As(err, &permanentErr) {
		// Upstream rejections pass their status through unless it was a
		// success code, which would be nonsensical for an error response.
		if permanentErr.Status >= http.StatusBadRequest {
			return permanentErr.Status, "provider_rejected"
		}

		return http.StatusBadGateway, "provider_rejected"
	}

	var unexpectedErr *domain.ProviderUnexpectedResponseError
	if errors.As(err, &unexpectedErr) {
		return http.StatusBadGateway, "provider_unexpected_response"
	}

	return http.StatusInternalServerError, "internal_server_error"
}
