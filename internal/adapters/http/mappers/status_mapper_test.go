package mappers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "event not found",
			err:            domain.ErrEventNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "event_not_found",
		},
		{
			name:           "event not published",
			err:            domain.ErrEventNotPublished,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "event_not_published",
		},
		{
			name:           "registration deadline passed",
			err:            domain.ErrEventPassed,
			expectedStatus: http.StatusConflict,
			expectedCode:   "event_passed",
		},
		{
			name:           "ticket not found",
			err:            domain.ErrTicketNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "ticket_not_found",
		},
		{
			name:           "idempotency conflict",
			err:            domain.ErrIdempotencyConflict,
			expectedStatus: http.StatusConflict,
			expectedCode:   "idempotency_conflict",
		},
		{
			name:           "corrupt idempotency record",
			err:            domain.ErrIdempotencyCorrupt,
			expectedStatus: http.StatusConflict,
			expectedCode:   "idempotency_corrupt",
		},
		{
			name:           "duplicate key race",
			err:            domain.ErrDuplicateKey,
			expectedStatus: http.StatusConflict,
			expectedCode:   "idempotency_conflict",
		},
		{
			name:           "pre-registration sync failure",
			err:            domain.ErrFailedSyncEvent,
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "failed_sync",
		},
		{
			name:           "sync already running",
			err:            domain.ErrSyncInProgress,
			expectedStatus: http.StatusConflict,
			expectedCode:   "sync_in_progress",
		},
		{
			name:           "seat unavailable",
			err:            &domain.SeatUnavailableError{Seat: "A1"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "seat_unavailable",
		},
		{
			name:           "transient provider failure",
			err:            &domain.ProviderTemporaryError{Status: http.StatusInternalServerError},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "provider_unavailable",
		},
		{
			name:           "provider rejection passes its status through",
			err:            &domain.ProviderPermanentError{Status: http.StatusForbidden},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "provider_rejected",
		},
		{
			name:           "provider rejection with non-error status",
			err:            &domain.ProviderPermanentError{Status: http.StatusFound},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "provider_rejected",
		},
		{
			name:           "malformed provider response",
			err:            &domain.ProviderUnexpectedResponseError{Reason: "no ticket_id"},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "provider_unexpected_response",
		},
		{
			name:           "unclassified error",
			err:            errors.New("something broke"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_server_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, code := MapDomainError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}
