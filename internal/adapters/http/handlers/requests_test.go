package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicketRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateTicketRequest{
		EventID:        uuid.NewString(),
		FirstName:      "Ivan",
		LastName:       "Petrov",
		Email:          "ivan.petrov@example.com",
		Seat:           "A1",
		IdempotencyKey: "key-1",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateTicketRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *CreateTicketRequest) {},
		},
		{
			name:   "missing idempotency key is allowed",
			mutate: func(r *CreateTicketRequest) { r.IdempotencyKey = "" },
		},
		{
			name:    "malformed event id",
			mutate:  func(r *CreateTicketRequest) { r.EventID = "nope" },
			wantErr: "event_id",
		},
		{
			name:    "first name too short",
			mutate:  func(r *CreateTicketRequest) { r.FirstName = "Iv" },
			wantErr: "first_name",
		},
		{
			name:    "last name too long",
			mutate:  func(r *CreateTicketRequest) { r.LastName = strings.Repeat("x", 101) },
			wantErr: "last_name",
		},
		{
			name:    "invalid email",
			mutate:  func(r *CreateTicketRequest) { r.Email = "not-an-email" },
			wantErr: "email",
		},
		{
			name:    "seat too short",
			mutate:  func(r *CreateTicketRequest) { r.Seat = "A" },
			wantErr: "seat",
		},
		{
			name:    "seat too long",
			mutate:  func(r *CreateTicketRequest) { r.Seat = "ABCDEFGHIJK" },
			wantErr: "seat",
		},
		{
			name:    "idempotency key too long",
			mutate:  func(r *CreateTicketRequest) { r.IdempotencyKey = strings.Repeat("k", 256) },
			wantErr: "idempotency key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)

			input, err := req.Validate()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, req.Seat, input.Seat)
			assert.Equal(t, req.IdempotencyKey, input.IdempotencyKey)
		})
	}
}

func TestParseListFilter(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		filter, err := parseListFilter(httptest.NewRequest("GET", "/api/events/", nil))

		require.NoError(t, err)
		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, defaultPageSize, filter.PageSize)
		assert.Nil(t, filter.DateFrom)
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		filter, err := parseListFilter(httptest.NewRequest("GET", "/api/events/?page=3&page_size=50&date_from=2025-06-01", nil))

		require.NoError(t, err)
		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 50, filter.PageSize)
		require.NotNil(t, filter.DateFrom)
		assert.Equal(t, "2025-06-01", filter.DateFrom.Format("2006-01-02"))
	})

	t.Run("rejects page below one", func(t *testing.T) {
		t.Parallel()

		_, err := parseListFilter(httptest.NewRequest("GET", "/api/events/?page=0", nil))
		require.Error(t, err)
	})

	t.Run("rejects oversized page_size", func(t *testing.T) {
		t.Parallel()

		_, err := parseListFilter(httptest.NewRequest("GET", "/api/events/?page_size=101", nil))
		require.Error(t, err)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		t.Parallel()

		_, err := parseListFilter(httptest.NewRequest("GET", "/api/events/?date_from=June+1st", nil))
		require.Error(t, err)
	})
}
