package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockMetrics struct {
	recordedMethod       string
	recordedPath         string
	recordedStatusCode   int
	recordedDuration     time.Duration
	recordedRequestSize  int64
	recordedResponseSize int64
}

func (m *mockMetrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration, requestSize, responseSize int64) {
	m.recordedMethod = method
	m.recordedPath = path
	m.recordedStatusCode = statusCode
	m.recordedDuration = duration
	m.recordedRequestSize = requestSize
	m.recordedResponseSize = responseSize
}

func (m *mockMetrics) RecordProviderRequest(ctx context.Context, operation string, statusCode int, duration time.Duration) {
}

func (m *mockMetrics) RecordSyncRun(ctx context.Context, duration time.Duration, processed int, success bool) {
}

func (m *mockMetrics) RecordOutboxDelivery(ctx context.Context, success bool) {
}

func (m *mockMetrics) RecordTicketRegistration(ctx context.Context, success bool, errorKind string) {
}

func (m *mockMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (m *mockMetrics) Shutdown(ctx context.Context) error {
	return nil
}

func TestMetricsMiddleware_Middleware(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		method       string
		path         string
		statusCode   int
		responseBody string
	}{
		{
			name:         "records successful GET request",
			method:       "GET",
			path:         "/api/events/",
			statusCode:   http.StatusOK,
			responseBody: "success response",
		},
		{
			name:         "records POST request with created status",
			method:       "POST",
			path:         "/api/tickets/",
			statusCode:   http.StatusCreated,
			responseBody: "{\"id\":\"123\"}",
		},
		{
			name:         "records bad request error",
			method:       "POST",
			path:         "/api/tickets/",
			statusCode:   http.StatusBadRequest,
			responseBody: "bad request",
		},
		{
			name:         "records internal server error",
			method:       "POST",
			path:         "/api/sync/",
			statusCode:   http.StatusInternalServerError,
			responseBody: "error",
		},
		{
			name:         "records not found error",
			method:       "GET",
			path:         "/api/events/nonexistent/",
			statusCode:   http.StatusNotFound,
			responseBody: "not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &mockMetrics{}
			metricsMiddleware := NewMetricsMiddleware(mock)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.responseBody))
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			metricsMiddleware.Middleware(handler).ServeHTTP(rec, req)

			assert.Equal(t, tc.statusCode, rec.Code, "response status code mismatch")
			assert.Equal(t, tc.method, mock.recordedMethod, "recorded method mismatch")
			assert.Equal(t, tc.path, mock.recordedPath, "recorded path mismatch")
			assert.Equal(t, tc.statusCode, mock.recordedStatusCode, "recorded status code mismatch")
			assert.Greater(t, mock.recordedDuration, time.Duration(0), "recorded duration should be positive")
			assert.Equal(t, int64(len(tc.responseBody)), mock.recordedResponseSize, "recorded response size mismatch")
		})
	}
}
