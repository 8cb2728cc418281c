package infrastructure

import (
	"context"
	"net/http"
	"time"
)

type NoOpMetrics struct{}

func (n *NoOpMetrics) RecordHTTPRequest(_ context.Context, _, _ string, _ int, _ time.Duration, _, _ int64) {
}

func (n *NoOpMetrics) RecordProviderRequest(_ context.Context, _ string, _ int, _ time.Duration) {
}

func (n *NoOpMetrics) RecordSyncRun(_ context.Context, _ time.Duration, _ int, _ bool) {
}

func (n *NoOpMetrics) RecordOutboxDelivery(_ context.Context, _ bool) {
}

func (n *NoOpMetrics) RecordTicketRegistration(_ context.Context, _ bool, _ string) {
}

func (n *NoOpMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (n *NoOpMetrics) Shutdown(_ context.Context) error {
	return nil
}
