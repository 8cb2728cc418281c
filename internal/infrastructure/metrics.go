//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	metricsNamespace = "ticket_aggregator"
)

type (
	//counterfeiter:generate -o ../mocks/metrics.go . Metrics

	Metrics interface {
		RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration, requestSize, responseSize int64)
		RecordProviderRequest(ctx context.Context, operation string, statusCode int, duration time.Duration)
		RecordSyncRun(ctx context.Context, duration time.Duration, processed int, success bool)
		RecordOutboxDelivery(ctx context.Context, success bool)
		RecordTicketRegistration(ctx context.Context, success bool, errorKind string)
		Handler() http.Handler
		Shutdown(ctx context.Context) error
	}

	OTELMetrics struct {
		meterProvider *sdkmetric.MeterProvider
		meter         metric.Meter
		logger        Logger

		httpRequestTotal        metric.Int64Counter
		httpRequestDuration     metric.Float64Histogram
		httpRequestSize         metric.Int64Histogram
		httpResponseSize        metric.Int64Histogram
		providerRequestTotal    metric.Int64Counter
		providerRequestDuration metric.Float64Histogram
		syncRunTotal            metric.Int64Counter
		syncRunDuration         metric.Float64Histogram
		syncEventsProcessed     metric.Int64Counter
		outboxDeliveredTotal    metric.Int64Counter
		outboxErrorTotal        metric.Int64Counter
		registrationTotal       metric.Int64Counter
		registrationErrorTotal  metric.Int64Counter
	}
)

func NewMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (Metrics, error) {
	if !cfg.Telemetry.Metrics.Enabled {
		logger.Info().Msg("metrics disabled, using NoOp implementation")

		return &NoOpMetrics{}, nil
	}

	return NewOTELMetrics(ctx, cfg, logger)
}

func NewOTELMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (*OTELMetrics, error) {
	endpoint := fmt.Sprintf("%s:%s", cfg.Telemetry.OtelGRPCHost, cfg.Telemetry.OtelGRPCPort)

	conn, err := grpc.NewClient(
		endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTEL collector: %w", err)
	}

	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.AppConfig.ServiceName),
			semconv.ServiceVersionKey.String(cfg.AppConfig.ServiceVersion),
			semconv.ServiceInstanceIDKey.String(cfg.AppConfig.CommitSHA),
			semconv.DeploymentEnvironmentKey.String(cfg.AppConfig.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		metricsNamespace,
		metric.WithInstrumentationVersion(cfg.AppConfig.ServiceVersion),
	)

	provider := &OTELMetrics{
		meterProvider: meterProvider,
		meter:         meter,
		logger:        logger,
	}

	if err := provider.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Info().
		Str("otel_endpoint", endpoint).
		Msg("OTEL metrics provider initialized successfully")

	return provider, nil
}

func (om *OTELMetrics) initializeMetrics() error {
	var err error

	om.httpRequestTotal, err = om.meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	om.httpRequestDuration, err = om.meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	om.httpRequestSize, err = om.meter.Int64Histogram(
		"http_request_size_bytes",
		metric.WithDescription("HTTP request size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_request_size_bytes histogram: %w", err)
	}

	om.httpResponseSize, err = om.meter.Int64Histogram(
		"http_response_size_bytes",
		metric.WithDescription("HTTP response size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_response_size_bytes histogram: %w", err)
	}

	om.providerRequestTotal, err = om.meter.Int64Counter(
		"provider_requests_total",
		metric.WithDescription("Total number of upstream provider requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create provider_requests_total counter: %w", err)
	}

	om.providerRequestDuration, err = om.meter.Float64Histogram(
		"provider_request_duration_seconds",
		metric.WithDescription("Upstream provider request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create provider_request_duration_seconds histogram: %w", err)
	}

	om.syncRunTotal, err = om.meter.Int64Counter(
		"sync_runs_total",
		metric.WithDescription("Total number of catalogue sync runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sync_runs_total counter: %w", err)
	}

	om.syncRunDuration, err = om.meter.Float64Histogram(
		"sync_run_duration_seconds",
		metric.WithDescription("Catalogue sync run duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sync_run_duration_seconds histogram: %w", err)
	}

	om.syncEventsProcessed, err = om.meter.Int64Counter(
		"sync_events_processed_total",
		metric.WithDescription("Total number of events upserted by sync runs"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sync_events_processed_total counter: %w", err)
	}

	om.outboxDeliveredTotal, err = om.meter.Int64Counter(
		"outbox_delivered_total",
		metric.WithDescription("Total number of outbox notifications delivered"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox_delivered_total counter: %w", err)
	}

	om.outboxErrorTotal, err = om.meter.Int64Counter(
		"outbox_errors_total",
		metric.WithDescription("Total number of outbox delivery failures"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox_errors_total counter: %w", err)
	}

	om.registrationTotal, err = om.meter.Int64Counter(
		"ticket_registrations_total",
		metric.WithDescription("Total number of ticket registrations"),
		metric.WithUnit("{registration}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket_registrations_total counter: %w", err)
	}

	om.registrationErrorTotal, err = om.meter.Int64Counter(
		"ticket_registration_errors_total",
		metric.WithDescription("Total number of ticket registration errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket_registration_errors_total counter: %w", err)
	}

	return nil
}

func (om *OTELMetrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration, requestSize, responseSize int64) {
	om.httpRequestTotal.Add(ctx, 1,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)

	om.httpRequestDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)

	om.httpRequestSize.Record(ctx, requestSize,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
		),
	)

	om.httpResponseSize.Record(ctx, responseSize,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)
}

func (om *OTELMetrics) RecordProviderRequest(ctx context.Context, operation string, statusCode int, duration time.Duration) {
	om.providerRequestTotal.Add(ctx, 1,
		metric.WithAttributes(
			OperationAttr(operation),
			HTTPStatusCodeAttr(statusCode),
		),
	)

	om.providerRequestDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			OperationAttr(operation),
		),
	)
}

func (om *OTELMetrics) RecordSyncRun(ctx context.Context, duration time.Duration, processed int, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	om.syncRunTotal.Add(ctx, 1,
		metric.WithAttributes(
			StatusAttr(status),
		),
	)

	om.syncRunDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			StatusAttr(status),
		),
	)

	if processed > 0 {
		om.syncEventsProcessed.Add(ctx, int64(processed))
	}
}

func (om *OTELMetrics) RecordOutboxDelivery(ctx context.Context, success bool) {
	if success {
		om.outboxDeliveredTotal.Add(ctx, 1)

		return
	}

	om.outboxErrorTotal.Add(ctx, 1)
}

func (om *OTELMetrics) RecordTicketRegistration(ctx context.Context, success bool, errorKind string) {
	status := "success"
	if !success {
		status = "error"
	}

	om.registrationTotal.Add(ctx, 1,
		metric.WithAttributes(
			StatusAttr(status),
		),
	)

	if !success && errorKind != "" {
		om.registrationErrorTotal.Add(ctx, 1,
			metric.WithAttributes(
				ErrorTypeAttr(errorKind),
			),
		)
	}
}

func (om *OTELMetrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (om *OTELMetrics) Shutdown(ctx context.Context) error {
	if err := om.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}

	return nil
}
