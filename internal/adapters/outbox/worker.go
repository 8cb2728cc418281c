package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/jmoiron/sqlx"
)

// Ensure Worker implements the BackgroundProcessor interface
var _ ports.BackgroundProcessor = (*Worker)(nil)

// Worker drains pending outbox records into the notification service.
// Claimed rows stay locked for the duration of the batch, so concurrent
// workers never deliver the same record twice.
type Worker struct {
	transactor  ports.Transactor
	outbox      ports.OutboxRepository
	idempotency ports.IdempotencyRepository
	notifier    ports.Notifier
	metrics     infrastructure.Metrics
	logger      infrastructure.Logger

	outboxCfg      config.OutboxConfig
	idempotencyCfg config.IdempotencyConfig
}

func NewWorker(
	transactor ports.Transactor,
	outbox ports.OutboxRepository,
	idempotency ports.IdempotencyRepository,
	notifier ports.Notifier,
	metrics infrastructure.Metrics,
	logger infrastructure.Logger,
	outboxCfg config.OutboxConfig,
	idempotencyCfg config.IdempotencyConfig,
) *Worker {
	return &Worker{
		transactor:     transactor,
		outbox:         outbox,
		idempotency:    idempotency,
		notifier:       notifier,
		metrics:        metrics,
		logger:         logger,
		outboxCfg:      outboxCfg,
		idempotencyCfg: idempotencyCfg,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info().
		Dur("poll_interval", w.outboxCfg.PollInterval).
		Int("batch_size", w.outboxCfg.BatchSize).
		Msg("starting outbox worker")

	ticker := time.NewTicker(w.outboxCfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("outbox worker shutting down")

			return ctx.Err()

		case <-ticker.C:
			if err := w.ProcessBatch(ctx); err != nil {
				w.logger.Error().Err(err).Msg("failed to process outbox batch")
			}

			w.cleanup(ctx)
		}
	}
}

// ProcessBatch claims and delivers one batch of pending records.
func (w *Worker) ProcessBatch(ctx context.Context) error {
	return w.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		records, err := w.outbox.ClaimPendingInTx(ctx, tx, w.outboxCfg.BatchSize)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		w.logger.Debug().Int("count", len(records)).Msg("processing pending outbox records")

		for _, record := range records {
			if err := w.processRecord(ctx, tx, record); err != nil {
				return err
			}
		}

		return nil
	})
}

// processRecord delivers one record. Records that already burned through
// their retry budget go to the terminal failed status without another
// delivery attempt.
func (w *Worker) processRecord(ctx context.Context, tx *sqlx.Tx, record domain.OutboxRecord) error {
	ticket := record.Payload.TicketID
	if ticket == "" {
		ticket = "unknown"
	}

	if record.RetryCount >= w.outboxCfg.MaxRetries {
		w.logger.Error().
			Str("outbox_id", record.ID.String()).
			Str("ticket", ticket).
			Int("retry_count", record.RetryCount).
			Msg("outbox record exceeded its retry budget")

		w.metrics.RecordOutboxDelivery(ctx, false)

		return w.outbox.MarkFailedInTx(ctx, tx, record.ID)
	}

	message := fmt.Sprintf("Вы успешно зарегистрированы на мероприятие (билет %s)", ticket)
	idempotencyKey := fmt.Sprintf("outbox_%s", record.ID)

	if err := w.notifier.Notify(ctx, idempotencyKey, ticket, message); err != nil {
		w.logger.Warn().
			Err(err).
			Str("outbox_id", record.ID.String()).
			Int("retry_count", record.RetryCount+1).
			Msg("notification delivery failed")

		w.metrics.RecordOutboxDelivery(ctx, false)

		return w.outbox.IncrementRetryInTx(ctx, tx, record.ID)
	}

	w.logger.Info().
		Str("outbox_id", record.ID.String()).
		Str("ticket", ticket).
		Msg("outbox record delivered")

	w.metrics.RecordOutboxDelivery(ctx, true)

	return w.outbox.MarkSentInTx(ctx, tx, record.ID)
}

// cleanup trims delivered records past retention and sweeps expired
// idempotency keys. Failures here are logged, not fatal.
func (w *Worker) cleanup(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -w.outboxCfg.DaysToKeep)

	deleted, err := w.outbox.DeleteSentBefore(ctx, cutoff)
	switch {
	case err != nil:
		w.logger.Error().Err(err).Msg("failed to trim sent outbox records")
	case deleted > 0:
		w.logger.Info().
			Int64("deleted", deleted).
			Int("days_to_keep", w.outboxCfg.DaysToKeep).
			Msg("trimmed sent outbox records")
	}

	expired, err := w.idempotency.DeleteExpired(ctx, time.Now())
	switch {
	case err != nil:
		w.logger.Error().Err(err).Msg("failed to sweep expired idempotency keys")
	case expired > 0:
		w.logger.Info().Int64("deleted", expired).Msg("swept expired idempotency keys")
	}
}
