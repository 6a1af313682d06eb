package eventbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/grachmannico95/taxbit-export/pkg/retry"
)

var ErrInvalidPayload = errors.New("invalid payload type")

// RecordConsumer persists ingested records. Events are idempotent on their
// ID and records on their line, so a retried delivery stores the row once.
type RecordConsumer struct {
	repo        domain.Repository
	logger      *logger.Logger
	workerCount int
}

func NewRecordConsumer(repo domain.Repository, log *logger.Logger, workerCount int) *RecordConsumer {
	return &RecordConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (rc *RecordConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := rc.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		rc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		rc.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(RecordEvent)
	if !ok {
		rc.logger.Error(ctx, "Invalid payload type for record event",
			"event_id", event.ID,
		)
		return retry.Permanent(fmt.Errorf("%w: %T", ErrInvalidPayload, event.Payload))
	}

	ctx = logger.WithUploadID(ctx, payload.UploadID)

	rc.logger.Debug(ctx, "Storing record",
		"event_id", event.ID,
		"line_number", payload.LineNumber,
		"type", payload.Record.Type.String(),
	)

	err = rc.repo.AddRecord(ctx, payload.UploadID, payload.Record, payload.LineNumber)
	if errors.Is(err, domain.ErrUploadNotFound) {
		// purged while queued
		return retry.Permanent(err)
	}
	if err != nil {
		rc.logger.Error(ctx, "Failed to add record",
			"event_id", event.ID,
			"line_number", payload.LineNumber,
			"error", err,
		)
		return err
	}

	// a failure here redelivers the event; AddRecord is idempotent per line
	err = rc.repo.MarkEventProcessed(ctx, event.ID)
	if err != nil {
		rc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	rc.logger.Debug(ctx, "Record stored",
		"event_id", event.ID,
		"line_number", payload.LineNumber,
	)

	return nil
}

// OnGiveUp turns a row the bus could not deliver into a rejected row, so the
// upload's pending count still reaches zero.
func (rc *RecordConsumer) OnGiveUp(ctx context.Context, event Event, cause error) {
	payload, ok := event.Payload.(RecordEvent)
	if !ok || errors.Is(cause, domain.ErrUploadNotFound) {
		return
	}

	ctx = logger.WithUploadID(ctx, payload.UploadID)

	row := domain.RejectedRow{
		LineNumber: payload.LineNumber,
		Reason:     fmt.Sprintf("failed to store record: %v", cause),
	}
	if err := rc.repo.AddRejectedRow(ctx, payload.UploadID, row); err != nil {
		rc.logger.Error(ctx, "Failed to reject undeliverable record",
			"event_id", event.ID,
			"line_number", payload.LineNumber,
			"error", err,
		)
	}
}

func (rc *RecordConsumer) GetWorkerCount() int {
	return rc.workerCount
}
