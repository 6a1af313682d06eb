package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/internal/eventbus"
	"github.com/grachmannico95/taxbit-export/internal/taxbit"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/grachmannico95/taxbit-export/pkg/retry"
)

const (
	rejectAttempts   = 3
	rejectRetryDelay = 50 * time.Millisecond
)

type CSVProcessorInterface interface {
	ProcessStream(ctx context.Context, uploadID string, schema taxbit.Schema, reader io.Reader) error
}

// CSVProcessor reads a TaxBit export and publishes one event per accepted
// row. Rows that fail to parse are stored as rejected rows and skipped.
type CSVProcessor struct {
	eventBus eventbus.EventBus
	repo     domain.Repository
	logger   *logger.Logger
}

func NewCSVProcessor(eventBus eventbus.EventBus, repo domain.Repository, log *logger.Logger) *CSVProcessor {
	return &CSVProcessor{
		eventBus: eventBus,
		repo:     repo,
		logger:   log,
	}
}

func (p *CSVProcessor) ProcessStream(ctx context.Context, uploadID string, schema taxbit.Schema, reader io.Reader) error {
	ctx = logger.WithUploadID(ctx, uploadID)

	p.logger.Info(ctx, "Starting CSV processing", "schema", schema.String())

	r := taxbit.NewReader(reader, schema)

	if _, err := r.Header(); err != nil {
		p.finish(ctx, uploadID, domain.UploadStatusFailed)

		if !isRowError(err) && !errors.Is(err, taxbit.ErrMissingColumn) {
			p.logger.Error(ctx, "Failed to read CSV header", "error", err)
			return fmt.Errorf("failed to read CSV: %w", err)
		}

		p.logger.Warn(ctx, "Invalid CSV header", "error", err)
		_ = p.reject(ctx, uploadID, 1, err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidCSVFormat, err)
	}

	rows := 0
	successCount := 0
	errorCount := 0
	// rows neither published nor recorded as rejected; the upload can never
	// become ready while any exist
	lostCount := 0

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !isRowError(err) {
			p.logger.Error(ctx, "Failed to read CSV stream",
				"line", r.Line(),
				"error", err,
			)
			p.setTotal(ctx, uploadID, rows)
			p.finish(ctx, uploadID, domain.UploadStatusFailed)
			return fmt.Errorf("failed to read CSV: %w", err)
		}

		rows++
		line := r.Line()

		if err != nil {
			p.logger.Warn(ctx, "Rejected CSV row",
				"line", line,
				"error", err,
			)
			if rejErr := p.reject(ctx, uploadID, line, err); rejErr != nil {
				lostCount++
			}
			errorCount++
			continue
		}

		event := eventbus.Event{
			ID:   domain.RecordEventID(uploadID, line),
			Type: eventbus.EventTypeRecordIngest,
			Payload: eventbus.RecordEvent{
				UploadID:   uploadID,
				Record:     rec,
				LineNumber: line,
			},
			Timestamp: time.Now(),
		}

		err = p.eventBus.Publish(ctx, event)
		if err != nil {
			p.logger.Error(ctx, "Failed to publish event",
				"event_id", event.ID,
				"line", line,
				"error", err,
			)
			if rejErr := p.reject(ctx, uploadID, line, err); rejErr != nil {
				lostCount++
			}
			errorCount++
			continue
		}

		successCount++
	}

	p.setTotal(ctx, uploadID, rows)

	switch {
	case lostCount > 0:
		p.logger.Error(ctx, "Rejected rows could not be recorded, failing upload",
			"lost_count", lostCount,
		)
		p.finish(ctx, uploadID, domain.UploadStatusFailed)
	case errorCount > 0 && successCount == 0:
		p.finish(ctx, uploadID, domain.UploadStatusFailed)
	default:
		p.finish(ctx, uploadID, domain.UploadStatusCompleted)
	}

	p.logger.Info(ctx, "CSV processing completed",
		"total_rows", rows,
		"success_count", successCount,
		"error_count", errorCount,
		"lost_count", lostCount,
	)

	return nil
}

// isRowError reports whether err only spoils the current row.
func isRowError(err error) bool {
	var pe *csv.ParseError
	return errors.Is(err, taxbit.ErrFormat) ||
		errors.Is(err, taxbit.ErrFieldCount) ||
		errors.As(err, &pe)
}

func (p *CSVProcessor) reject(ctx context.Context, uploadID string, line int, cause error) error {
	row := domain.RejectedRow{
		LineNumber: line,
		Reason:     cause.Error(),
	}

	var fe *taxbit.FormatError
	if errors.As(cause, &fe) {
		row.Column = fe.Column
		row.Value = fe.Value
	}

	err := retry.Do(ctx, func() error {
		err := p.repo.AddRejectedRow(ctx, uploadID, row)
		if errors.Is(err, domain.ErrUploadNotFound) {
			return retry.Permanent(err)
		}
		return err
	}, retry.WithMaxAttempts(rejectAttempts), retry.WithBaseDelay(rejectRetryDelay))
	if err != nil {
		p.logger.Error(ctx, "Failed to store rejected row",
			"line", line,
			"error", err,
		)
		return err
	}

	return nil
}

func (p *CSVProcessor) setTotal(ctx context.Context, uploadID string, total int) {
	if err := p.repo.SetTotalRows(ctx, uploadID, total); err != nil {
		p.logger.Error(ctx, "Failed to set total rows", "error", err)
	}
}

func (p *CSVProcessor) finish(ctx context.Context, uploadID string, status domain.UploadStatus) {
	if err := p.repo.UpdateUploadStatus(ctx, uploadID, status); err != nil {
		p.logger.Error(ctx, "Failed to update upload status",
			"status", status,
			"error", err,
		)
	}
}
