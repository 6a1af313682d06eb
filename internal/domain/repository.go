package domain

import (
	"context"
	"time"

	"github.com/grachmannico95/taxbit-export/internal/taxbit"
)

type Repository interface {
	// Upload management
	CreateUpload(ctx context.Context, uploadID string, schema taxbit.Schema) error
	GetUpload(ctx context.Context, uploadID string) (*Upload, error)
	UpdateUploadStatus(ctx context.Context, uploadID string, status UploadStatus) error
	SetTotalRows(ctx context.Context, uploadID string, total int) error
	PurgeUploadsBefore(ctx context.Context, cutoff time.Time) ([]string, error)

	// Record operations. AddRecord stores and counts a row in one step; a
	// second call for the same line replaces the row without counting it.
	AddRecord(ctx context.Context, uploadID string, rec taxbit.Record, lineNumber int) error
	ListRecords(ctx context.Context, uploadID string) ([]StoredRecord, error)
	AddRejectedRow(ctx context.Context, uploadID string, row RejectedRow) error
	GetRejectedRows(ctx context.Context, uploadID string, page, perPage int) ([]RejectedRow, int, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
