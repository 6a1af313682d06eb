package domain

import (
	"fmt"
	"time"

	"github.com/grachmannico95/taxbit-export/internal/taxbit"
)

type UploadStatus string

const (
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
	UploadStatusFailed     UploadStatus = "failed"
)

type Upload struct {
	ID            string        `json:"id"`
	Schema        taxbit.Schema `json:"schema"`
	Status        UploadStatus  `json:"status"`
	ProcessedRows int           `json:"processed_rows"`
	RejectedRows  int           `json:"rejected_rows"`
	TotalRows     int           `json:"total_rows"`
	CreatedAt     time.Time     `json:"created_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
}

// Pending is the number of accepted rows not yet stored by the consumers.
func (u *Upload) Pending() int {
	n := u.TotalRows - u.ProcessedRows - u.RejectedRows
	if n < 0 {
		return 0
	}
	return n
}

// Ready reports whether the upload finished and every accepted row is stored.
func (u *Upload) Ready() bool {
	return u.Status == UploadStatusCompleted && u.Pending() == 0
}

// StoredRecord is a parsed record with the CSV line it came from.
type StoredRecord struct {
	taxbit.Record
	LineNumber int `json:"line_number"`
}

// RejectedRow is a data row that failed to parse.
type RejectedRow struct {
	LineNumber int    `json:"line_number"`
	Column     string `json:"column,omitempty"`
	Value      string `json:"value,omitempty"`
	Reason     string `json:"reason"`
}

type AssetSummary struct {
	Asset       string         `json:"asset"`
	RecordCount int            `json:"record_count"`
	Types       map[string]int `json:"types"`
}

// RecordEventID is the idempotency key of the ingestion event for one line.
func RecordEventID(uploadID string, lineNumber int) string {
	return fmt.Sprintf("%s-%d", uploadID, lineNumber)
}
