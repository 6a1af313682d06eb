package eventbus

import (
	"time"

	"github.com/grachmannico95/taxbit-export/internal/taxbit"
)

type EventType string

const (
	EventTypeRecordIngest EventType = "record.ingest"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// RecordEvent carries one accepted CSV row to the storage consumers.
type RecordEvent struct {
	UploadID   string        `json:"upload_id"`
	Record     taxbit.Record `json:"record"`
	LineNumber int           `json:"line_number"`
}
