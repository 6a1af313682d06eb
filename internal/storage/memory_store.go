package storage

import (
	"context"
	"sync"
	"time"

	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/internal/taxbit"
)

type MemoryStore struct {
	uploads         map[string]*domain.Upload
	records         map[string][]domain.StoredRecord
	lines           map[string]map[int]int // upload -> line -> index in records
	rejected        map[string][]domain.RejectedRow
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		uploads:         make(map[string]*domain.Upload),
		records:         make(map[string][]domain.StoredRecord),
		lines:           make(map[string]map[int]int),
		rejected:        make(map[string][]domain.RejectedRow),
		processedEvents: make(map[string]bool),
	}
}

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) CreateUpload(ctx context.Context, uploadID string, schema taxbit.Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploads[uploadID] = &domain.Upload{
		ID:        uploadID,
		Schema:    schema,
		Status:    domain.UploadStatusProcessing,
		CreatedAt: time.Now(),
	}

	s.records[uploadID] = []domain.StoredRecord{}
	s.rejected[uploadID] = []domain.RejectedRow{}

	return nil
}

// GetUpload returns a copy so callers never race with ingestion workers.
func (s *MemoryStore) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return nil, domain.ErrUploadNotFound
	}

	cp := *upload
	return &cp, nil
}

func (s *MemoryStore) UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	upload.Status = status
	if status == domain.UploadStatusCompleted || status == domain.UploadStatusFailed {
		now := time.Now()
		upload.CompletedAt = &now
	}

	return nil
}

func (s *MemoryStore) SetTotalRows(ctx context.Context, uploadID string, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	upload.TotalRows = total

	return nil
}

func (s *MemoryStore) PurgeUploadsBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged []string
	for id, upload := range s.uploads {
		if !upload.CreatedAt.Before(cutoff) {
			continue
		}

		for _, rec := range s.records[id] {
			delete(s.processedEvents, domain.RecordEventID(id, rec.LineNumber))
		}
		delete(s.uploads, id)
		delete(s.records, id)
		delete(s.lines, id)
		delete(s.rejected, id)
		purged = append(purged, id)
	}

	return purged, nil
}

func (s *MemoryStore) AddRecord(ctx context.Context, uploadID string, rec taxbit.Record, lineNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	stored := domain.StoredRecord{Record: rec, LineNumber: lineNumber}

	lines := s.lines[uploadID]
	if lines == nil {
		lines = make(map[int]int)
		s.lines[uploadID] = lines
	}

	if i, ok := lines[lineNumber]; ok {
		s.records[uploadID][i] = stored
		return nil
	}

	lines[lineNumber] = len(s.records[uploadID])
	s.records[uploadID] = append(s.records[uploadID], stored)
	upload.ProcessedRows++

	return nil
}

// ListRecords returns the records of an upload in arrival order.
func (s *MemoryStore) ListRecords(ctx context.Context, uploadID string) ([]domain.StoredRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.uploads[uploadID]
	if !exists {
		return nil, domain.ErrUploadNotFound
	}

	records := make([]domain.StoredRecord, len(s.records[uploadID]))
	copy(records, s.records[uploadID])

	return records, nil
}

func (s *MemoryStore) AddRejectedRow(ctx context.Context, uploadID string, row domain.RejectedRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	s.rejected[uploadID] = append(s.rejected[uploadID], row)
	upload.RejectedRows++

	return nil
}

func (s *MemoryStore) GetRejectedRows(ctx context.Context, uploadID string, page, perPage int) ([]domain.RejectedRow, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.uploads[uploadID]
	if !exists {
		return nil, 0, domain.ErrUploadNotFound
	}

	rows := s.rejected[uploadID]
	total := len(rows)

	start, end := pageBounds(page, perPage, total)
	if start >= total {
		return []domain.RejectedRow{}, total, nil
	}

	out := make([]domain.RejectedRow, end-start)
	copy(out, rows[start:end])

	return out, total, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}
