package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/internal/taxbit"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/patrickmn/go-cache"
)

const maxPerPage = 100

type ExportService interface {
	UploadExport(ctx context.Context, schema taxbit.Schema, reader io.ReadCloser) (string, error)
	GetUploadStatus(ctx context.Context, uploadID string) (*domain.Upload, error)
	GetRecords(ctx context.Context, uploadID string, page, perPage int, asset string) ([]domain.StoredRecord, int, error)
	GetAssets(ctx context.Context, uploadID string) ([]domain.AssetSummary, error)
	GetRejectedRows(ctx context.Context, uploadID string, page, perPage int) ([]domain.RejectedRow, int, error)
	ExportCSV(ctx context.Context, uploadID string, schema taxbit.Schema) ([]byte, error)
	Invalidate(uploadID string)
}

type exportService struct {
	repo         domain.Repository
	csvProcessor CSVProcessorInterface
	cache        *cache.Cache
	logger       *logger.Logger
}

func NewExportService(repo domain.Repository, csvProcessor CSVProcessorInterface, exportCache *cache.Cache, log *logger.Logger) ExportService {
	return &exportService{
		repo:         repo,
		csvProcessor: csvProcessor,
		cache:        exportCache,
		logger:       log,
	}
}

// UploadExport registers a new upload and parses reader in the background.
// The reader is closed once processing ends.
func (s *exportService) UploadExport(ctx context.Context, schema taxbit.Schema, reader io.ReadCloser) (string, error) {
	if !schema.Valid() {
		reader.Close()
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidSchema, schema)
	}

	uploadID := uuid.New().String()

	ctx = logger.WithUploadID(ctx, uploadID)

	s.logger.Info(ctx, "Creating upload record", "schema", schema.String())

	err := s.repo.CreateUpload(ctx, uploadID, schema)
	if err != nil {
		s.logger.Error(ctx, "Failed to create upload",
			"error", err,
		)
		reader.Close()
		return "", err
	}

	go func() {
		defer reader.Close()

		// keeps trace and upload ids, drops the request deadline
		processCtx := context.WithoutCancel(ctx)

		s.logger.Info(processCtx, "Starting async CSV processing")

		err := s.csvProcessor.ProcessStream(processCtx, uploadID, schema, reader)
		if err != nil {
			s.logger.Error(processCtx, "CSV processing failed",
				"error", err,
			)
		} else {
			s.logger.Info(processCtx, "CSV processing completed successfully")
		}
	}()

	s.logger.Info(ctx, "Upload created, processing started")

	return uploadID, nil
}

func (s *exportService) GetUploadStatus(ctx context.Context, uploadID string) (*domain.Upload, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	s.logger.Debug(ctx, "Getting upload status")

	upload, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get upload",
			"error", err,
		)
		return nil, err
	}

	return upload, nil
}

// GetRecords returns one page of the upload's records in export order,
// optionally restricted to records whose asset matches (case-insensitive).
func (s *exportService) GetRecords(ctx context.Context, uploadID string, page, perPage int, asset string) ([]domain.StoredRecord, int, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	if err := validatePage(page, perPage); err != nil {
		return nil, 0, err
	}

	s.logger.Debug(ctx, "Getting records",
		"page", page,
		"per_page", perPage,
		"asset", asset,
	)

	records, err := s.repo.ListRecords(ctx, uploadID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list records",
			"error", err,
		)
		return nil, 0, err
	}

	sortStored(records)

	if asset != "" {
		records = slices.DeleteFunc(records, func(r domain.StoredRecord) bool {
			return !strings.EqualFold(r.Asset(), asset)
		})
	}

	total := len(records)
	items := paginate(records, page, perPage)

	s.logger.Debug(ctx, "Records retrieved",
		"total", total,
		"returned", len(items),
	)

	return items, total, nil
}

// GetAssets groups the upload's records by asset, in asset order.
func (s *exportService) GetAssets(ctx context.Context, uploadID string) ([]domain.AssetSummary, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	s.logger.Debug(ctx, "Getting assets")

	records, err := s.repo.ListRecords(ctx, uploadID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list records",
			"error", err,
		)
		return nil, err
	}

	byAsset := make(map[string]*domain.AssetSummary)
	for _, r := range records {
		asset := r.Asset()

		summary, ok := byAsset[asset]
		if !ok {
			summary = &domain.AssetSummary{Asset: asset, Types: make(map[string]int)}
			byAsset[asset] = summary
		}
		summary.RecordCount++
		summary.Types[r.Type.String()]++
	}

	out := make([]domain.AssetSummary, 0, len(byAsset))
	for _, summary := range byAsset {
		out = append(out, *summary)
	}
	slices.SortFunc(out, func(a, b domain.AssetSummary) int {
		return strings.Compare(a.Asset, b.Asset)
	})

	return out, nil
}

func (s *exportService) GetRejectedRows(ctx context.Context, uploadID string, page, perPage int) ([]domain.RejectedRow, int, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	if err := validatePage(page, perPage); err != nil {
		return nil, 0, err
	}

	s.logger.Debug(ctx, "Getting rejected rows",
		"page", page,
		"per_page", perPage,
	)

	rows, total, err := s.repo.GetRejectedRows(ctx, uploadID, page, perPage)
	if err != nil {
		s.logger.Error(ctx, "Failed to get rejected rows",
			"error", err,
		)
		return nil, 0, err
	}

	return rows, total, nil
}

// ExportCSV renders the upload as a sorted, deduplicated TaxBit CSV in the
// given schema (the upload's own schema when zero). Records typed Invalid
// are left out of a basic export since that schema cannot express them.
func (s *exportService) ExportCSV(ctx context.Context, uploadID string, schema taxbit.Schema) ([]byte, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	upload, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	if schema == 0 {
		schema = upload.Schema
	}
	if !schema.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSchema, schema)
	}

	switch {
	case upload.Status == domain.UploadStatusFailed:
		return nil, domain.ErrUploadFailed
	case !upload.Ready():
		return nil, domain.ErrUploadNotReady
	}

	key := exportCacheKey(uploadID, schema)
	if cached, found := s.cache.Get(key); found {
		s.logger.Debug(ctx, "Cache hit for export", "schema", schema.String())
		return cached.([]byte), nil
	}

	s.logger.Info(ctx, "Cache miss for export, rendering", "schema", schema.String())

	stored, err := s.repo.ListRecords(ctx, uploadID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list records",
			"error", err,
		)
		return nil, err
	}

	records := make([]taxbit.Record, 0, len(stored))
	skipped := 0
	for _, r := range stored {
		if schema == taxbit.SchemaBasic && r.Type == taxbit.TransactionTypeInvalid {
			skipped++
			continue
		}
		records = append(records, r.Record)
	}

	taxbit.Sort(records)
	records = taxbit.Dedup(records)

	var buf bytes.Buffer
	if err := taxbit.NewWriter(&buf, schema).WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	s.logger.Info(ctx, "Export rendered",
		"schema", schema.String(),
		"records", len(records),
		"duplicates", len(stored)-skipped-len(records),
		"skipped_invalid", skipped,
	)

	out := buf.Bytes()
	s.cache.Set(key, out, cache.DefaultExpiration)

	return out, nil
}

// Invalidate drops every cached export of the upload.
func (s *exportService) Invalidate(uploadID string) {
	for _, schema := range []taxbit.Schema{taxbit.SchemaBasic, taxbit.SchemaExtended} {
		s.cache.Delete(exportCacheKey(uploadID, schema))
	}
}

func exportCacheKey(uploadID string, schema taxbit.Schema) string {
	return fmt.Sprintf("export:%s:%s", uploadID, schema)
}

func sortStored(records []domain.StoredRecord) {
	slices.SortStableFunc(records, func(a, b domain.StoredRecord) int {
		if c := taxbit.CompareAbsentFirst(a.Record, b.Record); c != 0 {
			return c
		}
		return a.LineNumber - b.LineNumber
	})
}

func validatePage(page, perPage int) error {
	if page < 1 || perPage < 1 || perPage > maxPerPage || page > math.MaxInt/perPage {
		return fmt.Errorf("%w: page=%d per_page=%d (max %d)", domain.ErrInvalidPageParams, page, perPage, maxPerPage)
	}
	return nil
}

func paginate[T any](items []T, page, perPage int) []T {
	// checked before multiplying so a huge page cannot overflow
	if page-1 > len(items)/perPage {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+perPage, len(items))
	return items[start:end]
}

// IsClientError reports whether err stems from bad input rather than a
// failing dependency.
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidPageParams) ||
		errors.Is(err, domain.ErrInvalidSchema) ||
		errors.Is(err, domain.ErrInvalidCSVFormat)
}
