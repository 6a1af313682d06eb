package service

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/internal/taxbit"
	"github.com/grachmannico95/taxbit-export/mocks"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const exportHeader = "Date,Transaction Type,Received Quantity,Received Currency,Sent Quantity,Sent Currency,Fee Currency,Fee Amount,Market Value,Source,Internal Transfer,External ID"

func newTestExportService(t *testing.T) (ExportService, *mocks.MockRepository, *mocks.MockCSVProcessorInterface) {
	repo := mocks.NewMockRepository(t)
	csvProcessor := mocks.NewMockCSVProcessorInterface(t)
	svc := NewExportService(repo, csvProcessor, cache.New(time.Minute, time.Minute), logger.NewNop())
	return svc, repo, csvProcessor
}

func stored(line int, ms int64, typ taxbit.TransactionType, received, sent string) domain.StoredRecord {
	rec := taxbit.New()
	rec.Time = ms
	rec.Type = typ
	rec.ReceivedCurrency = received
	rec.SentCurrency = sent
	if received != "" {
		rec.ReceivedQuantity = decimal.NewNullDecimal(decimal.NewFromInt(1))
	}
	if sent != "" {
		rec.SentQuantity = decimal.NewNullDecimal(decimal.NewFromInt(1))
	}
	rec.Source = "BinanceUS"
	return domain.StoredRecord{Record: rec, LineNumber: line}
}

func completedUpload(id string, schema taxbit.Schema, total int) *domain.Upload {
	now := time.Now()
	return &domain.Upload{
		ID:            id,
		Schema:        schema,
		Status:        domain.UploadStatusCompleted,
		ProcessedRows: total,
		TotalRows:     total,
		CreatedAt:     now,
		CompletedAt:   &now,
	}
}

func TestNewExportService(t *testing.T) {
	svc, _, _ := newTestExportService(t)

	assert.NotNil(t, svc)
	assert.Implements(t, (*ExportService)(nil), svc)
}

func TestUploadExport_Success(t *testing.T) {
	// Setup
	svc, repo, csvProcessor := newTestExportService(t)
	ctx := context.Background()
	reader := io.NopCloser(strings.NewReader("test csv content"))
	done := make(chan string, 1)

	// Mock expectations
	repo.EXPECT().
		CreateUpload(mock.Anything, mock.AnythingOfType("string"), taxbit.SchemaExtended).
		Return(nil).
		Once()

	csvProcessor.EXPECT().
		ProcessStream(mock.Anything, mock.AnythingOfType("string"), taxbit.SchemaExtended, mock.Anything).
		RunAndReturn(func(ctx context.Context, uploadID string, schema taxbit.Schema, r io.Reader) error {
			done <- uploadID
			return nil
		}).
		Once()

	// Execute
	uploadID, err := svc.UploadExport(ctx, taxbit.SchemaExtended, reader)

	// Assert
	require.NoError(t, err)
	assert.Len(t, uploadID, 36)

	select {
	case got := <-done:
		assert.Equal(t, uploadID, got)
	case <-time.After(time.Second):
		t.Fatal("ProcessStream was not called")
	}
}

func TestUploadExport_InvalidSchema(t *testing.T) {
	svc, _, _ := newTestExportService(t)

	uploadID, err := svc.UploadExport(context.Background(), taxbit.Schema(7), io.NopCloser(strings.NewReader("")))

	assert.ErrorIs(t, err, domain.ErrInvalidSchema)
	assert.Empty(t, uploadID)
}

func TestUploadExport_CreateUploadError(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)
	expectedError := errors.New("database error")

	// Mock expectations
	repo.EXPECT().
		CreateUpload(mock.Anything, mock.AnythingOfType("string"), taxbit.SchemaBasic).
		Return(expectedError).
		Once()

	// Execute
	uploadID, err := svc.UploadExport(context.Background(), taxbit.SchemaBasic, io.NopCloser(strings.NewReader("")))

	// Assert
	assert.Equal(t, expectedError, err)
	assert.Empty(t, uploadID)
}

func TestGetUploadStatus_Success(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)
	expectedUpload := completedUpload("test-upload-123", taxbit.SchemaExtended, 100)

	// Mock expectations
	repo.EXPECT().
		GetUpload(mock.Anything, "test-upload-123").
		Return(expectedUpload, nil).
		Once()

	// Execute
	upload, err := svc.GetUploadStatus(context.Background(), "test-upload-123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expectedUpload, upload)
	assert.True(t, upload.Ready())
}

func TestGetUploadStatus_Error(t *testing.T) {
	svc, repo, _ := newTestExportService(t)

	repo.EXPECT().
		GetUpload(mock.Anything, "missing").
		Return(nil, domain.ErrUploadNotFound).
		Once()

	upload, err := svc.GetUploadStatus(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
	assert.Nil(t, upload)
}

func TestGetRecords_SortedFilteredAndPaginated(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)
	uploadID := "test-upload-123"

	records := []domain.StoredRecord{
		stored(2, 3000, taxbit.TransactionTypeSale, "", "BTC"),
		stored(3, 1000, taxbit.TransactionTypeBuy, "BTC", ""),
		stored(4, 2000, taxbit.TransactionTypeBuy, "ETH", ""),
		stored(5, 1000, taxbit.TransactionTypeIncome, "btc", ""),
	}

	// Mock expectations
	repo.EXPECT().
		ListRecords(mock.Anything, uploadID).
		Return(records, nil).
		Twice()

	// Execute
	items, total, err := svc.GetRecords(context.Background(), uploadID, 1, 10, "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, []int{3, 5, 4, 2}, lineNumbers(items))

	// Execute
	items, total, err = svc.GetRecords(context.Background(), uploadID, 2, 2, "BTC")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{2}, lineNumbers(items))
}

func TestGetRecords_InvalidPage(t *testing.T) {
	svc, _, _ := newTestExportService(t)

	_, _, err := svc.GetRecords(context.Background(), "u", 0, 10, "")
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)

	_, _, err = svc.GetRecords(context.Background(), "u", 1, maxPerPage+1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)

	_, _, err = svc.GetRecords(context.Background(), "u", 100000000000000001, 100, "")
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)
}

func TestGetRejectedRows_HugePage(t *testing.T) {
	svc, _, _ := newTestExportService(t)

	// rejected before reaching the repository
	_, _, err := svc.GetRejectedRows(context.Background(), "u", math.MaxInt, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)
	assert.True(t, IsClientError(err))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
	assert.Equal(t, []int{5}, paginate(items, 3, 2))
	assert.Empty(t, paginate(items, 4, 2))
	assert.NotNil(t, paginate(items, 6, 1))
	assert.Empty(t, paginate(items, math.MaxInt/100, 100))
}

func TestGetAssets(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)

	invalid := stored(6, 1, taxbit.TransactionTypeInvalid, "", "")

	// Mock expectations
	repo.EXPECT().
		ListRecords(mock.Anything, "u").
		Return([]domain.StoredRecord{
			stored(2, 1, taxbit.TransactionTypeBuy, "ETH", "USD"),
			stored(3, 2, taxbit.TransactionTypeSale, "USD", "BTC"),
			stored(4, 3, taxbit.TransactionTypeIncome, "BTC", ""),
			stored(5, 4, taxbit.TransactionTypeBuy, "BTC", "USD"),
			invalid,
		}, nil).
		Once()

	// Execute
	assets, err := svc.GetAssets(context.Background(), "u")

	// Assert
	require.NoError(t, err)
	require.Len(t, assets, 3)

	assert.Equal(t, "BTC", assets[0].Asset)
	assert.Equal(t, 3, assets[0].RecordCount)
	assert.Equal(t, map[string]int{"Sale": 1, "Income": 1, "Buy": 1}, assets[0].Types)

	assert.Equal(t, "ETH", assets[1].Asset)
	assert.Equal(t, taxbit.NoAsset, assets[2].Asset)
}

func TestGetRejectedRows(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)
	expected := []domain.RejectedRow{{LineNumber: 4, Column: taxbit.ColumnDate, Value: "x", Reason: "bad"}}

	// Mock expectations
	repo.EXPECT().
		GetRejectedRows(mock.Anything, "u", 2, 5).
		Return(expected, 6, nil).
		Once()

	// Execute
	rows, total, err := svc.GetRejectedRows(context.Background(), "u", 2, 5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, rows)
	assert.Equal(t, 6, total)
}

func TestExportCSV_RendersAndCaches(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)
	uploadID := "test-upload-123"

	dup := stored(4, 1000, taxbit.TransactionTypeBuy, "BTC", "")
	records := []domain.StoredRecord{
		stored(2, 2000, taxbit.TransactionTypeIncome, "ETH", ""),
		dup,
		stored(3, 1000, taxbit.TransactionTypeBuy, "BTC", ""),
	}

	// Mock expectations
	repo.EXPECT().
		GetUpload(mock.Anything, uploadID).
		Return(completedUpload(uploadID, taxbit.SchemaExtended, 3), nil).
		Twice()
	repo.EXPECT().
		ListRecords(mock.Anything, uploadID).
		Return(records, nil).
		Once()

	// Execute
	out, err := svc.ExportCSV(context.Background(), uploadID, 0)

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, exportHeader, lines[0])
	assert.Equal(t, "1970-01-01T00:00:01.000Z,Buy,1,BTC,,,,,,BinanceUS,FALSE,", lines[1])
	assert.Equal(t, "1970-01-01T00:00:02.000Z,Income,1,ETH,,,,,,BinanceUS,FALSE,", lines[2])

	// second call is served from cache
	again, err := svc.ExportCSV(context.Background(), uploadID, taxbit.SchemaExtended)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestExportCSV_BasicSkipsInvalid(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)

	// Mock expectations
	repo.EXPECT().
		GetUpload(mock.Anything, "u").
		Return(completedUpload("u", taxbit.SchemaExtended, 2), nil).
		Once()
	repo.EXPECT().
		ListRecords(mock.Anything, "u").
		Return([]domain.StoredRecord{
			stored(2, 1000, taxbit.TransactionTypeBuy, "BTC", ""),
			stored(3, 2000, taxbit.TransactionTypeInvalid, "", ""),
		}, nil).
		Once()

	// Execute
	out, err := svc.ExportCSV(context.Background(), "u", taxbit.SchemaBasic)

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1970-01-01T00:00:01.000Z,Buy,1,BTC,,,,,,BinanceUS,false,", lines[1])
}

func TestExportCSV_NotReady(t *testing.T) {
	svc, repo, _ := newTestExportService(t)

	processing := completedUpload("u", taxbit.SchemaExtended, 5)
	processing.Status = domain.UploadStatusProcessing

	pending := completedUpload("p", taxbit.SchemaExtended, 5)
	pending.ProcessedRows = 3

	failed := completedUpload("f", taxbit.SchemaExtended, 0)
	failed.Status = domain.UploadStatusFailed

	repo.EXPECT().GetUpload(mock.Anything, "u").Return(processing, nil).Once()
	repo.EXPECT().GetUpload(mock.Anything, "p").Return(pending, nil).Once()
	repo.EXPECT().GetUpload(mock.Anything, "f").Return(failed, nil).Once()

	_, err := svc.ExportCSV(context.Background(), "u", 0)
	assert.ErrorIs(t, err, domain.ErrUploadNotReady)

	_, err = svc.ExportCSV(context.Background(), "p", 0)
	assert.ErrorIs(t, err, domain.ErrUploadNotReady)

	_, err = svc.ExportCSV(context.Background(), "f", 0)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestInvalidate(t *testing.T) {
	// Setup
	svc, repo, _ := newTestExportService(t)

	// Mock expectations
	repo.EXPECT().
		GetUpload(mock.Anything, "u").
		Return(completedUpload("u", taxbit.SchemaBasic, 0), nil).
		Twice()
	repo.EXPECT().
		ListRecords(mock.Anything, "u").
		Return([]domain.StoredRecord{}, nil).
		Twice()

	// Execute
	_, err := svc.ExportCSV(context.Background(), "u", 0)
	require.NoError(t, err)

	svc.Invalidate("u")

	out, err := svc.ExportCSV(context.Background(), "u", 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, exportHeader+"\n", string(out))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(validatePage(0, 1)))
	assert.True(t, IsClientError(domain.ErrInvalidSchema))
	assert.False(t, IsClientError(domain.ErrUploadNotFound))
	assert.False(t, IsClientError(errors.New("boom")))
}

func lineNumbers(items []domain.StoredRecord) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.LineNumber
	}
	return out
}
