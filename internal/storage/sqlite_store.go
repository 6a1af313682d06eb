package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/internal/taxbit"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore persists uploads and records in a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// pending migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Ingestion workers write concurrently; SQLite allows one writer.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) CreateUpload(ctx context.Context, uploadID string, schema taxbit.Schema) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO uploads (id, schema, status, created_at)
		VALUES (?, ?, ?, ?)`,
		uploadID, schema.String(), string(domain.UploadStatusProcessing), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	var (
		upload      domain.Upload
		schemaName  string
		status      string
		createdAt   int64
		completedAt sql.NullInt64
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, schema, status,
			(SELECT COUNT(*) FROM records WHERE records.upload_id = uploads.id),
			rejected_rows, total_rows, created_at, completed_at
		FROM uploads
		WHERE id = ?`, uploadID,
	).Scan(
		&upload.ID, &schemaName, &status,
		&upload.ProcessedRows, &upload.RejectedRows, &upload.TotalRows,
		&createdAt, &completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUploadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get upload: %w", err)
	}

	upload.Schema, err = taxbit.ParseSchema(schemaName)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", uploadID, err)
	}
	upload.Status = domain.UploadStatus(status)
	upload.CreatedAt = time.UnixMilli(createdAt)
	if completedAt.Valid {
		t := time.UnixMilli(completedAt.Int64)
		upload.CompletedAt = &t
	}

	return &upload, nil
}

func (s *SQLiteStore) UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus) error {
	var completedAt sql.NullInt64
	if status == domain.UploadStatusCompleted || status == domain.UploadStatusFailed {
		completedAt = sql.NullInt64{Int64: time.Now().UnixMilli(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE uploads SET status = ?, completed_at = ? WHERE id = ?`,
		string(status), completedAt, uploadID,
	)
	return checkAffected(res, err, "update upload status")
}

func (s *SQLiteStore) SetTotalRows(ctx context.Context, uploadID string, total int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE uploads SET total_rows = ? WHERE id = ?`, total, uploadID,
	)
	return checkAffected(res, err, "set total rows")
}

func (s *SQLiteStore) PurgeUploadsBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id FROM uploads WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to list expired uploads: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan upload id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expired uploads: %w", err)
	}

	for _, id := range ids {
		prefix := id + "-"
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM processed_events WHERE substr(event_id, 1, ?) = ?`, len(prefix), prefix,
		); err != nil {
			return nil, fmt.Errorf("failed to purge events of %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM uploads WHERE id = ?`, id); err != nil {
			return nil, fmt.Errorf("failed to purge upload %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purge: %w", err)
	}

	return ids, nil
}

// AddRecord is an upsert keyed by line so a retried event does not fail.
// Processed rows are counted from this table, so a replaced line is not
// counted twice.
func (s *SQLiteStore) AddRecord(ctx context.Context, uploadID string, rec taxbit.Record, lineNumber int) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO records (
			upload_id, line_number, time_ms, type,
			received_quantity, received_currency, sent_quantity, sent_currency,
			fee_currency, fee_amount, market_value, source, internal_transfer, external_id
		)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		WHERE EXISTS (SELECT 1 FROM uploads WHERE id = ?)`,
		uploadID, lineNumber, rec.Time, rec.Type.String(),
		rec.ReceivedQuantity, rec.ReceivedCurrency, rec.SentQuantity, rec.SentCurrency,
		rec.FeeCurrency, rec.FeeAmount, rec.MarketValue, rec.Source, rec.InternalTransfer, rec.ExternalID,
		uploadID,
	)
	return checkAffected(res, err, "add record")
}

func (s *SQLiteStore) ListRecords(ctx context.Context, uploadID string) ([]domain.StoredRecord, error) {
	if err := s.ensureUpload(ctx, uploadID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT line_number, time_ms, type,
			received_quantity, received_currency, sent_quantity, sent_currency,
			fee_currency, fee_amount, market_value, source, internal_transfer, external_id
		FROM records
		WHERE upload_id = ?
		ORDER BY line_number`, uploadID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []domain.StoredRecord{}
	for rows.Next() {
		var (
			sr    domain.StoredRecord
			label string
		)
		err := rows.Scan(
			&sr.LineNumber, &sr.Time, &label,
			&sr.ReceivedQuantity, &sr.ReceivedCurrency, &sr.SentQuantity, &sr.SentCurrency,
			&sr.FeeCurrency, &sr.FeeAmount, &sr.MarketValue, &sr.Source, &sr.InternalTransfer, &sr.ExternalID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		sr.Type, err = taxbit.ParseTransactionType(label, taxbit.SchemaExtended)
		if err != nil {
			return nil, fmt.Errorf("record line %d: %w", sr.LineNumber, err)
		}

		records = append(records, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

func (s *SQLiteStore) AddRejectedRow(ctx context.Context, uploadID string, row domain.RejectedRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE uploads SET rejected_rows = rejected_rows + 1 WHERE id = ?`, uploadID,
	)
	if err := checkAffected(res, err, "add rejected row"); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rejected_rows (upload_id, line_number, column_name, value, reason)
		VALUES (?, ?, ?, ?, ?)`,
		uploadID, row.LineNumber, row.Column, row.Value, row.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to add rejected row: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetRejectedRows(ctx context.Context, uploadID string, page, perPage int) ([]domain.RejectedRow, int, error) {
	if err := s.ensureUpload(ctx, uploadID); err != nil {
		return nil, 0, err
	}

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rejected_rows WHERE upload_id = ?`, uploadID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count rejected rows: %w", err)
	}

	start, end := pageBounds(page, perPage, total)
	if start >= total {
		return []domain.RejectedRow{}, total, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT line_number, column_name, value, reason
		FROM rejected_rows
		WHERE upload_id = ?
		ORDER BY line_number
		LIMIT ? OFFSET ?`, uploadID, end-start, start,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get rejected rows: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RejectedRow, 0, end-start)
	for rows.Next() {
		var r domain.RejectedRow
		if err := rows.Scan(&r.LineNumber, &r.Column, &r.Value, &r.Reason); err != nil {
			return nil, 0, fmt.Errorf("failed to scan rejected row: %w", err)
		}
		out = append(out, r)
	}

	return out, total, rows.Err()
}

func (s *SQLiteStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_events WHERE event_id = ?)`, eventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event: %w", err)
	}
	return exists, nil
}

func (s *SQLiteStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO processed_events (event_id) VALUES (?)`, eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark event: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ensureUpload(ctx context.Context, uploadID string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM uploads WHERE id = ?)`, uploadID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check upload: %w", err)
	}
	if !exists {
		return domain.ErrUploadNotFound
	}
	return nil
}

func checkAffected(res sql.Result, err error, op string) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return domain.ErrUploadNotFound
	}
	return nil
}
