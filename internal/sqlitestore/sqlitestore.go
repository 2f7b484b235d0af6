// Package sqlitestore implements the ledger storage contract on SQLite.
// Uniqueness of record fingerprints and document content hashes is enforced
// by the schema, so concurrent inserts of the same key resolve to exactly
// one winner and a constraint violation for everyone else.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"ekaraca/vakif-ledger/internal/ledger"
	"ekaraca/vakif-ledger/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('gelir', 'gider', 'bağış', 'harcama')),
	amount TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT 'Manual',
	fingerprint TEXT UNIQUE NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS source_documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	filename TEXT NOT NULL,
	content_hash TEXT UNIQUE NOT NULL,
	byte_size INTEGER DEFAULT 0,
	records_count INTEGER DEFAULT 0,
	uploaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ledger_date ON ledger_records(date);
CREATE INDEX IF NOT EXISTS idx_ledger_type ON ledger_records(type);
CREATE INDEX IF NOT EXISTS idx_ledger_category ON ledger_records(category);
CREATE INDEX IF NOT EXISTS idx_ledger_fingerprint ON ledger_records(fingerprint);
CREATE INDEX IF NOT EXISTS idx_documents_hash ON source_documents(content_hash);
`

// Store is a SQLite-backed implementation of ledger.Store.
type Store struct {
	db *sql.DB
}

var _ ledger.Store = (*Store)(nil)

// Open opens (creating if necessary) the SQLite database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// HealthCheck performs a simple health check on the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InsertDocument registers a source document, relying on the content_hash
// uniqueness constraint for document-level dedup.
func (s *Store) InsertDocument(ctx context.Context, doc *models.SourceDocument) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO source_documents (filename, content_hash, byte_size) VALUES (?, ?, ?)`,
		doc.Filename, doc.ContentHash, doc.ByteSize,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.ErrDuplicateDocument
		}
		return fmt.Errorf("failed to insert source document: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read document id: %w", err)
	}
	doc.ID = id
	return nil
}

// InsertRecord appends a ledger record, relying on the fingerprint
// uniqueness constraint for record-level dedup.
func (s *Store) InsertRecord(ctx context.Context, rec *models.LedgerRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_records (date, type, amount, description, category, source, fingerprint)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Date, string(rec.Kind), rec.Amount.String(), rec.Description,
		rec.Category, rec.Source, rec.Fingerprint,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.ErrDuplicateRecord
		}
		return fmt.Errorf("failed to insert ledger record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read record id: %w", err)
	}
	rec.ID = id
	return nil
}

// SetDocumentRecordCount stores the number of records an ingestion run
// inserted for the document.
func (s *Store) SetDocumentRecordCount(ctx context.Context, docID int64, count int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE source_documents SET records_count = ? WHERE id = ?`, count, docID)
	if err != nil {
		return fmt.Errorf("failed to update record count: %w", err)
	}
	return nil
}

// ListRecords returns the full ledger ordered by date desc, id desc.
func (s *Store) ListRecords(ctx context.Context) ([]models.LedgerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, type, amount, description, category, source, fingerprint, created_at
		 FROM ledger_records ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger records: %w", err)
	}
	defer rows.Close()

	var records []models.LedgerRecord
	for rows.Next() {
		var rec models.LedgerRecord
		var kind, amount, createdAt string

		if err := rows.Scan(&rec.ID, &rec.Date, &kind, &amount, &rec.Description,
			&rec.Category, &rec.Source, &rec.Fingerprint, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger record: %w", err)
		}

		rec.Kind = models.RecordKind(kind)
		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
		}
		rec.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger records: %w", err)
	}
	return records, nil
}

// ListDocuments returns all ingested documents, most recent first.
func (s *Store) ListDocuments(ctx context.Context) ([]models.SourceDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, content_hash, byte_size, records_count, uploaded_at
		 FROM source_documents ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query source documents: %w", err)
	}
	defer rows.Close()

	var docs []models.SourceDocument
	for rows.Next() {
		var doc models.SourceDocument
		var uploadedAt string

		if err := rows.Scan(&doc.ID, &doc.Filename, &doc.ContentHash,
			&doc.ByteSize, &doc.RecordCount, &uploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source document: %w", err)
		}

		doc.UploadedAt, err = parseTime(uploadedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse uploaded_at: %w", err)
		}

		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source documents: %w", err)
	}
	return docs, nil
}

// RemoveDuplicateRecords keeps the lowest-id record per fingerprint group
// and deletes the rest. A repair tool: with the fingerprint constraint in
// place it should always report zero.
func (s *Store) RemoveDuplicateRecords(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM ledger_records
		WHERE id NOT IN (
			SELECT MIN(id)
			FROM ledger_records
			GROUP BY fingerprint
		)`)
	if err != nil {
		return 0, fmt.Errorf("failed to remove duplicate records: %w", err)
	}
	return res.RowsAffected()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// parseTime handles the timestamp formats SQLite emits for DATETIME columns.
func parseTime(value string) (time.Time, error) {
	layouts := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
