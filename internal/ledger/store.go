package ledger

import (
	"context"
	"errors"

	"ekaraca/vakif-ledger/internal/models"
)

// Sentinel errors returned by Store implementations. Uniqueness conflicts
// surfaced by the storage layer are mapped to these before they reach the
// orchestrator, so backend adapters never re-derive dedup logic.
var (
	// ErrDuplicateDocument indicates a source document with the same content
	// hash has already been ingested.
	ErrDuplicateDocument = errors.New("source document already ingested")

	// ErrDuplicateRecord indicates a ledger record with the same fingerprint
	// already exists.
	ErrDuplicateRecord = errors.New("ledger record already exists")
)

// Store is the storage capability required by the ingestion core. Inserts
// must be atomic per key: the uniqueness guarantee has to live in the store
// (a constraint or equivalent), not in a caller-side check-then-insert.
type Store interface {
	// InsertDocument registers a source document, assigning its ID.
	// Returns ErrDuplicateDocument when the content hash is already known.
	InsertDocument(ctx context.Context, doc *models.SourceDocument) error

	// InsertRecord appends a ledger record, assigning its ID.
	// Returns ErrDuplicateRecord when the fingerprint is already present.
	InsertRecord(ctx context.Context, rec *models.LedgerRecord) error

	// SetDocumentRecordCount records how many ledger rows an ingestion run
	// actually inserted for the document.
	SetDocumentRecordCount(ctx context.Context, docID int64, count int) error

	// ListRecords returns the full ledger ordered by date desc, id desc.
	ListRecords(ctx context.Context) ([]models.LedgerRecord, error)

	// ListDocuments returns all ingested documents, most recent first.
	ListDocuments(ctx context.Context) ([]models.SourceDocument, error)

	// RemoveDuplicateRecords deletes all but the lowest-id record per
	// fingerprint group and reports how many rows were removed. With
	// insert-time uniqueness enforced this is a repair tool and should
	// find nothing.
	RemoveDuplicateRecords(ctx context.Context) (int64, error)
}
