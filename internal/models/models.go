// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind is the direction/category of a cash movement in the ledger.
// The values are the Turkish terms used by the source statements and are
// stored verbatim; they also participate in the record fingerprint.
type RecordKind string

const (
	KindCredit       RecordKind = "gelir"   // incoming money
	KindDebit        RecordKind = "gider"   // outgoing money
	KindDonation     RecordKind = "bağış"   // donation income
	KindDisbursement RecordKind = "harcama" // non-trade spending
)

// Valid reports whether k is one of the known record kinds.
func (k RecordKind) Valid() bool {
	switch k {
	case KindCredit, KindDebit, KindDonation, KindDisbursement:
		return true
	}
	return false
}

// IsIncome reports whether the kind counts toward total income.
func (k RecordKind) IsIncome() bool {
	return k == KindCredit || k == KindDonation
}

// IsExpense reports whether the kind counts toward total expense.
func (k RecordKind) IsExpense() bool {
	return k == KindDebit || k == KindDisbursement
}

// LedgerRecord is the unit of truth in the ledger. Records are append-only:
// they are created by ingestion and never mutated afterwards. The fingerprint
// is the logical primary key; the storage row id only orders insertions.
type LedgerRecord struct {
	ID          int64           `csv:"-"`
	Date        string          `csv:"Date"` // ISO date (YYYY-MM-DD), no time component
	Kind        RecordKind      `csv:"Type"`
	Amount      decimal.Decimal `csv:"Amount"` // non-negative magnitude; direction lives in Kind
	Description string          `csv:"Description"`
	Category    string          `csv:"Category"`
	Source      string          `csv:"Source"`
	Fingerprint string          `csv:"Fingerprint"` // 16 hex chars, unique across the ledger
	CreatedAt   time.Time       `csv:"-"`
}

/// SourceDocument is one ingested statement file. The content hash is unique:
// a byte-identical file is never ingested twice.
type SourceDocument struct {
	ID          int64
	Filename    string
	ContentHash string
	ByteSize    int64
	RecordCount int // records actually inserted for this document
	UploadedAt  time.Time
}

// Side is the buy or sell direction of a securities transaction, distinct
// from the credit/debit kind of the resulting ledger entry. The values are
// the literal side markers found in the statements.
type Side string

const (
	SideBuy  Side = "ALIS"
	SideSell Side = "SATIS"
)

// Label returns the human-readable Turkish label used in descriptions.
func (s Side) Label() string {
	if s == SideBuy {
		return "Alım"
	}
	return "Satış"
}

// ContextWindow is a bounded run of statement lines anchored on a transaction
// marker, believed to contain exactly one transaction. Windows are transient:
// the extractor consumes them and they are never persisted.
type ContextWindow struct {
	Lines []string
	Start int // index of the anchor line in the source line stream
}

// Anchor returns the anchor line of the window.
func (w ContextWindow) Anchor() string {
	if len(w.Lines) == 0 {
		return ""
	}
	return w.Lines[0]
}

// ExtractedTransaction is the intermediate result of field extraction over a
// context window, consumed by canonicalization.
type ExtractedTransaction struct {
	Date         string // ISO date
	Time         string // HH:MM:SS execution time
	Side         Side
	Symbol       string
	ShareCount   decimal.Decimal
	UnitPrice    decimal.Decimal
	GrossAmount  decimal.Decimal // settlement amount, absolute value
	SignNegative bool            // the settlement literal carried a leading '-'
	Commission   decimal.Decimal // Komisyon + BSMV, zero when absent
}
