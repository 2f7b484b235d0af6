// Package ledger maps extracted transactions into canonical ledger records
// and coordinates their deduplicated, append-only ingestion.
package ledger

import (
	"ekaraca/vakif-ledger/internal/models"
)

// Canonicalizer derives the stable ledger record shape from an extracted
// transaction. The output feeds the fingerprint, so every derivation here is
// deterministic.
type Canonicalizer struct {
	category string
	source   string
}

// NewCanonicalizer creates a Canonicalizer stamping records with the given
// category and source tags.
func NewCanonicalizer(category, source string) *Canonicalizer {
	return &Canonicalizer{category: category, source: source}
}

// Canonicalize maps a transaction to its ledger record. A buy, or a negative
// settlement amount, yields a debit: the sign independently signals an
// outflow even when the side keyword was misread, and when the two signals
// disagree the debit wins. The amount carries only the magnitude; direction
// lives in the kind.
func (c *Canonicalizer) Canonicalize(tx models.ExtractedTransaction) models.LedgerRecord {
	kind := models.KindCredit
	if tx.Side == models.SideBuy || tx.SignNegative {
		kind = models.KindDebit
	}

	return models.LedgerRecord{
		Date:        tx.Date,
		Kind:        kind,
		Amount:      tx.GrossAmount.Abs(),
		Description: models.TradeDescription(tx),
		Category:    c.category,
		Source:      c.source,
	}
}
