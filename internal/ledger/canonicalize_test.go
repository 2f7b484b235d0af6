package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ekaraca/vakif-ledger/internal/models"
)

func testCanonicalizer() *Canonicalizer {
	return NewCanonicalizer("Hisse Senetleri", "Vakif Statement Import v1")
}

func buyTx() models.ExtractedTransaction {
	return models.ExtractedTransaction{
		Date:         "2025-07-01",
		Time:         "10:15:00",
		Side:         models.SideBuy,
		Symbol:       "GARAN",
		ShareCount:   decimal.NewFromInt(100),
		UnitPrice:    decimal.RequireFromString("12.34"),
		GrossAmount:  decimal.RequireFromString("1234.56"),
		SignNegative: true,
	}
}

func TestCanonicalize_Buy(t *testing.T) {
	rec := testCanonicalizer().Canonicalize(buyTx())

	assert.Equal(t, "2025-07-01", rec.Date)
	assert.Equal(t, models.KindDebit, rec.Kind)
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "GARAN Hisse Alım (100 adet x 12,34 TL = 1.234,00 TL) [10:15:00]", rec.Description)
	assert.Equal(t, "Hisse Senetleri", rec.Category)
	assert.Equal(t, "Vakif Statement Import v1", rec.Source)
}

func TestCanonicalize_Sell(t *testing.T) {
	tx := buyTx()
	tx.Side = models.SideSell
	tx.SignNegative = false

	rec := testCanonicalizer().Canonicalize(tx)
	assert.Equal(t, models.KindCredit, rec.Kind)
}

func TestCanonicalize_DirectionRule(t *testing.T) {
	tests := []struct {
		name         string
		side         models.Side
		signNegative bool
		expected     models.RecordKind
	}{
		{"buy positive", models.SideBuy, false, models.KindDebit},
		{"buy negative", models.SideBuy, true, models.KindDebit},
		{"sell positive", models.SideSell, false, models.KindCredit},
		// The two signals disagree here; the negative sign wins and the
		// record is a debit.
		{"sell negative", models.SideSell, true, models.KindDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := buyTx()
			tx.Side = tt.side
			tx.SignNegative = tt.signNegative

			rec := testCanonicalizer().Canonicalize(tx)
			assert.Equal(t, tt.expected, rec.Kind)
		})
	}
}

func TestCanonicalize_AmountIsMagnitudeOnly(t *testing.T) {
	tx := buyTx()
	tx.GrossAmount = decimal.RequireFromString("-500.00")

	rec := testCanonicalizer().Canonicalize(tx)
	assert.True(t, rec.Amount.IsPositive())
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("500.00")))
}
