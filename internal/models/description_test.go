package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeDescription(t *testing.T) {
	tx := ExtractedTransaction{
		Date:        "2025-07-01",
		Time:        "10:15:00",
		Side:        SideBuy,
		Symbol:      "GARAN",
		ShareCount:  decimal.NewFromInt(1000),
		UnitPrice:   decimal.RequireFromString("12.34"),
		GrossAmount: decimal.RequireFromString("12340.00"),
	}

	assert.Equal(t,
		"GARAN Hisse Alım (1.000 adet x 12,34 TL = 12.340,00 TL) [10:15:00]",
		TradeDescription(tx))
}

func TestTradeDescription_Sell(t *testing.T) {
	tx := ExtractedTransaction{
		Time:        "14:02:11",
		Side:        SideSell,
		Symbol:      "THYAO",
		ShareCount:  decimal.NewFromInt(50),
		UnitPrice:   decimal.RequireFromString("310.50"),
		GrossAmount: decimal.RequireFromString("15525.00"),
	}

	assert.Equal(t,
		"THYAO Hisse Satış (50 adet x 310,50 TL = 15.525,00 TL) [14:02:11]",
		TradeDescription(tx))
}

func TestTradeDescription_WithCommission(t *testing.T) {
	tx := ExtractedTransaction{
		Time:       "10:15:00",
		Side:       SideBuy,
		Symbol:     "GARAN",
		ShareCount: decimal.NewFromInt(100),
		UnitPrice:  decimal.RequireFromString("12.34"),
		Commission: decimal.RequireFromString("4.25"),
	}

	assert.Equal(t,
		"GARAN Hisse Alım (100 adet x 12,34 TL = 1.234,00 TL) [10:15:00] Komisyon: 4,25 TL",
		TradeDescription(tx))
}

func TestParseTradeDetails_RoundTrip(t *testing.T) {
	tx := ExtractedTransaction{
		Time:       "10:15:00",
		Side:       SideBuy,
		Symbol:     "GARAN",
		ShareCount: decimal.NewFromInt(1000),
		UnitPrice:  decimal.RequireFromString("12.34"),
		Commission: decimal.RequireFromString("12.50"),
	}

	details, ok := ParseTradeDetails(TradeDescription(tx))
	require.True(t, ok)

	assert.Equal(t, "GARAN", details.Symbol)
	assert.Equal(t, SideBuy, details.Side)
	assert.True(t, details.ShareCount.Equal(tx.ShareCount), "share count: %s", details.ShareCount)
	assert.True(t, details.UnitPrice.Equal(tx.UnitPrice), "unit price: %s", details.UnitPrice)
	assert.True(t, details.Commission.Equal(tx.Commission), "commission: %s", details.Commission)
	assert.Equal(t, "10:15:00", details.Time)
}

func TestParseTradeDetails_NonTrade(t *testing.T) {
	for _, desc := range []string{
		"Manual entry: kira ödemesi",
		"Bağış - eğitim vakfı",
		"",
	} {
		_, ok := ParseTradeDetails(desc)
		assert.False(t, ok, "description %q should not parse as a trade", desc)
	}
}

func TestRecordKind(t *testing.T) {
	assert.True(t, KindCredit.IsIncome())
	assert.True(t, KindDonation.IsIncome())
	assert.True(t, KindDebit.IsExpense())
	assert.True(t, KindDisbursement.IsExpense())

	assert.True(t, KindCredit.Valid())
	assert.False(t, RecordKind("transfer").Valid())
}
