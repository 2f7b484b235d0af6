package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/models"
	"ekaraca/vakif-ledger/internal/parsererror"
)

func newTestExtractor() *Extractor {
	return NewExtractor(&logging.MockLogger{})
}

func window(lines ...string) models.ContextWindow {
	return models.ContextWindow{Lines: lines}
}

func TestExtract_FullWindow(t *testing.T) {
	w := window(
		"2025.07.01 valörlü GZ:",
		"GZ: -1.234,56 TL",
		"10:15:00 GARAN 100 ADET",
		"x12,34 TL ALIS",
	)

	tx, err := newTestExtractor().Extract(w)
	require.NoError(t, err)

	assert.Equal(t, "2025-07-01", tx.Date)
	assert.Equal(t, "10:15:00", tx.Time)
	assert.Equal(t, "GARAN", tx.Symbol)
	assert.Equal(t, models.SideBuy, tx.Side)
	assert.True(t, tx.GrossAmount.Equal(decimal.RequireFromString("1234.56")), "gross: %s", tx.GrossAmount)
	assert.True(t, tx.SignNegative)
	assert.True(t, tx.ShareCount.Equal(decimal.NewFromInt(100)), "count: %s", tx.ShareCount)
	assert.True(t, tx.UnitPrice.Equal(decimal.RequireFromString("12.34")), "price: %s", tx.UnitPrice)
	assert.True(t, tx.Commission.IsZero())
}

func TestExtract_InlineSettlementAmount(t *testing.T) {
	w := window(
		"2025.07.02 valörlü GZ: 2.500,00 TL",
		"11:30:00 THYAO 10 ADET",
		"x250,00 TL SATIS",
	)

	tx, err := newTestExtractor().Extract(w)
	require.NoError(t, err)

	assert.Equal(t, "2025-07-02", tx.Date)
	assert.Equal(t, models.SideSell, tx.Side)
	assert.True(t, tx.GrossAmount.Equal(decimal.RequireFromString("2500.00")))
	assert.False(t, tx.SignNegative)
}

func TestExtract_CommissionAndTax(t *testing.T) {
	w := window(
		"2025.07.01 valörlü GZ: -1.250,00 TL",
		"10:15:00 GARAN 100 ADET",
		"Komisyon: 3,20 TL",
		"BSMV: 0,16 TL",
		"x12,34 TL ALIS",
	)

	tx, err := newTestExtractor().Extract(w)
	require.NoError(t, err)
	assert.True(t, tx.Commission.Equal(decimal.RequireFromString("3.36")), "commission: %s", tx.Commission)
}

func TestExtract_GroupedShareCount(t *testing.T) {
	w := window(
		"2025.07.01 valörlü GZ: -12.340,00 TL",
		"10:15:00 GARAN 1.000 ADET",
		"x12,34 TL ALIS",
	)

	tx, err := newTestExtractor().Extract(w)
	require.NoError(t, err)
	assert.True(t, tx.ShareCount.Equal(decimal.NewFromInt(1000)), "count: %s", tx.ShareCount)
}

func TestExtract_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		window models.ContextWindow
		reason parsererror.RejectReason
	}{
		{
			name: "date missing from anchor line",
			window: window(
				"valörlü GZ: -1.234,56 TL",
				"10:15:00 GARAN 100 ADET",
				"x12,34 TL ALIS",
			),
			reason: parsererror.MissingDate,
		},
		{
			name: "date token is not a calendar date",
			window: window(
				"2025.13.45 valörlü GZ: -1.234,56 TL",
				"10:15:00 GARAN 100 ADET",
				"x12,34 TL ALIS",
			),
			reason: parsererror.MissingDate,
		},
		{
			name: "settlement amount missing",
			window: window(
				"2025.07.01 valörlü GZ:",
				"10:15:00 GARAN 100 ADET",
				"x12,34 TL ALIS",
			),
			reason: parsererror.MissingAmount,
		},
		{
			name: "position line missing",
			window: window(
				"2025.07.01 valörlü GZ: -1.234,56 TL",
				"x12,34 TL ALIS",
			),
			reason: parsererror.MissingPosition,
		},
		{
			name: "price and side missing",
			window: window(
				"2025.07.01 valörlü GZ: -1.234,56 TL",
				"10:15:00 GARAN 100 ADET",
			),
			reason: parsererror.MissingPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestExtractor().Extract(tt.window)
			require.Error(t, err)

			var reject *parsererror.RejectError
			require.ErrorAs(t, err, &reject)
			assert.Equal(t, tt.reason, reject.Reason)
		})
	}
}

func TestExtract_FirstPositionMatchWins(t *testing.T) {
	w := window(
		"2025.07.01 valörlü GZ: -1.234,56 TL",
		"10:15:00 GARAN 100 ADET",
		"10:16:00 AKBNK 200 ADET",
		"x12,34 TL ALIS",
	)

	tx, err := newTestExtractor().Extract(w)
	require.NoError(t, err)
	assert.Equal(t, "GARAN", tx.Symbol)
	assert.True(t, tx.ShareCount.Equal(decimal.NewFromInt(100)))
}
