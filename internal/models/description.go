package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"ekaraca/vakif-ledger/internal/trnum"
)

// The description of a trade record doubles as a wire format: the analytics
// layer re-derives symbol, side, quantity, price and commission from it.
// Field order and separators must stay stable across versions.
var (
	descSymbolPattern     = regexp.MustCompile(`^([A-Z]{4,6})\s+Hisse`)
	descCountPattern      = regexp.MustCompile(`\((\d{1,3}(?:\.\d{3})*(?:,\d+)?)\s+adet`)
	descPricePattern      = regexp.MustCompile(`x\s*([\d,.]+)\s*TL`)
	descCommissionPattern = regexp.MustCompile(`Komisyon:\s*([\d,.]+)\s*TL`)
	descTimePattern       = regexp.MustCompile(`\[(\d{2}:\d{2}:\d{2})\]`)
)

// TradeDescription renders the canonical description for an extracted trade:
//
//	GARAN Hisse Alım (1.000 adet x 12,34 TL = 12.340,00 TL) [10:15:00]
//
// with a trailing " Komisyon: X TL" segment when a commission was charged.
// The gross shown is quantity times unit price, which can differ from the
// settled amount when fees are folded into the settlement.
func TradeDescription(tx ExtractedTransaction) string {
	computed := tx.ShareCount.Mul(tx.UnitPrice)

	desc := fmt.Sprintf("%s Hisse %s (%s adet x %s TL = %s TL) [%s]",
		tx.Symbol,
		tx.Side.Label(),
		trnum.Format(tx.ShareCount, 0),
		trnum.Format(tx.UnitPrice, 2),
		trnum.Format(computed, 2),
		tx.Time,
	)

	if tx.Commission.IsPositive() {
		desc += fmt.Sprintf(" Komisyon: %s TL", trnum.Format(tx.Commission, 2))
	}

	return desc
}

// TradeDetails holds the fields re-derived from a trade description.
type TradeDetails struct {
	Symbol     string
	Side       Side
	ShareCount decimal.Decimal
	UnitPrice  decimal.Decimal
	Commission decimal.Decimal
	Time       string
}

// ParseTradeDetails recovers trade fields from a record description. It
// returns false when the description is not a trade record (manual entries,
// donations), in which case the record still counts toward totals but not
// toward per-symbol analytics.
func ParseTradeDetails(description string) (TradeDetails, bool) {
	var details TradeDetails

	m := descSymbolPattern.FindStringSubmatch(description)
	if m == nil {
		return details, false
	}
	details.Symbol = m[1]

	switch {
	case strings.Contains(description, "Alım"):
		details.Side = SideBuy
	case strings.Contains(description, "Satış"):
		details.Side = SideSell
	default:
		return details, false
	}

	if m := descCountPattern.FindStringSubmatch(description); m != nil {
		if count, err := trnum.Parse(m[1]); err == nil {
			details.ShareCount = count
		}
	}

	if m := descPricePattern.FindStringSubmatch(description); m != nil {
		if price, err := trnum.Parse(m[1]); err == nil {
			details.UnitPrice = price
		}
	}

	if m := descCommissionPattern.FindStringSubmatch(description); m != nil {
		if commission, err := trnum.Parse(m[1]); err == nil {
			details.Commission = commission
		}
	}

	if m := descTimePattern.FindStringSubmatch(description); m != nil {
		details.Time = m[1]
	}

	return details, true
}
