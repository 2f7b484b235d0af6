// Package analytics derives read-side aggregates from the ledger: overall
// totals, per-symbol trade performance and monthly performance. Trade fields
// are recovered from record descriptions, so analytics needs no extra
// storage beyond the ledger itself.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"ekaraca/vakif-ledger/internal/dateutils"
	"ekaraca/vakif-ledger/internal/models"
)

var hundred = decimal.NewFromInt(100)

// SymbolSet reports whether a ticker code is known. A nil SymbolSet accepts
// every parsed ticker.
type SymbolSet interface {
	Known(code string) bool
}

// Summary holds whole-ledger totals. Income and expense are non-negative
// magnitudes; NetIncome is income minus expense and may be negative.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	RecordCount  int             `json:"recordCount"`
}

// StockPerformance aggregates realized results for one ticker symbol.
// RealizedPnL is sell volume minus buy volume; it only reflects true profit
// once the position is closed.
type StockPerformance struct {
	Symbol            string          `json:"symbol"`
	TotalBuy          decimal.Decimal `json:"totalBuy"`
	TotalSell         decimal.Decimal `json:"totalSell"`
	RealizedPnL       decimal.Decimal `json:"realizedPnL"`
	TotalCommission   decimal.Decimal `json:"totalCommission"`
	NetReturn         decimal.Decimal `json:"netReturn"`
	ReturnPercentage  decimal.Decimal `json:"returnPercentage"`
	TransactionCount  int             `json:"transactionCount"`
	AvgReturnPerTrade decimal.Decimal `json:"avgReturnPerTrade"`
}

// MonthlyPerformance aggregates trading activity per calendar month.
type MonthlyPerformance struct {
	Month            string          `json:"month"`
	TotalVolume      decimal.Decimal `json:"totalVolume"`
	RealizedPnL      decimal.Decimal `json:"realizedPnL"`
	CommissionPaid   decimal.Decimal `json:"commissionPaid"`
	NetReturn        decimal.Decimal `json:"netReturn"`
	TransactionCount int             `json:"transactionCount"`
	ReturnPercentage decimal.Decimal `json:"returnPercentage"`
}

// Summarize computes whole-ledger totals. Every record counts, trade or not.
func Summarize(records []models.LedgerRecord) Summary {
	s := Summary{RecordCount: len(records)}
	for _, rec := range records {
		switch {
		case rec.Kind.IsIncome():
			s.TotalIncome = s.TotalIncome.Add(rec.Amount)
		case rec.Kind.IsExpense():
			s.TotalExpense = s.TotalExpense.Add(rec.Amount)
		}
	}
	s.NetIncome = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// StockPerformances groups trade records by symbol and computes realized
// results per ticker, best net return first. Records whose description does
// not parse as a trade, or whose ticker is not in the known set, are skipped.
func StockPerformances(records []models.LedgerRecord, known SymbolSet) []StockPerformance {
	bySymbol := make(map[string]*StockPerformance)

	for _, rec := range records {
		details, ok := models.ParseTradeDetails(rec.Description)
		if !ok {
			continue
		}
		if known != nil && !known.Known(details.Symbol) {
			continue
		}

		perf, exists := bySymbol[details.Symbol]
		if !exists {
			perf = &StockPerformance{Symbol: details.Symbol}
			bySymbol[details.Symbol] = perf
		}

		perf.TransactionCount++
		perf.TotalCommission = perf.TotalCommission.Add(details.Commission)
		switch details.Side {
		case models.SideBuy:
			perf.TotalBuy = perf.TotalBuy.Add(rec.Amount)
		case models.SideSell:
			perf.TotalSell = perf.TotalSell.Add(rec.Amount)
		}
	}

	result := make([]StockPerformance, 0, len(bySymbol))
	for _, perf := range bySymbol {
		perf.RealizedPnL = perf.TotalSell.Sub(perf.TotalBuy)
		perf.NetReturn = perf.RealizedPnL.Sub(perf.TotalCommission)
		if perf.TotalBuy.IsPositive() {
			perf.ReturnPercentage = perf.RealizedPnL.Div(perf.TotalBuy).Mul(hundred)
		}
		if perf.TransactionCount > 0 {
			perf.AvgReturnPerTrade = perf.NetReturn.
				Div(decimal.NewFromInt(int64(perf.TransactionCount)))
		}
		result = append(result, *perf)
	}

	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].NetReturn.Cmp(result[j].NetReturn); cmp != 0 {
			return cmp > 0
		}
		return result[i].Symbol < result[j].Symbol
	})
	return result
}

// MonthlyPerformances buckets trade records by calendar month, oldest month
// first. Sells add to realized P&L, buys subtract; volume counts both sides.
func MonthlyPerformances(records []models.LedgerRecord, known SymbolSet) []MonthlyPerformance {
	byMonth := make(map[string]*MonthlyPerformance)

	for _, rec := range records {
		details, ok := models.ParseTradeDetails(rec.Description)
		if !ok {
			continue
		}
		if known != nil && !known.Known(details.Symbol) {
			continue
		}
		month, err := dateutils.MonthKey(rec.Date)
		if err != nil {
			continue
		}

		perf, exists := byMonth[month]
		if !exists {
			perf = &MonthlyPerformance{Month: month}
			byMonth[month] = perf
		}

		perf.TransactionCount++
		perf.TotalVolume = perf.TotalVolume.Add(rec.Amount)
		perf.CommissionPaid = perf.CommissionPaid.Add(details.Commission)
		if details.Side == models.SideSell {
			perf.RealizedPnL = perf.RealizedPnL.Add(rec.Amount)
		} else {
			perf.RealizedPnL = perf.RealizedPnL.Sub(rec.Amount)
		}
	}

	result := make([]MonthlyPerformance, 0, len(byMonth))
	for _, perf := range byMonth {
		perf.NetReturn = perf.RealizedPnL.Sub(perf.CommissionPaid)
		if perf.TotalVolume.IsPositive() {
			perf.ReturnPercentage = perf.NetReturn.Div(perf.TotalVolume).Mul(hundred)
		}
		result = append(result, *perf)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}
