package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"ekaraca/vakif-ledger/internal/dateutils"
	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/models"
	"ekaraca/vakif-ledger/internal/parsererror"
	"ekaraca/vakif-ledger/internal/trnum"
)

var (
	datePattern           = regexp.MustCompile(`\d{4}\.\d{2}\.\d{2}`)
	inlineAmountPattern   = regexp.MustCompile(`GZ:\s*(-?[\d.,]+)\s*TL`)
	continuationPattern   = regexp.MustCompile(`^(-?[\d.,]+)\s*TL`)
	positionPattern       = regexp.MustCompile(`(\d{2}:\d{2}:\d{2})\s+([A-Z]{4,6})\s+([\d.,]+)\s+ADET`)
	priceSidePattern      = regexp.MustCompile(`x([\d.,]+)\s+TL\s+(ALIS|SATIS)`)
	commissionPattern     = regexp.MustCompile(`Komisyon:\s*([\d.,]+)\s*TL`)
	transactionTaxPattern = regexp.MustCompile(`BSMV:\s*([\d.,]+)\s*TL`)
)

// Extractor applies a fixed sequence of field patterns to a context window
// and yields a structured transaction or a rejection. Every pass is a pure
// function of the window; there is no cross-window state, so windows can be
// extracted in any order or concurrently.
type Extractor struct {
	logger logging.Logger
}

// NewExtractor creates an Extractor with the provided logger.
func NewExtractor(logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{logger: logger}
}

// Extract runs the five extraction passes over the window in priority order:
// date, settlement amount, position (time/symbol/quantity), unit price with
// side, and optional commission/tax. A failed mandatory pass returns a
// RejectError naming the missing field; the caller skips the window and
// continues with the rest of the batch.
func (e *Extractor) Extract(window models.ContextWindow) (models.ExtractedTransaction, error) {
	var tx models.ExtractedTransaction

	date, ok := e.extractDate(window)
	if !ok {
		return tx, e.reject(parsererror.MissingDate, window)
	}
	tx.Date = date

	gross, negative, ok := e.extractSettlement(window)
	if !ok {
		return tx, e.reject(parsererror.MissingAmount, window)
	}
	tx.GrossAmount = gross
	tx.SignNegative = negative

	execTime, symbol, count, ok := e.extractPosition(window)
	if !ok {
		return tx, e.reject(parsererror.MissingPosition, window)
	}
	tx.Time = execTime
	tx.Symbol = symbol
	tx.ShareCount = count

	price, side, ok := e.extractPriceSide(window)
	if !ok {
		return tx, e.reject(parsererror.MissingPrice, window)
	}
	tx.UnitPrice = price
	tx.Side = side

	tx.Commission = e.extractCommission(window)

	return tx, nil
}

// extractDate requires a settlement date token on the first line of the
// window and converts it to ISO form.
func (e *Extractor) extractDate(window models.ContextWindow) (string, bool) {
	token := datePattern.FindString(window.Anchor())
	if token == "" {
		return "", false
	}

	iso, err := dateutils.StatementToISO(token)
	if err != nil {
		e.logger.WithError(err).Debug("Settlement date token is not a valid date",
			logging.Field{Key: logging.FieldLine, Value: window.Anchor()})
		return "", false
	}
	return iso, true
}

// extractSettlement finds the amount bound to the anchor marker: inline after
// "GZ:" on any line, or on the line immediately following a line that ends
// with the bare marker. The absolute value is the gross amount; the sign is
// remembered separately.
func (e *Extractor) extractSettlement(window models.ContextWindow) (decimal.Decimal, bool, bool) {
	for i, line := range window.Lines {
		var literal string

		if m := inlineAmountPattern.FindStringSubmatch(line); m != nil {
			literal = m[1]
		} else if strings.HasSuffix(line, "GZ:") && i+1 < len(window.Lines) {
			if m := continuationPattern.FindStringSubmatch(window.Lines[i+1]); m != nil {
				literal = m[1]
			}
		}

		if literal == "" {
			continue
		}

		amount, err := trnum.Parse(literal)
		if err != nil {
			e.logger.WithError(err).Debug("Unparsable settlement literal, continuing scan",
				logging.Field{Key: logging.FieldLine, Value: line})
			continue
		}
		return amount.Abs(), amount.IsNegative(), true
	}

	return decimal.Zero, false, false
}

// extractPosition scans every line for the execution time, symbol and share
// count pattern. The first match in the window wins.
func (e *Extractor) extractPosition(window models.ContextWindow) (string, string, decimal.Decimal, bool) {
	for _, line := range window.Lines {
		m := positionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		count, err := trnum.Parse(m[3])
		if err != nil {
			e.logger.WithError(err).Debug("Unparsable share count, continuing scan",
				logging.Field{Key: logging.FieldLine, Value: line})
			continue
		}
		return m[1], m[2], count, true
	}
	return "", "", decimal.Zero, false
}

// extractPriceSide scans every line for the unit price and side keyword.
// The first match in the window wins.
func (e *Extractor) extractPriceSide(window models.ContextWindow) (decimal.Decimal, models.Side, bool) {
	for _, line := range window.Lines {
		m := priceSidePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		price, err := trnum.Parse(m[1])
		if err != nil {
			e.logger.WithError(err).Debug("Unparsable unit price, continuing scan",
				logging.Field{Key: logging.FieldLine, Value: line})
			continue
		}
		return price, models.Side(m[2]), true
	}
	return decimal.Zero, "", false
}

// extractCommission sums the optional commission and transaction tax
// literals. Absence is not an error; the total defaults to zero.
func (e *Extractor) extractCommission(window models.ContextWindow) decimal.Decimal {
	total := decimal.Zero
	for _, pattern := range []*regexp.Regexp{commissionPattern, transactionTaxPattern} {
		for _, line := range window.Lines {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if v, err := trnum.Parse(m[1]); err == nil {
				total = total.Add(v)
			}
			break
		}
	}
	return total
}

func (e *Extractor) reject(reason parsererror.RejectReason, window models.ContextWindow) error {
	e.logger.Debug("Context window rejected",
		logging.Field{Key: logging.FieldReason, Value: string(reason)},
		logging.Field{Key: logging.FieldLine, Value: window.Anchor()})
	return &parsererror.RejectError{Reason: reason, Anchor: window.Anchor()}
}
