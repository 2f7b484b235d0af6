// Package trnum parses and formats Turkish-locale numeric literals, where '.'
// is the thousands separator and ',' is the decimal separator.
package trnum

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"ekaraca/vakif-ledger/internal/parsererror"
)

var errNoDigits = errors.New("no digits in literal")

// Parse converts a Turkish-formatted numeric literal into a decimal value.
// "1.234,56" parses to 1234.56; a leading '-' yields a negative value.
// The result is exact: no binary floating point is involved, so amounts
// round-trip through their textual form.
func Parse(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)

	negative := strings.HasPrefix(cleaned, "-")
	if negative {
		cleaned = strings.TrimPrefix(cleaned, "-")
	}

	if !containsDigit(cleaned) {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "trnum",
			Field:  "amount",
			Value:  text,
			Err:    errNoDigits,
		}
	}

	// Drop thousands separators, then switch the decimal separator.
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "trnum",
			Field:  "amount",
			Value:  text,
			Err:    err,
		}
	}

	if negative {
		d = d.Neg()
	}
	return d, nil
}

// Format renders a decimal in Turkish locale notation with '.' thousands
// grouping and ',' as the decimal separator. At least minFrac fractional
// digits are emitted; more are kept if the value carries them.
func Format(d decimal.Decimal, minFrac int32) string {
	frac := -d.Exponent()
	if frac < minFrac {
		frac = minFrac
	}

	s := d.StringFixed(frac)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
