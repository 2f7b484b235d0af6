// Package dateutils provides the date conversions used by the statement
// pipeline and the read-side aggregations.
package dateutils

import (
	"fmt"
	"time"
)

// Date format constants used throughout the application
const (
	LayoutISO       = "2006-01-02"
	LayoutStatement = "2006.01.02" // settlement dates as printed on statements
	LayoutMonthKey  = "2006-01"
)

// StatementToISO converts a statement-formatted date token (YYYY.MM.DD) to
// the ISO form stored in the ledger. The token is validated as a real
// calendar date, not just shape-checked.
func StatementToISO(token string) (string, error) {
	t, err := time.Parse(LayoutStatement, token)
	if err != nil {
		return "", fmt.Errorf("unable to parse statement date %q: %w", token, err)
	}
	return t.Format(LayoutISO), nil
}

// MonthKey reduces an ISO date to its YYYY-MM bucket for monthly aggregation.
func MonthKey(isoDate string) (string, error) {
	t, err := time.Parse(LayoutISO, isoDate)
	if err != nil {
		return "", fmt.Errorf("unable to parse ISO date %q: %w", isoDate, err)
	}
	return t.Format(LayoutMonthKey), nil
}
