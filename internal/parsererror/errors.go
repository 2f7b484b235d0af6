// Package parsererror defines the typed errors produced by the statement
// parsing pipeline.
package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RejectReason identifies which extraction pass failed for a context window.
type RejectReason string

const (
	MissingDate     RejectReason = "missing_date"
	MissingAmount   RejectReason = "missing_amount"
	MissingPosition RejectReason = "missing_position"
	MissingPrice    RejectReason = "missing_price"
)

// RejectError indicates that a context window does not contain a valid
// transaction. Rejects are terminal for the window only; callers skip the
// window and continue with the rest of the batch.
type RejectError struct {
	Reason RejectReason
	Anchor string // first line of the rejected window, for diagnostics
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("window rejected (%s) at anchor '%s'", e.Reason, e.Anchor)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
