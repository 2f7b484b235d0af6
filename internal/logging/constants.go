package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile        = "file_path"
	FieldDocument    = "document"
	FieldFingerprint = "fingerprint"
	FieldContentHash = "content_hash"
	FieldRunID       = "run_id"
	FieldLine        = "line"
	FieldReason      = "reason"
	FieldSymbol      = "symbol"
	FieldCount       = "count"
	FieldAccepted    = "accepted"
	FieldDuplicates  = "duplicates"
	FieldError       = "error"
	FieldDelimiter   = "delimiter"
	FieldOutputFile  = "output_file"
)
