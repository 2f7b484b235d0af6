package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"ekaraca/vakif-ledger/internal/models"
)

// Fingerprint computes the deterministic dedup key of a record: a SHA-256
// over the pipe-joined tuple of its stable fields, truncated to 16 hex
// characters. The amount is fixed to 8 decimal places and the description is
// trimmed, so formatting noise never distinguishes otherwise equal records.
// Storage-assigned ids and timestamps never participate.
func Fingerprint(r models.LedgerRecord) string {
	tuple := strings.Join([]string{
		r.Date,
		string(r.Kind),
		r.Amount.StringFixed(8),
		strings.TrimSpace(r.Description),
		r.Category,
		r.Source,
	}, "|")

	sum := sha256.Sum256([]byte(tuple))
	return hex.EncodeToString(sum[:8])
}

// DocumentHash computes the content hash of a source document's raw bytes,
// used for whole-document dedup.
func DocumentHash(sourceBytes []byte) string {
	sum := sha256.Sum256(sourceBytes)
	return hex.EncodeToString(sum[:])
}
