package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ekaraca/vakif-ledger/internal/models"
)

func sampleRecord() models.LedgerRecord {
	return models.LedgerRecord{
		Date:        "2025-07-01",
		Kind:        models.KindDebit,
		Amount:      decimal.RequireFromString("1234.56"),
		Description: "GARAN Hisse Alım (100 adet x 12,34 TL = 1.234,00 TL) [10:15:00]",
		Category:    "Hisse Senetleri",
		Source:      "Vakif Statement Import v1",
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	r := sampleRecord()
	fp := Fingerprint(r)

	assert.Len(t, fp, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", fp)
	assert.Equal(t, fp, Fingerprint(r))
}

func TestFingerprint_SensitiveToEveryTupleField(t *testing.T) {
	base := Fingerprint(sampleRecord())

	mutations := map[string]func(*models.LedgerRecord){
		"date":        func(r *models.LedgerRecord) { r.Date = "2025-07-02" },
		"kind":        func(r *models.LedgerRecord) { r.Kind = models.KindCredit },
		"amount":      func(r *models.LedgerRecord) { r.Amount = decimal.RequireFromString("1234.57") },
		"description": func(r *models.LedgerRecord) { r.Description += " Komisyon: 1,00 TL" },
		"category":    func(r *models.LedgerRecord) { r.Category = "Tahvil" },
		"source":      func(r *models.LedgerRecord) { r.Source = "Vakif Statement Import v2" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			r := sampleRecord()
			mutate(&r)
			assert.NotEqual(t, base, Fingerprint(r), "changing %s must change the fingerprint", field)
		})
	}
}

func TestFingerprint_IgnoresFieldsOutsideTuple(t *testing.T) {
	r := sampleRecord()
	base := Fingerprint(r)

	r.ID = 42
	assert.Equal(t, base, Fingerprint(r))
}

func TestFingerprint_TrimsDescription(t *testing.T) {
	r := sampleRecord()
	base := Fingerprint(r)

	r.Description = "  " + r.Description + "\t"
	assert.Equal(t, base, Fingerprint(r))
}

func TestFingerprint_AmountScaleInvariant(t *testing.T) {
	r := sampleRecord()
	base := Fingerprint(r)

	// 1234.56 and 1234.5600 are the same money; the 8-decimal fixed form
	// makes them the same fingerprint.
	r.Amount = decimal.RequireFromString("1234.5600")
	assert.Equal(t, base, Fingerprint(r))
}

func TestDocumentHash(t *testing.T) {
	h := DocumentHash([]byte("statement bytes"))
	assert.Len(t, h, 64)
	assert.Equal(t, h, DocumentHash([]byte("statement bytes")))
	assert.NotEqual(t, h, DocumentHash([]byte("other bytes")))
}
