package csvexport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/models"
)

func sampleRecords() []models.LedgerRecord {
	return []models.LedgerRecord{
		{
			Date:        "2025-07-02",
			Kind:        models.KindCredit,
			Amount:      decimal.RequireFromString("1250"),
			Description: "GARAN Hisse Satış (100 adet x 12,50 TL = 1.250,00 TL) [11:30:00]",
			Category:    "Hisse Senetleri",
			Source:      "Vakif Statement Import v1",
			Fingerprint: "aaaaaaaaaaaaaaaa",
		},
		{
			Date:        "2025-07-01",
			Kind:        models.KindDebit,
			Amount:      decimal.RequireFromString("1234.00"),
			Description: "GARAN Hisse Alım (100 adet x 12,34 TL = 1.234,00 TL) [10:15:00]",
			Category:    "Hisse Senetleri",
			Source:      "Vakif Statement Import v1",
			Fingerprint: "bbbbbbbbbbbbbbbb",
		},
	}
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(sampleRecords(), &buf, ','))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus two records")
	assert.Equal(t, "Date,Type,Amount,Description,Category,Source,Fingerprint", lines[0])
	assert.Contains(t, lines[1], "2025-07-02,gelir,1250.00")
	assert.Contains(t, lines[2], "2025-07-01,gider,1234.00")
}

func TestWriteRecordsSemicolonDelimiter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(sampleRecords(), &buf, ';'))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Date;Type;Amount;Description;Category;Source;Fingerprint", lines[0])
}

func TestWriteRecordsNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteRecords(nil, &buf, ','))
}

func TestWriteRecordsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ledger.csv")
	err := WriteRecordsToFile(sampleRecords(), path, ',', &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gelir")
	assert.Contains(t, string(data), "gider")
}
