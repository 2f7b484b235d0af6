package container

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekaraca/vakif-ledger/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Database.Path = filepath.Join(t.TempDir(), "ledger.db")
	cfg.Ingest.SourceTag = "Vakif Statement Import v1"
	cfg.Ingest.Category = "Hisse Senetleri"
	cfg.Ingest.Parallelism = 2
	return cfg
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetConfig())
	assert.NotNil(t, c.GetStore())
	assert.NotNil(t, c.GetIngestor())
	assert.NotNil(t, c.GetTextExtractor())
	assert.NotNil(t, c.GetSymbols())
}

func TestNewContainerNilConfig(t *testing.T) {
	c, err := NewContainer(nil)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestContainerClose(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
