package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementToISO(t *testing.T) {
	iso, err := StatementToISO("2025.07.01")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", iso)
}

func TestStatementToISO_Invalid(t *testing.T) {
	for _, token := range []string{"2025-07-01", "01.07.2025", "2025.13.01", "2025.02.30", ""} {
		_, err := StatementToISO(token)
		assert.Error(t, err, "token %q should not parse", token)
	}
}

func TestMonthKey(t *testing.T) {
	key, err := MonthKey("2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-07", key)

	_, err = MonthKey("2025.07.01")
	assert.Error(t, err)
}
