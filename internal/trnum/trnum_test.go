package trnum

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekaraca/vakif-ledger/internal/parsererror"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		negative bool
	}{
		{"thousands and decimals", "1.234,56", "1234.56", false},
		{"negative with decimals", "-89,10", "-89.1", true},
		{"plain integer", "100", "100", false},
		{"grouped integer", "12.340", "12340", false},
		{"unit price", "12,34", "12.34", false},
		{"large grouped amount", "1.234.567,89", "1234567.89", false},
		{"surrounding whitespace", "  42,00 ", "42", false},
		{"negative grouped", "-1.234,56", "-1234.56", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
			assert.Equal(t, tt.negative, d.IsNegative())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "-", "TL", "abc"} {
		t.Run("input="+input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)

			var parseErr *parsererror.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "trnum", parseErr.Parser)
		})
	}
}

func TestParse_ExactRoundTrip(t *testing.T) {
	// Downstream matching relies on exact decimal equality, so parsing must
	// not introduce float rounding.
	d, err := Parse("1.234,56")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "1234.56000000", d.StringFixed(8))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		minFrac  int32
		expected string
	}{
		{"two decimals", "1234.56", 2, "1.234,56"},
		{"integer with min decimals", "12340", 2, "12.340,00"},
		{"integer no decimals", "100", 0, "100"},
		{"grouped integer no decimals", "1000", 0, "1.000"},
		{"negative", "-89.1", 2, "-89,10"},
		{"millions", "1234567.89", 2, "1.234.567,89"},
		{"extra precision kept", "12.345", 2, "12,345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.input)
			assert.Equal(t, tt.expected, Format(d, tt.minFrac))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, literal := range []string{"1.234,56", "12,34", "100,00", "-1.234,56"} {
		d, err := Parse(literal)
		require.NoError(t, err)
		assert.Equal(t, literal, Format(d, 2))
	}
}
